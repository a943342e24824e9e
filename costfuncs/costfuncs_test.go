package costfuncs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darius522/cunet"
	"github.com/darius522/cunet/costfuncs"
)

func TestRegistered(t *testing.T) {
	cases := map[string]string{
		"mean_absolute_error": "mean_absolute_error",
		"mae":                 "mean_absolute_error",
		"l1":                  "mean_absolute_error",
		"abs":                 "mean_absolute_error",
		"mean_squared_error":  "mean_squared_error",
		"mse":                 "mean_squared_error",
		"l2":                  "mean_squared_error",
		"huber":               "huber",
		"binary_crossentropy": "binary_crossentropy",
	}

	for name, typ := range cases {
		c, err := cunet.NewCostFunction(name)
		require.NoError(t, err, name)
		assert.Equal(t, typ, c.TypeString(), name)
	}
}

func TestAbs(t *testing.T) {
	outs := []float64{0.5, 1, 0}
	targets := []float64{1, 1, 0.25}

	c := costfuncs.Abs()
	assert.InDelta(t, 0.25, c.Cost(outs, targets), 1e-12)
	assert.Equal(t, []float64{-1.0 / 3, 0, 1.0 / 3}, c.Derivs(outs, targets))
}

func TestMSE(t *testing.T) {
	outs := []float64{1, 2}
	targets := []float64{0, 0}

	c := costfuncs.MSE()
	assert.InDelta(t, 2.5, c.Cost(outs, targets), 1e-12)
	assert.Equal(t, []float64{1, 2}, c.Derivs(outs, targets))
}

func TestHuber(t *testing.T) {
	outs := []float64{0.5, 3}
	targets := []float64{0, 0}

	h := costfuncs.Huber(1)
	assert.Equal(t, 1.0, h.Delta())
	// 0.5 * 0.25 in the quadratic region, 1 * (3 - 0.5) in the linear one
	assert.InDelta(t, (0.125+2.5)/2, h.Cost(outs, targets), 1e-12)
	assert.Equal(t, []float64{0.25, 0.5}, h.Derivs(outs, targets))

	assert.Panics(t, func() { costfuncs.Huber(0) })

	// a wider δ keeps 3 in the quadratic region
	assert.InDelta(t, 4.5/2+0.125/2, costfuncs.Huber(4).Cost(outs, targets), 1e-12)
	assert.Equal(t, 4.0, costfuncs.Huber(4).Delta())
}

func TestCrossEntropy(t *testing.T) {
	c := costfuncs.CrossEntropy()

	assert.InDelta(t, -math.Log(0.8), c.Cost([]float64{0.8}, []float64{1}), 1e-9)
	assert.InDelta(t, -math.Log(0.8), c.Cost([]float64{0.2}, []float64{0}), 1e-9)
	assert.False(t, math.IsInf(c.Cost([]float64{0}, []float64{1}), 0), "outputs are clipped")

	// d/do of -log(o) is -1/o
	assert.InDelta(t, -1/0.8, c.Derivs([]float64{0.8}, []float64{1})[0], 1e-9)
}
