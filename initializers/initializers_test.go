package initializers_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darius522/cunet"
	"github.com/darius522/cunet/initializers"
)

func set(init cunet.Initializer, p cunet.Param) []float64 {
	ws := make([]float64, p.Size())
	init.Set(p, ws, rand.New(rand.NewSource(7)))
	return ws
}

func meanSD(ws []float64) (float64, float64) {
	var mean float64
	for _, w := range ws {
		mean += w
	}
	mean /= float64(len(ws))

	var v float64
	for _, w := range ws {
		v += (w - mean) * (w - mean)
	}

	return mean, math.Sqrt(v / float64(len(ws)))
}

func TestConstant(t *testing.T) {
	p := cunet.Param{Name: "b", Shape: cunet.NewShape(3)}

	assert.Equal(t, []float64{0, 0, 0}, set(initializers.Zeros(), p))
	assert.Equal(t, []float64{1, 1, 1}, set(initializers.Ones(), p))
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, set(initializers.Constant(0.5), p))

	assert.Equal(t, "zeros", initializers.Zeros().TypeString())
	assert.Equal(t, "ones", initializers.Ones().TypeString())
	assert.Equal(t, "constant", initializers.Constant(3).TypeString())
}

func TestUniform(t *testing.T) {
	p := cunet.Param{Shape: cunet.NewShape(1000)}
	for _, w := range set(initializers.Uniform().Bounds(1, -1), p) {
		require.True(t, w >= -1 && w < 1, "%v out of bounds", w)
	}
}

func TestNormal(t *testing.T) {
	p := cunet.Param{Shape: cunet.NewShape(20000)}
	mean, sd := meanSD(set(initializers.Normal().SD(0.02), p))

	assert.InDelta(t, 0, mean, 0.001)
	assert.InDelta(t, 0.02, sd, 0.001)

	mean, sd = meanSD(set(initializers.Normal().Mean(3).SD(0.5), p))
	assert.InDelta(t, 3, mean, 0.02)
	assert.InDelta(t, 0.5, sd, 0.02)
}

func TestTruncNormal(t *testing.T) {
	p := cunet.Param{Shape: cunet.NewShape(5000)}
	init := initializers.TruncNormal().Trunc(1)
	init.SD(2)

	for _, w := range set(init, p) {
		require.True(t, math.Abs(w) <= 2, "%v not truncated", w)
	}

	assert.Panics(t, func() { initializers.TruncNormal().Trunc(0) })
}

func TestVarianceScaling(t *testing.T) {
	p := cunet.Param{Shape: cunet.NewShape(5, 5, 4, 16), FanIn: 100, FanOut: 400}

	assert.InDelta(t, math.Sqrt(2.0/100), initializers.He().SD(p), 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/250), initializers.Glorot().SD(p), 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/400), initializers.VarianceScaling().Out().SD(p), 1e-12)
	assert.Equal(t, 1.0, initializers.LeCun().SD(cunet.Param{}), "no fan is treated as 1")

	limit := 2 * initializers.He().SD(p)
	for _, w := range set(initializers.He(), p) {
		require.True(t, math.Abs(w) <= limit, "%v beyond two standard deviations", w)
	}
}
