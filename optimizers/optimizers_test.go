package optimizers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darius522/cunet"
	"github.com/darius522/cunet/optimizers"
)

func TestRegistered(t *testing.T) {
	for _, name := range []string{"adam", "sgd"} {
		opt, err := cunet.NewOptimizer(name)
		require.NoError(t, err)
		assert.Equal(t, name, opt.TypeString())
		assert.Equal(t, []string{optimizers.LearningRate}, opt.Needs())
	}
}

func TestAdam(t *testing.T) {
	b1, b2, eps := optimizers.Adam().Settings()
	assert.Equal(t, 0.9, b1)
	assert.Equal(t, 0.999, b2)
	assert.Equal(t, 1e-7, eps)

	b1, b2, eps = optimizers.Adam().Betas(0.5, 0.9).Epsilon(1e-8).Settings()
	assert.Equal(t, []float64{0.5, 0.9, 1e-8}, []float64{b1, b2, eps})

	assert.Panics(t, func() { optimizers.Adam().Betas(1, 0.9) })
	assert.Panics(t, func() { optimizers.Adam().Epsilon(0) })
}

func TestSGD(t *testing.T) {
	m, n := optimizers.SGD().Settings()
	assert.Zero(t, m)
	assert.False(t, n)

	m, n = optimizers.SGD().Momentum(0.9).Nesterov().Settings()
	assert.Equal(t, 0.9, m)
	assert.True(t, n)

	assert.Panics(t, func() { optimizers.SGD().Momentum(-0.1) })
}
