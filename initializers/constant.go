package initializers

import (
	"github.com/darius522/cunet"
	"math/rand"
)

type constant float64

// Constant returns an Initializer that sets every value to v.
func Constant(v float64) constant {
	return constant(v)
}

// Zeros is the usual Initializer for biases.
func Zeros() constant {
	return Constant(0)
}

// Ones is the usual Initializer for the scale of a normalization.
func Ones() constant {
	return Constant(1)
}

func (c constant) TypeString() string {
	switch c {
	case 0:
		return "zeros"
	case 1:
		return "ones"
	}

	return "constant"
}

// Set is the implementation of cunet.Initializer
func (c constant) Set(p cunet.Param, ws []float64, rng *rand.Rand) {
	for i := range ws {
		ws[i] = float64(c)
	}
}
