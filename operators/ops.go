package operators

import (
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
)

// Padding is the padding scheme used by convolutional Operators.
type Padding int8

const (
	// Same pads the input so that, with a stride of 1, the output has the same size as the input.
	// With stride s, the output has size ceil(in / s) (or in * s, for transposed convolutions).
	Same Padding = iota

	// Valid does not pad the input.
	Valid
)

func (p Padding) String() string {
	if p == Valid {
		return "valid"
	}

	return "same"
}

// single checks that the Operator was given exactly one input, returning its shape
func single(op string, ins []*cunet.Node) (cunet.Shape, error) {
	if len(ins) != 1 {
		return cunet.Shape{}, errors.Errorf("%s takes exactly one input (got %d)", op, len(ins))
	}

	return ins[0].Shape(), nil
}

// broadcast expands a list with a single value to n values, returning whether or not the list
// has the correct length
func broadcast(dims []int, n int) ([]int, bool) {
	if len(dims) == 1 && n > 1 {
		b := make([]int, n)
		for i := range b {
			b[i] = dims[0]
		}

		return b, true
	}

	return dims, len(dims) == n
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}
