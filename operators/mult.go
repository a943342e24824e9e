package operators

import (
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
)

type mult int8

// Mult multiplies its inputs elementwise. The inputs must have the same shape, except that an
// input with a single channel is broadcast across the channels of the others. The output has the
// leading dimensions of the inputs and the largest number of channels among them.
func Mult() mult {
	return mult(0)
}

func (t mult) TypeString() string {
	return "multiply"
}

func (t mult) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	if len(ins) < 2 {
		return cunet.Shape{}, errors.Errorf("multiply must have ≥ 2 inputs (got %d)", len(ins))
	}

	out := ins[0].Shape()
	for _, in := range ins[1:] {
		if s := in.Shape(); s.Rank() == out.Rank() && s.Channels() > out.Channels() {
			out = s
		}
	}

	lead := cunet.NewShape(out.Spatial()...)
	for i, in := range ins {
		s := in.Shape()
		if s.Rank() != out.Rank() || !cunet.NewShape(s.Spatial()...).Equal(lead) {
			return cunet.Shape{}, cunet.ShapeMismatchError{Op: t.TypeString(), Input: i, Got: s, Want: out.String()}
		} else if c := s.Channels(); c != 1 && c != out.Channels() {
			return cunet.Shape{}, cunet.ShapeMismatchError{Op: t.TypeString(), Input: i, Got: s, Want: out.String()}
		}
	}

	return cunet.NewShape(out.Dims...), nil
}
