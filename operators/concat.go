package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
)

type concat int8

// Concat joins its inputs along the last (channel) axis. All inputs must have the same rank and
// the same size in every other dimension.
func Concat() concat {
	return concat(0)
}

func (t concat) TypeString() string {
	return "concat"
}

func (t concat) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	if len(ins) < 2 {
		return cunet.Shape{}, errors.Errorf("concat must have ≥ 2 inputs (got %d)", len(ins))
	}

	first := ins[0].Shape()
	dims := first.Dims
	for i := 1; i < len(ins); i++ {
		s := ins[i].Shape()
		if s.Rank() != first.Rank() {
			return cunet.Shape{}, cunet.ShapeMismatchError{Op: "concat", Input: i, Got: s, Want: fmt.Sprintf("rank %d", first.Rank())}
		}

		for d := 0; d < s.Rank()-1; d++ {
			if s.Dims[d] != first.Dims[d] {
				return cunet.Shape{}, cunet.ShapeMismatchError{Op: "concat", Input: i, Got: s, Want: fmt.Sprintf("leading dimensions %v", first.Spatial())}
			}
		}

		dims[len(dims)-1] += s.Channels()
	}

	return cunet.NewShape(dims...), nil
}
