package operators

import (
	"fmt"
	"github.com/darius522/cunet"
)

type reshape struct {
	dims []int
}

// Reshape returns an Operator that changes the dimensions of its input without changing its
// values. The total size must stay the same.
func Reshape(dims ...int) reshape {
	return reshape{cunet.NewShape(dims...).Dims}
}

// Flatten returns an Operator that collapses its input into a single dimension.
func Flatten() reshape {
	return reshape{}
}

func (t reshape) TypeString() string {
	if t.dims == nil {
		return "flatten"
	}

	return "reshape"
}

func (t reshape) String() string {
	if t.dims == nil {
		return "flatten"
	}

	return fmt.Sprintf("reshape%v", t.dims)
}

func (t reshape) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	in, err := single(t.TypeString(), ins)
	if err != nil {
		return cunet.Shape{}, err
	}

	if t.dims == nil {
		return cunet.NewShape(in.Size()), nil
	}

	out := cunet.NewShape(t.dims...)
	if out.Size() != in.Size() {
		return cunet.Shape{}, cunet.ShapeMismatchError{Op: t.TypeString(), Input: 0, Got: in, Want: fmt.Sprintf("%d values", out.Size())}
	}

	return out, nil
}
