package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
)

type slice struct {
	lo, hi int
}

// Slice returns the range [lo, hi) of the last axis of its input.
func Slice(lo, hi int) slice {
	return slice{lo, hi}
}

// Index returns the single value at index i of the last axis, as a dimension of size 1.
func Index(i int) slice {
	return slice{i, i + 1}
}

// Bounds returns the range that the Operator keeps.
func (t slice) Bounds() (lo, hi int) {
	return t.lo, t.hi
}

func (t slice) TypeString() string {
	return "slice"
}

func (t slice) String() string {
	return fmt.Sprintf("slice[%d:%d]", t.lo, t.hi)
}

func (t slice) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	in, err := single(t.TypeString(), ins)
	if err != nil {
		return cunet.Shape{}, err
	} else if t.lo < 0 || t.hi <= t.lo {
		return cunet.Shape{}, errors.Errorf("Invalid slice bounds [%d, %d)", t.lo, t.hi)
	}

	if t.hi > in.Channels() {
		return cunet.Shape{}, cunet.ShapeMismatchError{Op: t.TypeString(), Input: 0, Got: in, Want: fmt.Sprintf("last dimension ≥ %d", t.hi)}
	}

	dims := in.Dims
	dims[len(dims)-1] = t.hi - t.lo
	return cunet.NewShape(dims...), nil
}
