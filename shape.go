package cunet

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// Shape is the set of dimensions of the values a Node produces. The values of each sample are
// described without a batch dimension; for multi-dimensional Nodes the channel axis is last.
type Shape struct {
	// the width, height, channels, etc. of each dimension
	Dims []int
}

// NewShape returns a Shape with a copy of the given dimensions.
func NewShape(dims ...int) Shape {
	d := make([]int, len(dims))
	copy(d, dims)
	return Shape{d}
}

// Size returns the total number of values described by the Shape. The empty Shape has size 0.
func (s Shape) Size() int {
	if len(s.Dims) == 0 {
		return 0
	}

	size := 1
	for _, d := range s.Dims {
		size *= d
	}

	return size
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.Dims)
}

// Dim returns the size of dimension d. Negative values of d count from the end, so that Dim(-1)
// is the channel axis.
func (s Shape) Dim(d int) int {
	if d < 0 {
		d += len(s.Dims)
	}

	return s.Dims[d]
}

// Channels returns the size of the last dimension.
func (s Shape) Channels() int {
	return s.Dim(-1)
}

// Spatial returns a copy of all dimensions except the last.
func (s Shape) Spatial() []int {
	if len(s.Dims) == 0 {
		return nil
	}

	d := make([]int, len(s.Dims)-1)
	copy(d, s.Dims)
	return d
}

// Equal returns whether or not both Shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s.Dims) != len(other.Dims) {
		return false
	}

	for i := range s.Dims {
		if s.Dims[i] != other.Dims[i] {
			return false
		}
	}

	return true
}

// valid returns an error if the Shape has no dimensions or any dimension < 1
func (s Shape) valid() error {
	if len(s.Dims) == 0 {
		return errors.Errorf("Shape has no dimensions")
	}

	for i, d := range s.Dims {
		if d < 1 {
			return errors.Errorf("Shape %v has dimension %d = %d, must be ≥ 1", s, i, d)
		}
	}

	return nil
}

// String returns the dimensions formatted as "[d0 d1 ...]"
func (s Shape) String() string {
	strs := make([]string, len(s.Dims))
	for i, d := range s.Dims {
		strs[i] = fmt.Sprint(d)
	}

	return "[" + strings.Join(strs, " ") + "]"
}
