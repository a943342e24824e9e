package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/initializers"
	"github.com/pkg/errors"
)

type conv struct {
	// number of spatial dimensions that the filter moves over
	rank      int
	transpose bool

	Filters int

	// Kern is short for kernel, Str for stride
	Kern []int
	Str  []int
	Pad  Padding

	// always either 0 or 1
	NumBiases int

	kernelInit cunet.Initializer
	biasInit   cunet.Initializer
}

func newConv(rank int, transpose bool, filters int) *conv {
	c := new(conv)
	c.rank = rank
	c.transpose = transpose
	c.Filters = filters
	c.Kern = []int{defaultKernel}
	c.Str = []int{1}
	c.Pad = Same
	c.NumBiases = 1
	c.kernelInit = initializers.Glorot()
	c.biasInit = initializers.Zeros()
	return c
}

// Conv1D returns a convolution over the first dimension of its input, which must have shape
// {length, channels}. The output has shape {length', filters}.
//
// Like all convolutional Operators, Conv1D defaults to a kernel of 3, stride 1, Same padding and
// biases. The other methods can be chained to customize it.
func Conv1D(filters int) *conv {
	return newConv(1, false, filters)
}

// Conv2D returns a convolution over the first two dimensions of its input, which must have shape
// {d0, d1, channels}. The output has shape {d0', d1', filters}.
func Conv2D(filters int) *conv {
	return newConv(2, false, filters)
}

// Conv2DTranspose returns a transposed (fractionally strided) convolution over the first two
// dimensions of its input. With Same padding and stride s, each spatial dimension is multiplied
// by s.
func Conv2DTranspose(filters int) *conv {
	return newConv(2, true, filters)
}

// ***************************************************
// Customization functions
// ***************************************************

// Kernel sets the size of the kernel in each spatial dimension. A single value is used for all
// dimensions.
func (c *conv) Kernel(dims ...int) *conv {
	c.Kern = dims
	return c
}

// Stride sets the space between centers of kernel regions. A single value is used for all
// dimensions. Stride defaults to 1.
func (c *conv) Stride(dims ...int) *conv {
	c.Str = dims
	return c
}

// Padding sets the padding scheme. Padding defaults to Same.
func (c *conv) Padding(p Padding) *conv {
	c.Pad = p
	return c
}

// NoBiases removes the bias paramaters from each filter. Convolutional operators default to
// having biases.
func (c *conv) NoBiases() *conv {
	c.NumBiases = 0
	return c
}

// KernelInit sets the Initializer of the kernel. It defaults to initializers.Glorot().
func (c *conv) KernelInit(init cunet.Initializer) *conv {
	c.kernelInit = init
	return c
}

// ***************************************************
// Helper Functions
// ***************************************************

// check returns the kernel and stride with one value per spatial dimension
func (c *conv) check() (kern, str []int, err error) {
	if c.Filters < 1 {
		return nil, nil, errors.Errorf("Filters is < 1 (%d)", c.Filters)
	}

	var ok bool
	if kern, ok = broadcast(c.Kern, c.rank); !ok {
		return nil, nil, errors.Errorf("Kernel has wrong number of dimensions (%d, want %d)", len(c.Kern), c.rank)
	} else if str, ok = broadcast(c.Str, c.rank); !ok {
		return nil, nil, errors.Errorf("Stride has wrong number of dimensions (%d, want %d)", len(c.Str), c.rank)
	}

	for d := 0; d < c.rank; d++ {
		if kern[d] < 1 {
			return nil, nil, errors.Errorf("Kernel[%d] = %d, must be ≥ 1", d, kern[d])
		} else if str[d] < 1 {
			return nil, nil, errors.Errorf("Stride[%d] = %d, must be ≥ 1", d, str[d])
		}
	}

	return kern, str, nil
}

// outDim returns the size of the output along one spatial dimension, or -1 if the input is too
// small for the kernel
func (c *conv) outDim(in, k, s int) int {
	if c.transpose {
		if c.Pad == Same {
			return in * s
		}

		extra := k - s
		if extra < 0 {
			extra = 0
		}
		return in*s + extra
	}

	if c.Pad == Same {
		return (in + s - 1) / s
	}

	if in < k {
		return -1
	}
	return (in-k)/s + 1
}

// ***************************************************
// Interface implementation
// ***************************************************

func (c *conv) TypeString() string {
	if c.transpose {
		return fmt.Sprintf("conv%dd-transpose", c.rank)
	}

	return fmt.Sprintf("conv%dd", c.rank)
}

func (c *conv) String() string {
	return fmt.Sprintf("%s(filters=%d, kernel=%v, stride=%v, %v)", c.TypeString(), c.Filters, c.Kern, c.Str, c.Pad)
}

func (c *conv) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	in, err := single(c.TypeString(), ins)
	if err != nil {
		return cunet.Shape{}, err
	}

	kern, str, err := c.check()
	if err != nil {
		return cunet.Shape{}, err
	}

	if in.Rank() != c.rank+1 {
		return cunet.Shape{}, cunet.ShapeMismatchError{
			Op:    c.TypeString(),
			Input: 0,
			Got:   in,
			Want:  fmt.Sprintf("%d spatial dimensions and channels", c.rank),
		}
	}

	dims := make([]int, c.rank+1)
	for d := 0; d < c.rank; d++ {
		dims[d] = c.outDim(in.Dims[d], kern[d], str[d])
		if dims[d] < 1 {
			return cunet.Shape{}, cunet.ShapeMismatchError{
				Op:    c.TypeString(),
				Input: 0,
				Got:   in,
				Want:  fmt.Sprintf("dimension %d ≥ kernel size %d", d, kern[d]),
			}
		}
	}
	dims[c.rank] = c.Filters

	return cunet.NewShape(dims...), nil
}

func (c *conv) Params(ins []*cunet.Node, out cunet.Shape) []cunet.Param {
	kern, _, _ := c.check()
	inChannels := ins[0].Channels()
	receptive := product(kern)

	var kdims []int
	kdims = append(kdims, kern...)
	if c.transpose {
		kdims = append(kdims, c.Filters, inChannels)
	} else {
		kdims = append(kdims, inChannels, c.Filters)
	}

	ps := []cunet.Param{{
		Name:      "kernel",
		Shape:     cunet.NewShape(kdims...),
		FanIn:     receptive * inChannels,
		FanOut:    receptive * c.Filters,
		Trainable: true,
		Init:      c.kernelInit,
	}}

	if c.NumBiases != 0 {
		ps = append(ps, cunet.Param{
			Name:      "bias",
			Shape:     cunet.NewShape(c.Filters),
			Trainable: true,
			Init:      c.biasInit,
		})
	}

	return ps
}
