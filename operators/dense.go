package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/initializers"
	"github.com/pkg/errors"
)

type dense struct {
	Units int

	// always either 0 or 1
	NumBiases int

	kernelInit cunet.Initializer
	biasInit   cunet.Initializer
}

// Dense returns a fully-connected layer of neurons, applied over the last axis of its input. The
// output has the same shape as the input, except for the last dimension, which is equal to units.
func Dense(units int) *dense {
	return &dense{
		Units:      units,
		NumBiases:  1,
		kernelInit: initializers.Glorot(),
		biasInit:   initializers.Zeros(),
	}
}

// NoBiases removes the bias parameters. Dense layers default to having biases.
func (t *dense) NoBiases() *dense {
	t.NumBiases = 0
	return t
}

// KernelInit sets the Initializer of the weights. It defaults to initializers.Glorot().
func (t *dense) KernelInit(init cunet.Initializer) *dense {
	t.kernelInit = init
	return t
}

func (t *dense) TypeString() string {
	return "dense"
}

func (t *dense) String() string {
	return fmt.Sprintf("dense(%d)", t.Units)
}

func (t *dense) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	in, err := single(t.TypeString(), ins)
	if err != nil {
		return cunet.Shape{}, err
	} else if t.Units < 1 {
		return cunet.Shape{}, errors.Errorf("Units is < 1 (%d)", t.Units)
	}

	dims := in.Dims
	dims[len(dims)-1] = t.Units
	return cunet.NewShape(dims...), nil
}

func (t *dense) Params(ins []*cunet.Node, out cunet.Shape) []cunet.Param {
	in := ins[0].Channels()

	ps := []cunet.Param{{
		Name:      "kernel",
		Shape:     cunet.NewShape(in, t.Units),
		FanIn:     in,
		FanOut:    t.Units,
		Trainable: true,
		Init:      t.kernelInit,
	}}

	if t.NumBiases != 0 {
		ps = append(ps, cunet.Param{
			Name:      "bias",
			Shape:     cunet.NewShape(t.Units),
			Trainable: true,
			Init:      t.biasInit,
		})
	}

	return ps
}
