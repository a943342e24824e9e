package cunet

import (
	"github.com/pkg/errors"
	"math/rand"
)

// Param describes one parameter tensor that an Operator needs, such as a convolution kernel or
// the moving mean of a batch normalization.
type Param struct {
	Name  string
	Shape Shape

	// FanIn and FanOut are the number of inputs and outputs that each value connects, for
	// Initializers that scale by them. Both are 0 when they don't apply.
	FanIn, FanOut int

	// Trainable is false for values that are tracked, but not updated by the Optimizer
	Trainable bool

	Init Initializer
}

// Size returns the number of values in the parameter.
func (p Param) Size() int {
	return p.Shape.Size()
}

// Weights holds the values of every parameter in a Network, keyed by "<node name>/<param name>".
type Weights map[string][]float64

// WeightKey returns the key in Weights for the given parameter of the given Node.
func WeightKey(n *Node, p Param) string {
	return n.name + "/" + p.Name
}

// NewWeights allocates a fresh set of values for every parameter in the Network, each set by its
// own Initializer using rng. The Network must be finalized.
func (net *Network) NewWeights(rng *rand.Rand) (Weights, error) {
	if !net.finalized.Load() {
		return nil, ErrNetNotFinalized
	} else if rng == nil {
		return nil, NilArgError{"RNG"}
	}

	ws := make(Weights)
	for _, n := range net.nodesByID {
		for _, p := range n.params {
			vs := make([]float64, p.Size())
			p.Init.Set(p, vs, rng)
			ws[WeightKey(n, p)] = vs
		}
	}

	return ws, nil
}

// HP returns the value of the named HyperParameter at the given iteration.
func (obj Objective) HP(name string, iter int) (float64, error) {
	hp := obj.HyperParams[name]
	if hp == nil {
		return 0, errors.Errorf("No HyperParameter named %q", name)
	}

	return hp.Value(iter), nil
}
