package cunet

import (
	"math/rand"
)

// Operator is an interface for the typed operations that make up the Nodes of a Network, such as
// convolutions, normalization or activation functions. Operators only describe shapes; the
// numerical work they stand for is done by whatever executes the Network.
type Operator interface {
	// TypeString returns the string corresponding to the type of the Operator.
	// For example: the Operator "Identity" should return "identity", or something
	// to that effect.
	TypeString() string

	// OutputShape returns the shape of the values produced from the given inputs, or an error if
	// the inputs do not fit the Operator. It is called exactly once, while the Node is being
	// added, before the Node exists in the Network.
	//
	// Operators should return ShapeMismatchError if the error is due to the shapes of the
	// inputs.
	OutputShape(ins []*Node) (Shape, error)
}

// Parameterized is implemented by Operators that have trainable (or otherwise stored)
// parameters, such as weights and biases.
type Parameterized interface {
	Operator

	// Params returns the parameters the Operator needs, given its inputs and the shape it has
	// already reported from OutputShape.
	Params(ins []*Node, out Shape) []Param
}

// CostFunction is the loss attached to a Network's Objective.
type CostFunction interface {
	TypeString() string

	// for all functions, can assume that length is the same, there are no NaNs or Infs

	// Cost returns the total cost of the outputs, given the targets.
	Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the cost with respect to each output.
	Derivs(outs, targets []float64) []float64
}

// Optimizer is the configuration of the update rule used by the external training driver.
type Optimizer interface {
	// TypeString returns the string corresponding to the type of the Optimizer.
	// For example: the Optimizer "Adam" should return "adam", or something
	// to that effect.
	TypeString() string

	// Needs returns the names of the HyperParameters the Optimizer reads. Finalize checks that
	// each of them has been provided in the Objective.
	Needs() []string
}

// HyperParameter is a value that may change with the number of training iterations, like a
// learning rate.
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64
}

// Initializer dictates how the values of a parameter will be set, given a blank slice to hold
// them.
type Initializer interface {
	TypeString() string
	Set(p Param, ws []float64, rng *rand.Rand)
}
