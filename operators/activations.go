// activations.go contains all of the elementwise activation functions:
// * Linear
// * ReLU, Leaky ReLU, ELU
// * Sigmoid (logistic), Tanh
// * Softplus, Softsign
// * Softmax (which is not elementwise, but keeps the shape of its input)
package operators

import (
	"fmt"
	"github.com/darius522/cunet"
)

type activation struct {
	name string

	// only used by leaky ReLU and ELU
	alpha float64
}

// Linear returns the identity activation.
func Linear() activation {
	return activation{name: "linear"}
}

// ReLU returns the standard rectified linear unit.
func ReLU() activation {
	return activation{name: "relu"}
}

// LeakyReLU returns a standard 'leaky ReLU', where the leaky factor is given by alpha.
func LeakyReLU(alpha float64) activation {
	return activation{name: "leaky_relu", alpha: alpha}
}

// ELU returns the exponential linear unit, with alpha = 1.
func ELU() activation {
	return activation{name: "elu", alpha: 1}
}

// Sigmoid returns the logistic function, which bounds its outputs to (0, 1).
func Sigmoid() activation {
	return activation{name: "sigmoid"}
}

// Tanh returns the hyperbolic tangent.
func Tanh() activation {
	return activation{name: "tanh"}
}

// Softplus returns log(1 + e^x).
func Softplus() activation {
	return activation{name: "softplus"}
}

// Softsign returns x / (1 + |x|).
func Softsign() activation {
	return activation{name: "softsign"}
}

// Softmax returns the softmax function, over the last axis of its input.
func Softmax() activation {
	return activation{name: "softmax"}
}

func (t activation) TypeString() string {
	return t.name
}

func (t activation) String() string {
	if t.name == "leaky_relu" {
		return fmt.Sprintf("%s(alpha=%g)", t.name, t.alpha)
	}

	return t.name
}

func (t activation) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	return single(t.name, ins)
}
