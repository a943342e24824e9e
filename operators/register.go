package operators

import (
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
	"sort"
)

const (
	defaultKernel     int     = 3
	defaultLeakyAlpha float64 = 0.2
	defaultMomentum   float64 = 0.99
	defaultEpsilon    float64 = 1e-3
)

// activations maps the names accepted by Activation to their constructors. It is never modified.
var activations = map[string]func() cunet.Operator{
	"linear":     func() cunet.Operator { return Linear() },
	"identity":   func() cunet.Operator { return Linear() },
	"relu":       func() cunet.Operator { return ReLU() },
	"leaky_relu": func() cunet.Operator { return LeakyReLU(defaultLeakyAlpha) },
	"elu":        func() cunet.Operator { return ELU() },
	"sigmoid":    func() cunet.Operator { return Sigmoid() },
	"tanh":       func() cunet.Operator { return Tanh() },
	"softplus":   func() cunet.Operator { return Softplus() },
	"softsign":   func() cunet.Operator { return Softsign() },
	"softmax":    func() cunet.Operator { return Softmax() },
}

// Activation returns the activation function with the given name. The names are those used by
// the usual configuration files: "linear", "relu", "leaky_relu" (with alpha = 0.2), "elu",
// "sigmoid", "tanh", "softplus", "softsign" and "softmax".
func Activation(name string) (cunet.Operator, error) {
	f := activations[name]
	if f == nil {
		return nil, errors.Errorf("Unknown activation %q", name)
	}

	return f(), nil
}

// IsLinear returns whether or not the named activation leaves its input unchanged.
func IsLinear(name string) bool {
	return name == "linear" || name == "identity"
}

// Activations returns the sorted names accepted by Activation.
func Activations() []string {
	names := make([]string, 0, len(activations))
	for name := range activations {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
