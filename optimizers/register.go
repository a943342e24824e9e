// Package optimizers provides the Optimizers that can be attached to a cunet.Network. Importing it
// registers each of them with cunet.RegisterOptimizer.
package optimizers

import (
	"github.com/darius522/cunet"
)

// LearningRate is the name of the HyperParameter that every Optimizer in this package needs.
const LearningRate = "learning-rate"

func init() {
	list := map[string]func() cunet.Optimizer{
		"adam": func() cunet.Optimizer { return Adam() },
		"sgd":  func() cunet.Optimizer { return SGD() },
	}

	for s, f := range list {
		if err := cunet.RegisterOptimizer(s, f); err != nil {
			panic(err.Error())
		}
	}
}
