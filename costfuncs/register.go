// Package costfuncs provides the CostFunctions that can be attached to a cunet.Network. Importing
// it registers each of them (and some aliases) with cunet.RegisterCostFunction.
package costfuncs

import (
	"github.com/darius522/cunet"
)

func init() {
	list := map[string]func() cunet.CostFunction{
		"mean_absolute_error": func() cunet.CostFunction { return Abs() },
		"mae":                 func() cunet.CostFunction { return Abs() },
		"l1":                  func() cunet.CostFunction { return L1() },
		"abs":                 func() cunet.CostFunction { return Abs() },
		"mean_squared_error":  func() cunet.CostFunction { return MSE() },
		"mse":                 func() cunet.CostFunction { return MSE() },
		"l2":                  func() cunet.CostFunction { return L2() },
		"huber":               func() cunet.CostFunction { return Huber(defaultDelta) },
		"binary_crossentropy": func() cunet.CostFunction { return CrossEntropy() },
	}

	for s, f := range list {
		if err := cunet.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}
