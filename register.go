package cunet

import (
	"github.com/pkg/errors"
	"sort"
)

// The registries are only written to from the init functions of the subpackages "costfuncs" and
// "optimizers", so they are not guarded.
var (
	costFuncs  = make(map[string]func() CostFunction)
	optimizers = make(map[string]func() Optimizer)
)

// RegisterCostFunction makes a CostFunction available under the given name, for use with
// NewCostFunction. Names may not be registered twice.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil {
		return ErrRegisterNilFunc
	} else if costFuncs[name] != nil {
		return errors.Errorf("CostFunction %q has already been registered", name)
	}

	costFuncs[name] = f
	return nil
}

// NewCostFunction returns a new CostFunction registered under the given name. If there is none,
// it returns UnknownTypeError.
func NewCostFunction(name string) (CostFunction, error) {
	f := costFuncs[name]
	if f == nil {
		return nil, UnknownTypeError{"CostFunction", name}
	}

	return f(), nil
}

// CostFunctions returns the sorted names of all registered CostFunctions.
func CostFunctions() []string {
	return sortedKeys(len(costFuncs), func(add func(string)) {
		for k := range costFuncs {
			add(k)
		}
	})
}

// RegisterOptimizer makes an Optimizer available under the given name, for use with
// NewOptimizer. Names may not be registered twice.
func RegisterOptimizer(name string, f func() Optimizer) error {
	if f == nil {
		return ErrRegisterNilFunc
	} else if optimizers[name] != nil {
		return errors.Errorf("Optimizer %q has already been registered", name)
	}

	optimizers[name] = f
	return nil
}

// NewOptimizer returns a new Optimizer registered under the given name. If there is none, it
// returns UnknownTypeError.
func NewOptimizer(name string) (Optimizer, error) {
	f := optimizers[name]
	if f == nil {
		return nil, UnknownTypeError{"Optimizer", name}
	}

	return f(), nil
}

// Optimizers returns the sorted names of all registered Optimizers.
func Optimizers() []string {
	return sortedKeys(len(optimizers), func(add func(string)) {
		for k := range optimizers {
			add(k)
		}
	})
}

func sortedKeys(n int, each func(func(string))) []string {
	keys := make([]string, 0, n)
	each(func(k string) { keys = append(keys, k) })
	sort.Strings(keys)
	return keys
}
