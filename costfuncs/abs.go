package costfuncs

import (
	"math"
)

type abs int8

// Abs returns the mean absolute error, which implements cunet.CostFunction. It is the loss used
// by default for separation masks.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "mean_absolute_error"
}

func (a abs) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += math.Abs(outs[i] - targets[i])
	}

	return sum / float64(len(outs))
}

func (a abs) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	n := float64(len(outs))
	for i := range outs {
		if d := outs[i] - targets[i]; d != 0 {
			ds[i] = math.Copysign(1, d) / n
		}
	}

	return ds
}
