package costfuncs

import (
	"math"
)

// outputs are clipped to [epsilon, 1 - epsilon] before taking logarithms
const epsilon float64 = 1e-7

type crossEntropy int8

// CrossEntropy returns the binary cross-entropy, which implements cunet.CostFunction. Outputs
// are expected to be in (0, 1), as given by a sigmoid.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

func (c crossEntropy) TypeString() string {
	return "binary_crossentropy"
}

func clip(v float64) float64 {
	return math.Min(math.Max(v, epsilon), 1-epsilon)
}

func (c crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		o := clip(outs[i])
		sum -= targets[i]*math.Log(o) + (1-targets[i])*math.Log(1-o)
	}

	return sum / float64(len(outs))
}

func (c crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	n := float64(len(outs))
	for i := range outs {
		o := clip(outs[i])
		ds[i] = (o - targets[i]) / (o * (1 - o)) / n
	}

	return ds
}
