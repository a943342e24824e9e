package costfuncs

import (
	"math"
)

const defaultDelta float64 = 1.0

type huber struct {
	δ float64
}

// Huber returns the Huber Loss Function, which implements cunet.CostFunction. δ controls the
// bounds of the transition between MSE and Absolute Value. Huber panics if δ is not positive.
func Huber(δ float64) *huber {
	if δ <= 0 {
		panic("Huber δ must be > 0")
	}

	return &huber{δ}
}

// Delta returns the δ of the function.
func (h *huber) Delta() float64 {
	return h.δ
}

func (h *huber) TypeString() string {
	return "huber"
}

func (h *huber) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := math.Abs(outs[i] - targets[i])
		if d <= h.δ {
			sum += 0.5 * d * d
		} else {
			sum += h.δ * (d - 0.5*h.δ)
		}
	}

	return sum / float64(len(outs))
}

func (h *huber) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	n := float64(len(outs))
	for i := range outs {
		d := outs[i] - targets[i]
		if math.Abs(d) <= h.δ {
			ds[i] = d / n
		} else {
			ds[i] = math.Copysign(h.δ, d) / n
		}
	}

	return ds
}
