package costfuncs

type mse int8

// MSE returns the mean squared error, which implements cunet.CostFunction.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mean_squared_error"
}

func (m mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := outs[i] - targets[i]
		sum += d * d
	}

	return sum / float64(len(outs))
}

func (m mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	n := float64(len(outs))
	for i := range outs {
		ds[i] = 2 * (outs[i] - targets[i]) / n
	}

	return ds
}
