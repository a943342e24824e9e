package initializers

// LeCun returns variance scaling by the number of inputs.
func LeCun() *varianceScaling {
	return VarianceScaling().In()
}

// He returns variance scaling by the number of inputs, with a factor of 2.
func He() *varianceScaling {
	return VarianceScaling().In().Factor(2)
}

// Xavier returns variance scaling by the average of the numbers of inputs and outputs.
func Xavier() *varianceScaling {
	return VarianceScaling().Avg()
}

// Glorot is a proxy for Xavier
func Glorot() *varianceScaling {
	return Xavier()
}
