package optimizers

const (
	defaultBeta1   float64 = 0.9
	defaultBeta2   float64 = 0.999
	defaultEpsilon float64 = 1e-7
)

type adam struct {
	beta1, beta2 float64
	epsilon      float64
}

// Adam returns the Adam optimizer, which implements cunet.Optimizer. The decay rates default to
// 0.9 and 0.999.
func Adam() *adam {
	return &adam{
		beta1:   defaultBeta1,
		beta2:   defaultBeta2,
		epsilon: defaultEpsilon,
	}
}

// Betas sets the exponential decay rates of the first and second moment estimates. Betas panics
// if either is not in [0, 1).
func (a *adam) Betas(b1, b2 float64) *adam {
	if b1 < 0 || b1 >= 1 || b2 < 0 || b2 >= 1 {
		panic("Adam betas must be in [0, 1)")
	}

	a.beta1, a.beta2 = b1, b2
	return a
}

// Epsilon sets the constant added for numerical stability. Epsilon panics if e is not positive.
func (a *adam) Epsilon(e float64) *adam {
	if e <= 0 {
		panic("Adam epsilon must be > 0")
	}

	a.epsilon = e
	return a
}

func (a *adam) TypeString() string {
	return "adam"
}

func (a *adam) Needs() []string {
	return []string{LearningRate}
}

// Settings returns the decay rates and epsilon of the optimizer.
func (a *adam) Settings() (beta1, beta2, epsilon float64) {
	return a.beta1, a.beta2, a.epsilon
}
