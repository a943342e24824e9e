package optimizers

type sgd struct {
	momentum float64
	nesterov bool
}

// SGD returns plain stochastic gradient descent, which implements cunet.Optimizer.
func SGD() *sgd {
	return &sgd{}
}

// Momentum sets the momentum of the updates. It defaults to 0. Momentum panics if m is not in
// [0, 1).
func (s *sgd) Momentum(m float64) *sgd {
	if m < 0 || m >= 1 {
		panic("SGD momentum must be in [0, 1)")
	}

	s.momentum = m
	return s
}

// Nesterov switches to Nesterov momentum.
func (s *sgd) Nesterov() *sgd {
	s.nesterov = true
	return s
}

func (s *sgd) TypeString() string {
	return "sgd"
}

func (s *sgd) Needs() []string {
	return []string{LearningRate}
}

// Settings returns the momentum of the optimizer and whether or not it is Nesterov momentum.
func (s *sgd) Settings() (momentum float64, nesterov bool) {
	return s.momentum, s.nesterov
}
