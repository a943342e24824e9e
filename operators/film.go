package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
)

// FiLMMode selects how the modulation parameters map onto channels.
type FiLMMode int8

const (
	// FiLMSimple uses one scale and one shift for every channel of the feature map.
	FiLMSimple FiLMMode = iota

	// FiLMComplex uses a separate scale and shift for each channel.
	FiLMComplex
)

func (m FiLMMode) String() string {
	if m == FiLMComplex {
		return "complex"
	}

	return "simple"
}

type film struct {
	mode FiLMMode
}

// FiLM returns feature-wise linear modulation. It takes three inputs: the feature map x, gamma and
// beta, and produces
//	x'[..., c] = x[..., c] * gamma[c'] + beta[c']
// where c' = c for FiLMComplex and c' = 0 for FiLMSimple. gamma and beta must be one-dimensional,
// with size 1 (FiLMSimple) or equal to the channels of x (FiLMComplex).
func FiLM(mode FiLMMode) film {
	return film{mode}
}

func (t film) TypeString() string {
	return "film"
}

func (t film) String() string {
	return "film(" + t.mode.String() + ")"
}

func (t film) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	if len(ins) != 3 {
		return cunet.Shape{}, errors.Errorf("film takes exactly three inputs: x, gamma, beta (got %d)", len(ins))
	}

	x := ins[0].Shape()
	if x.Rank() < 2 {
		return cunet.Shape{}, cunet.ShapeMismatchError{Op: "film", Input: 0, Got: x, Want: "channels as the last of at least 2 dimensions"}
	}

	want := 1
	if t.mode == FiLMComplex {
		want = x.Channels()
	}

	for i := 1; i < 3; i++ {
		s := ins[i].Shape()
		if s.Rank() != 1 || s.Size() != want {
			return cunet.Shape{}, cunet.ShapeMismatchError{Op: "film", Input: i, Got: s, Want: fmt.Sprintf("[%d]", want)}
		}
	}

	return x, nil
}
