package initializers

import (
	"github.com/darius522/cunet"
	"math"
	"math/rand"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64
}

const (
	defaultVarianceMode   string  = "avg"
	defaultVarianceFactor float64 = 1
)

// VarianceScaling returns the variance scaling initializer, which has 3 modes and a user-defined
// scaling factor. The three modes can be set by In, Out, and Avg. It defaults to Avg.
//
// The scale is taken from the FanIn and FanOut of the parameter being set. Parameters that have
// neither are treated as having a fan of 1.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{defaultVarianceMode, defaultVarianceFactor}
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the number of input values to the parameter.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the number of output values of the parameter.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of the numbers of input and output values.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = "avg"
	return v
}

func (v *varianceScaling) TypeString() string {
	return "variance-scaling"
}

// SD returns the standard deviation that would be used for the given parameter.
func (v *varianceScaling) SD(p cunet.Param) float64 {
	var scale float64
	if v.mode == "in" {
		scale = float64(p.FanIn)
	} else if v.mode == "out" {
		scale = float64(p.FanOut)
	} else { // must be "avg"
		scale = float64(p.FanIn+p.FanOut) / 2
	}

	if scale < 1 {
		scale = 1
	}

	return math.Sqrt(v.factor / scale)
}

// Set is the implementation of cunet.Initializer
func (v *varianceScaling) Set(p cunet.Param, ws []float64, rng *rand.Rand) {
	fill(&truncNormal{Normal().SD(v.SD(p)), defaultTrunc}, ws, rng)
}
