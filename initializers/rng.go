package initializers

import (
	"github.com/darius522/cunet"
	"math/rand"
)

// RNG needs no explanation
type RNG interface {
	Gen(rng *rand.Rand) float64
}

// fill sets every value in ws from g
func fill(g RNG, ws []float64, rng *rand.Rand) {
	for i := range ws {
		ws[i] = g.Gen(rng)
	}
}

const (
	defaultUniformLower float64 = -0.05
	defaultUniformUpper float64 = 0.05
	defaultNormalMean   float64 = 0
	defaultNormalSD     float64 = 0.05
	defaultTrunc        float64 = 2.0
)

type uniform struct {
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread between its bounds, which can be set
// by Bounds. It is also a cunet.Initializer.
func Uniform() *uniform {
	return &uniform{defaultUniformLower, defaultUniformUpper}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

func (u *uniform) TypeString() string {
	return "uniform"
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen(rng *rand.Rand) float64 {
	return rng.Float64()*(u.upper-u.lower) + u.lower
}

// Set is the implementation of cunet.Initializer
func (u *uniform) Set(p cunet.Param, ws []float64, rng *rand.Rand) {
	fill(u, ws, rng)
}

type normal struct {
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center
// and standard deviation can be set by Mean and SD, respectively. It is also a
// cunet.Initializer.
func Normal() *normal {
	return &normal{defaultNormalMean, defaultNormalSD}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

func (n *normal) TypeString() string {
	return "normal"
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen(rng *rand.Rand) float64 {
	return rng.NormFloat64()*n.σ + n.µ
}

// Set is the implementation of cunet.Initializer
func (n *normal) Set(p cunet.Param, ws []float64, rng *rand.Rand) {
	fill(n, ws, rng)
}

type truncNormal struct {
	*normal
	trunc float64
}

// TruncNormal returns an RNG that gives values within an truncated normal
// distribution. The distribution is truncated at 2 standard deviations. The center
// and standard deviation can be set in the same way as Normal, because Normal is
// embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by
// Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will
// panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

func (t *truncNormal) TypeString() string {
	return "trunc-normal"
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen(rng *rand.Rand) float64 {
	for {
		v := rng.NormFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}

// Set is the implementation of cunet.Initializer
func (t *truncNormal) Set(p cunet.Param, ws []float64, rng *rand.Rand) {
	fill(t, ws, rng)
}
