package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/initializers"
	"github.com/pkg/errors"
)

type batchNorm struct {
	Mom    float64
	Eps    float64
	Scaled bool
	Center bool
}

// BatchNorm returns batch normalization over the last (channel) axis of its input. It defaults to
// a momentum of 0.99, epsilon of 1e-3, and both scaling and centering.
func BatchNorm() *batchNorm {
	return &batchNorm{
		Mom:    defaultMomentum,
		Eps:    defaultEpsilon,
		Scaled: true,
		Center: true,
	}
}

// Momentum sets the momentum of the moving mean and variance.
func (b *batchNorm) Momentum(m float64) *batchNorm {
	b.Mom = m
	return b
}

// Epsilon sets the value added to the variance.
func (b *batchNorm) Epsilon(e float64) *batchNorm {
	b.Eps = e
	return b
}

// Scale sets whether or not the normalized values are multiplied by a learned gamma.
func (b *batchNorm) Scale(scale bool) *batchNorm {
	b.Scaled = scale
	return b
}

func (b *batchNorm) TypeString() string {
	return "batchnorm"
}

func (b *batchNorm) String() string {
	return fmt.Sprintf("batchnorm(momentum=%g, scale=%t)", b.Mom, b.Scaled)
}

func (b *batchNorm) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	if b.Mom < 0 || b.Mom >= 1 {
		return cunet.Shape{}, errors.Errorf("Momentum must be in [0, 1) (%v)", b.Mom)
	} else if b.Eps <= 0 {
		return cunet.Shape{}, errors.Errorf("Epsilon must be > 0 (%v)", b.Eps)
	}

	return single(b.TypeString(), ins)
}

func (b *batchNorm) Params(ins []*cunet.Node, out cunet.Shape) []cunet.Param {
	c := cunet.NewShape(out.Channels())

	var ps []cunet.Param
	if b.Scaled {
		ps = append(ps, cunet.Param{Name: "gamma", Shape: c, Trainable: true, Init: initializers.Ones()})
	}
	if b.Center {
		ps = append(ps, cunet.Param{Name: "beta", Shape: c, Trainable: true, Init: initializers.Zeros()})
	}

	return append(ps,
		cunet.Param{Name: "moving_mean", Shape: c, Init: initializers.Zeros()},
		cunet.Param{Name: "moving_variance", Shape: c, Init: initializers.Ones()},
	)
}
