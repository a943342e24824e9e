package model

import (
	"fmt"
	"github.com/darius522/cunet"
	_ "github.com/darius522/cunet/costfuncs"
	"github.com/darius522/cunet/hyperparams"
	"github.com/darius522/cunet/initializers"
	"github.com/darius522/cunet/operators"
	"github.com/darius522/cunet/optimizers"
	"github.com/pkg/errors"
)

// Model is a fully assembled, finalized conditioned U-Net.
type Model struct {
	Network *cunet.Network

	// Condition is nil for unconditioned models
	Spectrogram *cunet.Node
	Condition   *cunet.Node

	// Gamma and Beta are the heads of the control network, nil for unconditioned models
	Gamma *cunet.Node
	Beta  *cunet.Node

	// Mask is the output of the last decoder layer; Output is Spectrogram multiplied by Mask.
	Mask   *cunet.Node
	Output *cunet.Node

	Encoder []LayerPlan
	Decoder []LayerPlan

	Hyperparameters Hyperparameters
}

// ParamCount returns the number of parameter values in the model.
func (m *Model) ParamCount() int {
	return m.Network.ParamCount()
}

// Option customizes a single call to Assemble.
type Option func(*options)

type options struct {
	control ControlNetwork
	init    cunet.Initializer
}

// WithControl replaces the control network chosen by Hyperparameters.ControlType. It is ignored
// for unconditioned models.
func WithControl(c ControlNetwork) Option {
	return func(o *options) {
		o.control = c
	}
}

// WithKernelInit replaces the Initializer of the encoder and decoder kernels, which is otherwise
// a normal distribution with standard deviation Hyperparameters.InitStdDev.
func WithKernelInit(init cunet.Initializer) Option {
	return func(o *options) {
		o.init = init
	}
}

// Assemble builds the model described by hp. Assembly either fully succeeds or returns an error
// and no Model.
//
// Errors in the Hyperparameters, including a control network that does not produce gamma and beta
// of length ConditioningLength(hp), are reported as *ConfigurationError before any encoder layer
// is built. Shapes that do not fit together once the layers are built are reported as
// *ShapeError. Both may be wrapped with context; use errors.As to find them.
func Assemble(hp Hyperparameters, opts ...Option) (*Model, error) {
	hp = hp.Clone()
	if err := hp.Validate(); err != nil {
		return nil, err
	}

	o := options{
		control: ControlFor(hp.ControlType),
		init:    initializers.Normal().SD(hp.InitStdDev),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.control == nil {
		return nil, errors.Errorf("Can't assemble model, ControlNetwork is nil")
	} else if o.init == nil {
		return nil, errors.Errorf("Can't assemble model, Initializer is nil")
	}

	m := &Model{
		Network:         new(cunet.Network),
		Encoder:         EncoderPlans(hp),
		Decoder:         DecoderPlans(hp),
		Hyperparameters: hp,
	}

	b := &builder{net: m.Network, hp: hp, init: o.init}

	var err error
	if m.Spectrogram, err = b.net.AddInput(SpectrogramInput, hp.InputShape[:]...); err != nil {
		return nil, errors.Wrapf(err, "Can't assemble model")
	}

	slicer := slicerFor(hp.FilmType)
	filters := EncoderFilters(hp)

	var film cunet.Operator
	if hp.Conditioned() {
		film = operators.FiLM(slicer.Mode())

		length := slicer.Length(filters)
		m.Condition, m.Gamma, m.Beta, err = o.control.Build(b.net, hp, length)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't build control network")
		} else if err = checkControl(m, length); err != nil {
			return nil, err
		}
	}

	x := m.Spectrogram
	encoded := make([]*cunet.Node, hp.Layers)

	var cursor int
	for i, p := range m.Encoder {
		var gamma, beta *cunet.Node
		if film != nil {
			if gamma, beta, cursor, err = slice(b.net, slicer, p, filters, m.Gamma, m.Beta, cursor); err != nil {
				return nil, errors.Wrapf(err, "Can't build encoder layer %d", i)
			}
		}

		if x, err = b.encode(x, p, film, gamma, beta); err != nil {
			return nil, errors.Wrapf(err, "Can't build encoder layer %d", i)
		}

		encoded[i] = x
	}

	for i, p := range m.Decoder {
		if x, err = b.decode(x, encoded[p.Mirror], p); err != nil {
			return nil, errors.Wrapf(err, "Can't build decoder layer %d", i)
		}
	}

	m.Mask = x
	if m.Output, err = add(b.net, OutputNode, operators.Mult(), m.Spectrogram, m.Mask); err != nil {
		return nil, errors.Wrapf(err, "Can't build output")
	}

	obj, err := objective(hp)
	if err != nil {
		return nil, err
	} else if err = b.net.Finalize(obj, m.Output); err != nil {
		return nil, errors.Wrapf(err, "Can't finalize model")
	}

	return m, nil
}

// checkControl makes sure that the control network gave gamma and beta of the required length
func checkControl(m *Model, length int) error {
	if m.Condition == nil || m.Gamma == nil || m.Beta == nil {
		return configErr("control_type", "control network did not produce a condition input, gamma and beta")
	}

	want := cunet.NewShape(length)
	for _, n := range []*cunet.Node{m.Gamma, m.Beta} {
		if !n.Shape().Equal(want) {
			return configErr("control_outputs", "control network output %v has shape %v, %s conditioning of %d layers needs %v",
				n, n.Shape(), m.Hyperparameters.FilmType, m.Hyperparameters.Layers, want)
		}
	}

	return nil
}

// objective binds the loss and optimizer named by hp
func objective(hp Hyperparameters) (cunet.Objective, error) {
	cost, err := cunet.NewCostFunction(hp.Loss)
	if err != nil {
		return cunet.Objective{}, configErr("loss", "%v", err)
	}

	opt, err := cunet.NewOptimizer(hp.Optimizer)
	if err != nil {
		return cunet.Objective{}, configErr("optimizer", "%v", err)
	}

	return cunet.Objective{
		Cost: cost,
		Opt:  opt,
		HyperParams: map[string]cunet.HyperParameter{
			optimizers.LearningRate: hyperparams.Constant(hp.LearningRate),
		},
	}, nil
}

func (m *Model) String() string {
	return fmt.Sprintf("cunet(%d layers, %s film, %d params)", m.Hyperparameters.Layers, m.Hyperparameters.FilmType, m.ParamCount())
}
