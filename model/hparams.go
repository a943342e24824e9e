package model

import (
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/operators"
	"strings"
)

// FilmType selects whether and how the encoder is conditioned.
type FilmType int8

const (
	// FilmNone builds an unconditioned U-Net: no control network and no modulation.
	FilmNone FilmType = iota

	// FilmSimple modulates each encoder layer with a single gamma and beta.
	FilmSimple

	// FilmComplex modulates each channel of each encoder layer separately.
	FilmComplex
)

var filmTypes = []string{"none", "simple", "complex"}

func (f FilmType) String() string {
	if f < 0 || int(f) >= len(filmTypes) {
		return "FilmType(?)"
	}

	return filmTypes[f]
}

// ParseFilmType returns the FilmType with the given name. The empty string is treated as "none".
func ParseFilmType(s string) (FilmType, error) {
	s = strings.ToLower(s)
	if s == "" {
		return FilmNone, nil
	}

	for i, name := range filmTypes {
		if s == name {
			return FilmType(i), nil
		}
	}

	return FilmNone, configErr("film_type", "unknown film type %q, want one of %v", s, filmTypes)
}

func (f FilmType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FilmType) UnmarshalText(text []byte) error {
	t, err := ParseFilmType(string(text))
	if err != nil {
		return err
	}

	*f = t
	return nil
}

// ControlType selects the architecture of the control network.
type ControlType int8

const (
	// ControlDense is a stack of fully-connected layers.
	ControlDense ControlType = iota

	// ControlCNN is a learned embedding followed by one-dimensional convolutions.
	ControlCNN
)

var controlTypes = []string{"dense", "cnn"}

func (c ControlType) String() string {
	if c < 0 || int(c) >= len(controlTypes) {
		return "ControlType(?)"
	}

	return controlTypes[c]
}

// ParseControlType returns the ControlType with the given name.
func ParseControlType(s string) (ControlType, error) {
	s = strings.ToLower(s)
	for i, name := range controlTypes {
		if s == name {
			return ControlType(i), nil
		}
	}

	return ControlDense, configErr("control_type", "unknown control type %q, want one of %v", s, controlTypes)
}

func (c ControlType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ControlType) UnmarshalText(text []byte) error {
	t, err := ParseControlType(string(text))
	if err != nil {
		return err
	}

	*c = t
	return nil
}

// Hyperparameters is the full set of values that determine the structure of a Model. It is only
// read during assembly.
type Hyperparameters struct {
	// InputShape is the shape of the spectrogram. The two spatial axes are treated the same way;
	// the last value is the number of channels.
	InputShape [3]int `mapstructure:"input_shape" yaml:"input_shape,flow"`

	Layers      int `mapstructure:"n_layers" yaml:"n_layers"`
	BaseFilters int `mapstructure:"base_filters" yaml:"base_filters"`

	// EncoderFilters overrides the filters of each encoder layer, which otherwise double with
	// each layer, starting from BaseFilters. If set, it must have one value per layer.
	EncoderFilters []int `mapstructure:"encoder_filters" yaml:"encoder_filters,omitempty,flow"`

	FilmType    FilmType    `mapstructure:"film_type" yaml:"film_type"`
	ControlType ControlType `mapstructure:"control_type" yaml:"control_type"`
	Conditions  int         `mapstructure:"n_conditions" yaml:"n_conditions"`

	// widths of the dense control network, and filters of the convolutional one
	ControlNeurons []int `mapstructure:"control_neurons" yaml:"control_neurons,flow"`
	ControlFilters []int `mapstructure:"control_filters" yaml:"control_filters,flow"`

	// ControlOutputs fixes the width of the gamma and beta heads. If zero, the width is
	// ConditioningLength.
	ControlOutputs int `mapstructure:"control_outputs" yaml:"control_outputs,omitempty"`

	EncoderActivation string `mapstructure:"activation_encoder" yaml:"activation_encoder"`
	DecoderActivation string `mapstructure:"activation_decoder" yaml:"activation_decoder"`
	FinalActivation   string `mapstructure:"activation_last" yaml:"activation_last"`
	GammaActivation   string `mapstructure:"activation_gamma" yaml:"activation_gamma"`
	BetaActivation    string `mapstructure:"activation_beta" yaml:"activation_beta"`

	DropoutRate  float64 `mapstructure:"dropout" yaml:"dropout"`
	Momentum     float64 `mapstructure:"momentum" yaml:"momentum"`
	InitStdDev   float64 `mapstructure:"init_stddev" yaml:"init_stddev"`
	LearningRate float64 `mapstructure:"lr" yaml:"lr"`
	Loss         string  `mapstructure:"loss" yaml:"loss"`
	Optimizer    string  `mapstructure:"optimizer" yaml:"optimizer"`
}

// Defaults returns the Hyperparameters used to train the reference model: a six-layer U-Net over
// 512x128 spectrograms, conditioned with simple FiLM by a dense control network.
func Defaults() Hyperparameters {
	return Hyperparameters{
		InputShape:        [3]int{512, 128, 1},
		Layers:            6,
		BaseFilters:       16,
		FilmType:          FilmSimple,
		ControlType:       ControlDense,
		Conditions:        4,
		ControlNeurons:    []int{16, 64, 256},
		ControlFilters:    []int{16, 32, 64},
		EncoderActivation: "leaky_relu",
		DecoderActivation: "relu",
		FinalActivation:   "sigmoid",
		GammaActivation:   "linear",
		BetaActivation:    "linear",
		DropoutRate:       0.5,
		Momentum:          0.9,
		InitStdDev:        0.02,
		LearningRate:      1e-3,
		Loss:              "mean_absolute_error",
		Optimizer:         "adam",
	}
}

// Conditioned returns whether or not the model has a control network and FiLM layers.
func (hp Hyperparameters) Conditioned() bool {
	return hp.FilmType != FilmNone
}

// Validate checks that the Hyperparameters describe a model that can be assembled. Any error it
// returns is a *ConfigurationError. Shape problems that only show up once the layers are built,
// such as spatial dimensions that do not survive the round trip, are left to Assemble.
func (hp Hyperparameters) Validate() error {
	for i, d := range hp.InputShape {
		if d < 1 {
			return configErr("input_shape", "dimension %d is %d, must be ≥ 1", i, d)
		}
	}

	if hp.Layers < 1 {
		return configErr("n_layers", "must be ≥ 1 (got %d)", hp.Layers)
	}

	if len(hp.EncoderFilters) == 0 {
		if hp.BaseFilters < 1 {
			return configErr("base_filters", "must be ≥ 1 (got %d)", hp.BaseFilters)
		}

		// the sum of the doubled filters, used by complex conditioning, stays below f << n
		if f, n := hp.BaseFilters, uint(hp.Layers); n >= 63 || (f<<n)>>n != f {
			return configErr("base_filters", "%d doubled over %d layers overflows", f, hp.Layers)
		}
	} else if len(hp.EncoderFilters) != hp.Layers {
		return configErr("encoder_filters", "has %d values, want one per layer (%d)", len(hp.EncoderFilters), hp.Layers)
	} else {
		for i, f := range hp.EncoderFilters {
			// every encoder layer but the first is halved by its mirrored decoder layer
			if f < 1 || (i > 0 && f < 2) {
				return configErr("encoder_filters", "layer %d has %d filters", i, f)
			}
		}
	}

	if hp.FilmType < FilmNone || hp.FilmType > FilmComplex {
		return configErr("film_type", "unknown film type %d", hp.FilmType)
	} else if hp.ControlType < ControlDense || hp.ControlType > ControlCNN {
		return configErr("control_type", "unknown control type %d", hp.ControlType)
	}

	if hp.Conditioned() {
		if err := hp.validateControl(); err != nil {
			return err
		}
	}

	acts := []struct{ field, name string }{
		{"activation_encoder", hp.EncoderActivation},
		{"activation_decoder", hp.DecoderActivation},
		{"activation_last", hp.FinalActivation},
		{"activation_gamma", hp.GammaActivation},
		{"activation_beta", hp.BetaActivation},
	}

	for _, a := range acts {
		if _, err := operators.Activation(a.name); err != nil {
			return configErr(a.field, "unknown activation %q", a.name)
		}
	}

	if hp.DropoutRate < 0 || hp.DropoutRate >= 1 {
		return configErr("dropout", "must be in [0, 1) (got %v)", hp.DropoutRate)
	} else if hp.Momentum < 0 || hp.Momentum >= 1 {
		return configErr("momentum", "must be in [0, 1) (got %v)", hp.Momentum)
	} else if hp.InitStdDev <= 0 {
		return configErr("init_stddev", "must be > 0 (got %v)", hp.InitStdDev)
	} else if hp.LearningRate <= 0 {
		return configErr("lr", "must be > 0 (got %v)", hp.LearningRate)
	}

	if _, err := cunet.NewCostFunction(hp.Loss); err != nil {
		return configErr("loss", "%v", err)
	} else if _, err := cunet.NewOptimizer(hp.Optimizer); err != nil {
		return configErr("optimizer", "%v", err)
	}

	return nil
}

func (hp Hyperparameters) validateControl() error {
	if hp.Conditions < 1 {
		return configErr("n_conditions", "must be ≥ 1 when conditioned (got %d)", hp.Conditions)
	} else if hp.ControlOutputs < 0 {
		return configErr("control_outputs", "must be ≥ 0 (got %d)", hp.ControlOutputs)
	}

	switch hp.ControlType {
	case ControlDense:
		if len(hp.ControlNeurons) == 0 {
			return configErr("control_neurons", "needs at least one layer")
		}

		for i, n := range hp.ControlNeurons {
			if n < 1 {
				return configErr("control_neurons", "layer %d has %d neurons", i, n)
			}
		}
	case ControlCNN:
		if len(hp.ControlFilters) != len(cnnPadding) {
			return configErr("control_filters", "has %d values, want %d", len(hp.ControlFilters), len(cnnPadding))
		}

		for i, f := range hp.ControlFilters {
			if f < 1 {
				return configErr("control_filters", "layer %d has %d filters", i, f)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of hp that shares no slices with it.
func (hp Hyperparameters) Clone() Hyperparameters {
	c := hp
	c.EncoderFilters = cloneInts(hp.EncoderFilters)
	c.ControlNeurons = cloneInts(hp.ControlNeurons)
	c.ControlFilters = cloneInts(hp.ControlFilters)
	return c
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}

	c := make([]int, len(s))
	copy(c, s)
	return c
}
