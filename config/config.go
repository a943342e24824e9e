// Package config loads model.Hyperparameters from configuration files and the environment.
//
// Every key can be set in a YAML, JSON or TOML file, or overridden by an environment variable
// with the prefix CUNET, such as CUNET_N_LAYERS=4 or CUNET_FILM_TYPE=complex. Keys that are not
// set anywhere keep the values of model.Defaults.
package config

import (
	"github.com/darius522/cunet/model"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"strings"
)

// EnvPrefix is the prefix of the environment variables that override configuration values.
const EnvPrefix = "CUNET"

// New returns a viper instance holding the defaults of every key, with environment overrides
// enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v, model.Defaults())

	// encoder_filters has no default, so it must be bound to be visible from the environment
	if err := v.BindEnv("encoder_filters"); err != nil {
		panic(errors.Wrap(err, "Can't bind encoder_filters to the environment"))
	}

	return v
}

// SetDefaults registers every value of hp as the default of its key.
func SetDefaults(v *viper.Viper, hp model.Hyperparameters) {
	v.SetDefault("input_shape", hp.InputShape[:])
	v.SetDefault("n_layers", hp.Layers)
	v.SetDefault("base_filters", hp.BaseFilters)
	if len(hp.EncoderFilters) != 0 {
		v.SetDefault("encoder_filters", hp.EncoderFilters)
	}
	v.SetDefault("film_type", hp.FilmType.String())
	v.SetDefault("control_type", hp.ControlType.String())
	v.SetDefault("n_conditions", hp.Conditions)
	v.SetDefault("control_neurons", hp.ControlNeurons)
	v.SetDefault("control_filters", hp.ControlFilters)
	v.SetDefault("control_outputs", hp.ControlOutputs)
	v.SetDefault("activation_encoder", hp.EncoderActivation)
	v.SetDefault("activation_decoder", hp.DecoderActivation)
	v.SetDefault("activation_last", hp.FinalActivation)
	v.SetDefault("activation_gamma", hp.GammaActivation)
	v.SetDefault("activation_beta", hp.BetaActivation)
	v.SetDefault("dropout", hp.DropoutRate)
	v.SetDefault("momentum", hp.Momentum)
	v.SetDefault("init_stddev", hp.InitStdDev)
	v.SetDefault("lr", hp.LearningRate)
	v.SetDefault("loss", hp.Loss)
	v.SetDefault("optimizer", hp.Optimizer)
}

// Load reads the configuration file at path, if path is not empty, and returns the resulting
// Hyperparameters. The format of the file is given by its extension. The Hyperparameters are
// validated before they are returned.
func Load(path string) (model.Hyperparameters, error) {
	v := New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return model.Hyperparameters{}, errors.Wrapf(err, "Failed to read config file %q", path)
		}
	}

	return FromViper(v)
}

// FromViper decodes the Hyperparameters held by v and validates them.
func FromViper(v *viper.Viper) (model.Hyperparameters, error) {
	// input_shape must have exactly three values; decoding into the array would silently pad it
	if shape := v.GetIntSlice("input_shape"); len(shape) != len(model.Hyperparameters{}.InputShape) {
		return model.Hyperparameters{}, &model.ConfigurationError{
			Field:  "input_shape",
			Reason: "must have three values (two spatial dimensions and channels)",
		}
	}

	var hp model.Hyperparameters
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	if err := v.Unmarshal(&hp, hook); err != nil {
		return model.Hyperparameters{}, errors.Wrapf(err, "Failed to decode configuration")
	}

	if err := hp.Validate(); err != nil {
		return model.Hyperparameters{}, err
	}

	return hp, nil
}
