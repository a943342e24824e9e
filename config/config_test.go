package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darius522/cunet/config"
	"github.com/darius522/cunet/model"
)

func write(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	hp, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, model.Defaults(), hp)
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "cunet.yaml", `
input_shape: [256, 64, 1]
n_layers: 4
base_filters: 8
film_type: complex
control_type: cnn
n_conditions: 6
control_filters: [8, 16, 32]
activation_last: tanh
lr: 0.01
loss: mse
`)

	hp, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, [3]int{256, 64, 1}, hp.InputShape)
	assert.Equal(t, 4, hp.Layers)
	assert.Equal(t, 8, hp.BaseFilters)
	assert.Equal(t, model.FilmComplex, hp.FilmType)
	assert.Equal(t, model.ControlCNN, hp.ControlType)
	assert.Equal(t, 6, hp.Conditions)
	assert.Equal(t, []int{8, 16, 32}, hp.ControlFilters)
	assert.Equal(t, "tanh", hp.FinalActivation)
	assert.Equal(t, 0.01, hp.LearningRate)
	assert.Equal(t, "mse", hp.Loss)

	// untouched keys keep their defaults
	assert.Equal(t, "leaky_relu", hp.EncoderActivation)
	assert.Equal(t, 0.9, hp.Momentum)

	m, err := model.Assemble(hp)
	require.NoError(t, err)
	assert.Equal(t, 8+16+32+64, model.ConditioningLength(m.Hyperparameters))
}

func TestLoadJSON(t *testing.T) {
	path := write(t, "cunet.json", `{"n_layers": 3, "film_type": "none", "encoder_filters": [4, 8, 16]}`)

	hp, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, hp.Layers)
	assert.Equal(t, model.FilmNone, hp.FilmType)
	assert.Equal(t, []int{4, 8, 16}, hp.EncoderFilters)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CUNET_N_LAYERS", "3")
	t.Setenv("CUNET_FILM_TYPE", "complex")

	path := write(t, "cunet.yaml", "n_layers: 5\n")
	hp, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, hp.Layers, "the environment overrides the file")
	assert.Equal(t, model.FilmComplex, hp.FilmType)
}

func TestEnvEncoderFilters(t *testing.T) {
	t.Setenv("CUNET_N_LAYERS", "3")
	t.Setenv("CUNET_ENCODER_FILTERS", "4,8,16")

	assert.NotPanics(t, func() { config.New() })

	hp, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 16}, hp.EncoderFilters)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	var cerr *model.ConfigurationError

	_, err = config.Load(write(t, "shape.yaml", "input_shape: [512, 128]\n"))
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, "input_shape", cerr.Field)

	_, err = config.Load(write(t, "layers.yaml", "n_layers: 0\n"))
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, "n_layers", cerr.Field)

	_, err = config.Load(write(t, "film.yaml", "film_type: fancy\n"))
	assert.Error(t, err)
}
