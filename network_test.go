package cunet_test

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darius522/cunet"
	_ "github.com/darius522/cunet/costfuncs"
	"github.com/darius522/cunet/hyperparams"
	"github.com/darius522/cunet/operators"
	"github.com/darius522/cunet/optimizers"
)

func objective(t *testing.T) cunet.Objective {
	cost, err := cunet.NewCostFunction("mse")
	require.NoError(t, err)
	opt, err := cunet.NewOptimizer("sgd")
	require.NoError(t, err)

	return cunet.Objective{
		Cost:        cost,
		Opt:         opt,
		HyperParams: map[string]cunet.HyperParameter{optimizers.LearningRate: hyperparams.Constant(0.1)},
	}
}

// small builds in -> dense(3) -> relu, finalized
func small(t *testing.T) (*cunet.Network, *cunet.Node, *cunet.Node) {
	net := new(cunet.Network)
	in, err := net.AddInput("in", 4)
	require.NoError(t, err)
	d, err := net.Add("dense", operators.Dense(3), in)
	require.NoError(t, err)
	out, err := net.Add("act", operators.ReLU(), d)
	require.NoError(t, err)
	require.NoError(t, net.Finalize(objective(t), out))
	return net, in, out
}

func TestAddShapes(t *testing.T) {
	net, in, out := small(t)

	assert.Equal(t, []int{3}, out.Dims())
	assert.Equal(t, 4, net.InputSize())
	assert.Equal(t, 3, net.OutputSize())
	assert.True(t, in.IsInput())
	assert.True(t, out.IsOutput())
	assert.Equal(t, 0, out.OutputIndex())
	assert.Equal(t, 3, net.NumNodes())
	assert.Same(t, net.Node("dense"), out.Input(0))
	assert.Equal(t, 4*3+3, net.ParamCount())
	assert.Equal(t, net.ParamCount(), net.TrainableCount())
}

func TestAddNames(t *testing.T) {
	net := new(cunet.Network)
	in, err := net.AddInput("in", 2)
	require.NoError(t, err)

	for _, name := range []string{"", `a"b`, "in"} {
		_, err := net.Add(name, operators.ReLU(), in)
		assert.Error(t, err, "name %q", name)
	}

	assert.Equal(t, 1, net.NumNodes(), "failed adds must leave the network unchanged")
}

func TestAddErrors(t *testing.T) {
	net := new(cunet.Network)
	in, err := net.AddInput("in", 2, 2, 1)
	require.NoError(t, err)

	_, err = net.Add("nil", nil, in)
	var nilErr cunet.NilArgError
	assert.True(t, errors.As(err, &nilErr))

	_, err = net.Add("none", operators.ReLU())
	assert.Error(t, err)

	other := new(cunet.Network)
	foreign, err := other.AddInput("foreign", 2, 2, 1)
	require.NoError(t, err)
	_, err = net.Add("mixed", operators.Concat(), in, foreign)
	assert.Error(t, err)

	b, err := net.AddInput("b", 3, 2, 1)
	require.NoError(t, err)
	_, err = net.Add("mult", operators.Mult(), in, b)
	var sm cunet.ShapeMismatchError
	require.True(t, errors.As(err, &sm))
	assert.Equal(t, "multiply", sm.Op)
	assert.Equal(t, 1, sm.Input)

	_, err = net.AddInput("bad", 3, 0)
	assert.Error(t, err)

	assert.Equal(t, 2, net.NumNodes())
}

func TestFinalize(t *testing.T) {
	t.Run("Unused", func(t *testing.T) {
		net := new(cunet.Network)
		in, _ := net.AddInput("in", 4)
		out, err := net.Add("out", operators.ReLU(), in)
		require.NoError(t, err)
		_, err = net.Add("dangling", operators.Sigmoid(), in)
		require.NoError(t, err)

		assert.Error(t, net.Finalize(objective(t), out))
		assert.False(t, net.Finalized())
	})

	t.Run("InputAsOutput", func(t *testing.T) {
		net := new(cunet.Network)
		in, _ := net.AddInput("in", 4)
		assert.Error(t, net.Finalize(objective(t), in))
	})

	t.Run("Duplicate", func(t *testing.T) {
		net := new(cunet.Network)
		in, _ := net.AddInput("in", 4)
		out, _ := net.Add("out", operators.ReLU(), in)
		assert.Error(t, net.Finalize(objective(t), out, out))
	})

	t.Run("Objective", func(t *testing.T) {
		net := new(cunet.Network)
		in, _ := net.AddInput("in", 4)
		out, _ := net.Add("out", operators.ReLU(), in)

		obj := objective(t)
		obj.Cost = nil
		assert.Error(t, net.Finalize(obj, out))

		obj = objective(t)
		obj.HyperParams = nil
		assert.Error(t, net.Finalize(obj, out), "optimizer needs a learning rate")

		assert.Equal(t, -1, net.OutputSize())
	})

	t.Run("Twice", func(t *testing.T) {
		net, in, out := small(t)
		assert.Equal(t, cunet.ErrNetFinalized, net.Finalize(objective(t), out))

		_, err := net.Add("more", operators.ReLU(), in)
		assert.Equal(t, cunet.ErrNetFinalized, err)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, cunet.ErrNoNodes, new(cunet.Network).Finalize(objective(t)))
	})
}

func TestRegistry(t *testing.T) {
	_, err := cunet.NewCostFunction("no such loss")
	var ute cunet.UnknownTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "CostFunction", ute.Kind)

	assert.Error(t, cunet.RegisterOptimizer("adam", func() cunet.Optimizer { return optimizers.Adam() }))
	assert.Equal(t, cunet.ErrRegisterNilFunc, cunet.RegisterCostFunction("nil", nil))

	assert.Contains(t, cunet.CostFunctions(), "mean_absolute_error")
	assert.Equal(t, []string{"adam", "sgd"}, cunet.Optimizers())
}

func TestSummary(t *testing.T) {
	net, _, _ := small(t)
	s := net.Summary()

	assert.Equal(t, []string{"in"}, s.Inputs)
	assert.Equal(t, []string{"act"}, s.Outputs)
	assert.Equal(t, "mean_squared_error", s.Loss)
	assert.Equal(t, "sgd", s.Optimizer)
	require.Len(t, s.Nodes, 3)
	assert.Equal(t, cunet.NodeSummary{Name: "dense", Op: "dense(3)", Dims: []int{3}, Inputs: []string{"in"}, Params: 15}, s.Nodes[1])

	other, _, _ := small(t)
	assert.Equal(t, s, other.Summary())
}

func TestNewWeights(t *testing.T) {
	net := new(cunet.Network)
	_, err := net.NewWeights(rand.New(rand.NewSource(1)))
	assert.Equal(t, cunet.ErrNetNotFinalized, err)

	net, _, _ = small(t)
	ws, err := net.NewWeights(rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.Len(t, ws, 2)
	assert.Len(t, ws["dense/kernel"], 12)
	assert.Equal(t, []float64{0, 0, 0}, ws["dense/bias"])

	again, err := net.NewWeights(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, ws, again, "the same seed gives the same weights")
}

func TestShape(t *testing.T) {
	s := cunet.NewShape(4, 3, 2)
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 2, s.Channels())
	assert.Equal(t, 3, s.Dim(-2))
	assert.Equal(t, []int{4, 3}, s.Spatial())
	assert.Equal(t, "[4 3 2]", s.String())
	assert.True(t, s.Equal(cunet.NewShape(4, 3, 2)))
	assert.False(t, s.Equal(cunet.NewShape(4, 3)))
	assert.Equal(t, 0, cunet.Shape{}.Size())
}
