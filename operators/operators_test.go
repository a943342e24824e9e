package operators_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darius522/cunet"
	"github.com/darius522/cunet/operators"
)

func input(t *testing.T, net *cunet.Network, name string, dims ...int) *cunet.Node {
	n, err := net.AddInput(name, dims...)
	require.NoError(t, err)
	return n
}

func mismatch(t *testing.T, err error) cunet.ShapeMismatchError {
	var sm cunet.ShapeMismatchError
	require.True(t, errors.As(err, &sm), "want ShapeMismatchError, got %v", err)
	return sm
}

func TestConvShapes(t *testing.T) {
	cases := []struct {
		name string
		op   cunet.Operator
		in   []int
		out  []int
	}{
		{"SameStride2", operators.Conv2D(16).Kernel(5).Stride(2), []int{512, 128, 1}, []int{256, 64, 16}},
		{"SameOdd", operators.Conv2D(8).Kernel(5).Stride(2), []int{5, 7, 1}, []int{3, 4, 8}},
		{"Valid", operators.Conv2D(4).Kernel(3, 2).Padding(operators.Valid), []int{10, 10, 2}, []int{8, 9, 4}},
		{"TransposeSame", operators.Conv2DTranspose(8).Kernel(5).Stride(2), []int{4, 2, 32}, []int{8, 4, 8}},
		{"TransposeValid", operators.Conv2DTranspose(1).Kernel(5).Stride(2).Padding(operators.Valid), []int{4, 4, 3}, []int{11, 11, 1}},
		{"Conv1DSame", operators.Conv1D(16).Kernel(4), []int{4, 1}, []int{4, 16}},
		{"Conv1DValid", operators.Conv1D(64).Kernel(4).Padding(operators.Valid), []int{4, 32}, []int{1, 64}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			net := new(cunet.Network)
			n, err := net.Add("op", c.op, input(t, net, "in", c.in...))
			require.NoError(t, err)
			assert.Equal(t, c.out, n.Dims())
		})
	}
}

func TestConvParams(t *testing.T) {
	net := new(cunet.Network)
	in := input(t, net, "in", 8, 8, 3)

	n, err := net.Add("conv", operators.Conv2D(16).Kernel(5).Stride(2), in)
	require.NoError(t, err)
	ps := n.Params()
	require.Len(t, ps, 2)
	assert.Equal(t, []int{5, 5, 3, 16}, ps[0].Shape.Dims)
	assert.Equal(t, 75, ps[0].FanIn)
	assert.Equal(t, 400, ps[0].FanOut)
	assert.Equal(t, []int{16}, ps[1].Shape.Dims)

	n, err = net.Add("deconv", operators.Conv2DTranspose(4).Kernel(5).Stride(2).NoBiases(), in)
	require.NoError(t, err)
	require.Len(t, n.Params(), 1)
	assert.Equal(t, []int{5, 5, 4, 3}, n.Params()[0].Shape.Dims)
}

func TestConvErrors(t *testing.T) {
	net := new(cunet.Network)
	flat := input(t, net, "flat", 10)
	small := input(t, net, "small", 2, 2, 1)

	_, err := net.Add("rank", operators.Conv2D(4), flat)
	assert.Equal(t, 0, mismatch(t, err).Input)

	_, err = net.Add("tooSmall", operators.Conv2D(4).Kernel(3).Padding(operators.Valid), small)
	mismatch(t, err)

	_, err = net.Add("filters", operators.Conv2D(0), small)
	assert.Error(t, err)

	_, err = net.Add("kernel", operators.Conv2D(1).Kernel(1, 2, 3), small)
	assert.Error(t, err)
}

func TestFiLM(t *testing.T) {
	net := new(cunet.Network)
	x := input(t, net, "x", 8, 4, 16)
	one := input(t, net, "one", 1)
	many := input(t, net, "many", 16)
	wrong := input(t, net, "wrong", 15)

	n, err := net.Add("simple", operators.FiLM(operators.FiLMSimple), x, one, one)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 16}, n.Dims())

	n, err = net.Add("complex", operators.FiLM(operators.FiLMComplex), x, many, many)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 16}, n.Dims())

	_, err = net.Add("simpleWrong", operators.FiLM(operators.FiLMSimple), x, many, one)
	assert.Equal(t, 1, mismatch(t, err).Input)

	_, err = net.Add("complexWrong", operators.FiLM(operators.FiLMComplex), x, many, wrong)
	assert.Equal(t, 2, mismatch(t, err).Input)

	_, err = net.Add("twoInputs", operators.FiLM(operators.FiLMSimple), x, one)
	assert.Error(t, err)
}

func TestConcatMult(t *testing.T) {
	net := new(cunet.Network)
	a := input(t, net, "a", 8, 4, 16)
	b := input(t, net, "b", 8, 4, 8)
	c := input(t, net, "c", 8, 5, 8)
	mask := input(t, net, "mask", 8, 4, 1)

	n, err := net.Add("concat", operators.Concat(), a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 24}, n.Dims())
	assert.Equal(t, []int{8, 4, 16}, a.Dims(), "concat must not change its inputs")

	_, err = net.Add("concatSpatial", operators.Concat(), a, c)
	assert.Equal(t, 1, mismatch(t, err).Input)

	_, err = net.Add("concatOne", operators.Concat(), a)
	assert.Error(t, err)

	n, err = net.Add("mult", operators.Mult(), b, b)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 8}, n.Dims())

	_, err = net.Add("multWrong", operators.Mult(), a, b)
	assert.Equal(t, 1, mismatch(t, err).Input)

	// single-channel inputs are broadcast, in either position
	n, err = net.Add("multBroadcast", operators.Mult(), b, mask)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 8}, n.Dims())

	n, err = net.Add("multBroadcastFirst", operators.Mult(), mask, a)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 16}, n.Dims())

	_, err = net.Add("multBroadcastSpatial", operators.Mult(), c, mask)
	assert.Equal(t, 1, mismatch(t, err).Input)
}

func TestDenseReshapeSlice(t *testing.T) {
	net := new(cunet.Network)
	v := input(t, net, "v", 6)

	d, err := net.Add("dense", operators.Dense(24), v)
	require.NoError(t, err)
	assert.Equal(t, []int{24}, d.Dims())
	assert.Equal(t, 6*24+24, d.ParamCount())

	r, err := net.Add("reshape", operators.Reshape(6, 4), d)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 4}, r.Dims())

	_, err = net.Add("reshapeWrong", operators.Reshape(5, 5), d)
	mismatch(t, err)

	f, err := net.Add("flatten", operators.Flatten(), r)
	require.NoError(t, err)
	assert.Equal(t, []int{24}, f.Dims())

	s, err := net.Add("slice", operators.Slice(16, 24), f)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, s.Dims())

	s, err = net.Add("index", operators.Index(3), f)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Dims())

	_, err = net.Add("sliceOut", operators.Slice(20, 25), f)
	mismatch(t, err)

	_, err = net.Add("sliceEmpty", operators.Slice(3, 3), f)
	assert.Error(t, err)
}

func TestBatchNormDropout(t *testing.T) {
	net := new(cunet.Network)
	x := input(t, net, "x", 4, 4, 8)

	n, err := net.Add("bn", operators.BatchNorm().Momentum(0.9), x)
	require.NoError(t, err)
	assert.Equal(t, 4*8, n.ParamCount())

	var trainable int
	for _, p := range n.Params() {
		if p.Trainable {
			trainable += p.Size()
		}
	}
	assert.Equal(t, 2*8, trainable)

	n, err = net.Add("bnNoScale", operators.BatchNorm().Scale(false), x)
	require.NoError(t, err)
	assert.Equal(t, 3*8, n.ParamCount())

	_, err = net.Add("bnMomentum", operators.BatchNorm().Momentum(1), x)
	assert.Error(t, err)

	n, err = net.Add("dropout", operators.Dropout(0.5), x)
	require.NoError(t, err)
	assert.Equal(t, x.Dims(), n.Dims())
	assert.Equal(t, 0.5, operators.Dropout(0.5).Rate())

	_, err = net.Add("dropoutRate", operators.Dropout(1), x)
	assert.Error(t, err)
}

func TestActivation(t *testing.T) {
	for _, name := range operators.Activations() {
		op, err := operators.Activation(name)
		require.NoError(t, err, name)
		if name != "identity" {
			assert.Equal(t, name, op.TypeString())
		}
	}

	_, err := operators.Activation("swish")
	assert.Error(t, err)

	op, err := operators.Activation("leaky_relu")
	require.NoError(t, err)
	assert.Equal(t, "leaky_relu(alpha=0.2)", op.(interface{ String() string }).String())

	assert.True(t, operators.IsLinear("linear"))
	assert.False(t, operators.IsLinear("relu"))
}
