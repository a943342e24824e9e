package model

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/operators"
	"github.com/pkg/errors"
)

const (
	// SpectrogramInput is the name of the input Node holding the mixture spectrogram
	SpectrogramInput = "spectrogram"

	// MaskNode is the name of the last decoder layer, which produces the separation mask
	MaskNode = "mask"

	// OutputNode is the name of the separated spectrogram: the input multiplied by the mask
	OutputNode = "output"

	blockKernel = 5
	blockStride = 2
)

func layerName(side string, i int) string {
	return fmt.Sprintf("%s/%d/", side, i)
}

// add is Network.Add, except that shape mismatches are returned as *ShapeError
func add(net *cunet.Network, name string, op cunet.Operator, ins ...*cunet.Node) (*cunet.Node, error) {
	n, err := net.Add(name, op, ins...)
	if err != nil {
		var sm cunet.ShapeMismatchError
		if errors.As(err, &sm) {
			return nil, &ShapeError{Node: name, Reason: sm.Error(), Err: err}
		}

		return nil, err
	}

	return n, nil
}

func addActivation(net *cunet.Network, name, act string, x *cunet.Node) (*cunet.Node, error) {
	op, err := operators.Activation(act)
	if err != nil {
		return nil, err
	}

	return add(net, name, op, x)
}

// builder holds what the encoder and decoder blocks share while a single model is assembled
type builder struct {
	net  *cunet.Network
	hp   Hyperparameters
	init cunet.Initializer
}

func (b *builder) batchNorm() cunet.Operator {
	return operators.BatchNorm().Momentum(b.hp.Momentum).Scale(true)
}

// encode adds encoder layer p.Index: a strided convolution halving both spatial dimensions, batch
// normalization, modulation by gamma and beta (if film is not nil) and the activation.
func (b *builder) encode(x *cunet.Node, p LayerPlan, film cunet.Operator, gamma, beta *cunet.Node) (*cunet.Node, error) {
	prefix := layerName("encoder", p.Index)

	conv := operators.Conv2D(p.Filters).
		Kernel(blockKernel).
		Stride(blockStride).
		Padding(operators.Same).
		KernelInit(b.init)

	x, err := add(b.net, prefix+"conv", conv, x)
	if err != nil {
		return nil, err
	} else if x, err = add(b.net, prefix+"bn", b.batchNorm(), x); err != nil {
		return nil, err
	}

	if film != nil {
		if x, err = add(b.net, prefix+"film", film, x, gamma, beta); err != nil {
			return nil, err
		}
	}

	return addActivation(b.net, prefix+"act", p.Activation, x)
}

// decode adds decoder layer p.Index. x is the output of the previous decoder layer and skip is
// the output of the mirrored encoder layer. If the layer has no skip connection, skip is its only
// input; otherwise, x and skip must have the same number of channels and are concatenated.
//
// The concatenation is followed by a transposed convolution doubling both spatial dimensions,
// batch normalization, optional dropout and the activation. The activation of the last layer is
// named MaskNode.
func (b *builder) decode(x, skip *cunet.Node, p LayerPlan) (*cunet.Node, error) {
	prefix := layerName("decoder", p.Index)

	in := skip
	if p.Skip {
		if x.Channels() != skip.Channels() {
			return nil, &ShapeError{
				Node:   prefix + "concat",
				Reason: fmt.Sprintf("decoder input has %d channels, skip connection %v has %d", x.Channels(), skip, skip.Channels()),
			}
		}

		var err error
		if in, err = add(b.net, prefix+"concat", operators.Concat(), x, skip); err != nil {
			return nil, err
		}
	}

	deconv := operators.Conv2DTranspose(p.Filters).
		Kernel(blockKernel).
		Stride(blockStride).
		Padding(operators.Same).
		KernelInit(b.init)

	y, err := add(b.net, prefix+"deconv", deconv, in)
	if err != nil {
		return nil, err
	} else if y, err = add(b.net, prefix+"bn", b.batchNorm(), y); err != nil {
		return nil, err
	}

	if p.Dropout {
		if y, err = add(b.net, prefix+"dropout", operators.Dropout(b.hp.DropoutRate), y); err != nil {
			return nil, err
		}
	}

	name := prefix + "act"
	if p.Index == b.hp.Layers-1 {
		name = MaskNode
	}

	return addActivation(b.net, name, p.Activation, y)
}
