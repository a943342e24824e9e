package model

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/operators"
)

const (
	// ConditionInput is the name of the input Node holding the condition vector
	ConditionInput = "condition"

	controlActivation = "relu"
)

// the padding of each layer of the convolutional control network; the last one collapses the
// condition axis to a single value
var cnnPadding = []operators.Padding{operators.Same, operators.Same, operators.Valid}

// ControlNetwork builds the part of the model that maps the condition vector to gamma and beta.
type ControlNetwork interface {
	// Build adds the condition input and every node of the control network to net, returning
	// the input and the two heads. length is the width that gamma and beta are expected to have;
	// the assembler checks it afterwards.
	Build(net *cunet.Network, hp Hyperparameters, length int) (condition, gamma, beta *cunet.Node, err error)
}

// ControlFor returns the ControlNetwork for the given type.
func ControlFor(t ControlType) ControlNetwork {
	if t == ControlCNN {
		return CNNControl{}
	}

	return DenseControl{}
}

// headWidth is the width that the gamma and beta heads are built with
func headWidth(hp Hyperparameters, length int) int {
	if hp.ControlOutputs != 0 {
		return hp.ControlOutputs
	}

	return length
}

// DenseControl is a stack of fully-connected layers, one for each value of
// Hyperparameters.ControlNeurons. Every layer but the first is followed by dropout and batch
// normalization.
type DenseControl struct{}

func (DenseControl) Build(net *cunet.Network, hp Hyperparameters, length int) (condition, gamma, beta *cunet.Node, err error) {
	if condition, err = net.AddInput(ConditionInput, hp.Conditions); err != nil {
		return
	}

	x := condition
	for i, n := range hp.ControlNeurons {
		prefix := fmt.Sprintf("control/dense/%d/", i)
		if x, err = add(net, prefix+"dense", operators.Dense(n), x); err != nil {
			return
		} else if x, err = addActivation(net, prefix+"act", controlActivation, x); err != nil {
			return
		}

		if i != 0 {
			if x, err = add(net, prefix+"dropout", operators.Dropout(hp.DropoutRate), x); err != nil {
				return
			} else if x, err = add(net, prefix+"bn", operators.BatchNorm().Momentum(hp.Momentum), x); err != nil {
				return
			}
		}
	}

	gamma, beta, err = heads(net, hp, headWidth(hp, length), x)
	return
}

// CNNControl embeds the condition vector with a dense layer and runs three one-dimensional
// convolutions over it, with Hyperparameters.ControlFilters filters. Each convolution spans the
// whole condition vector and is followed by batch normalization and dropout.
type CNNControl struct{}

func (CNNControl) Build(net *cunet.Network, hp Hyperparameters, length int) (condition, gamma, beta *cunet.Node, err error) {
	if condition, err = net.AddInput(ConditionInput, hp.Conditions); err != nil {
		return
	}

	x := condition
	if x, err = add(net, "control/embedding", operators.Dense(hp.Conditions), x); err != nil {
		return
	} else if x, err = add(net, "control/embedding/reshape", operators.Reshape(hp.Conditions, 1), x); err != nil {
		return
	}

	for i, f := range hp.ControlFilters {
		prefix := fmt.Sprintf("control/conv/%d/", i)
		conv := operators.Conv1D(f).Kernel(hp.Conditions).Padding(cnnPadding[i])

		if x, err = add(net, prefix+"conv", conv, x); err != nil {
			return
		} else if x, err = add(net, prefix+"bn", operators.BatchNorm().Momentum(hp.Momentum), x); err != nil {
			return
		} else if x, err = add(net, prefix+"dropout", operators.Dropout(hp.DropoutRate), x); err != nil {
			return
		}
	}

	if x, err = add(net, "control/flatten", operators.Flatten(), x); err != nil {
		return
	}

	gamma, beta, err = heads(net, hp, headWidth(hp, length), x)
	return
}

// heads adds the two dense layers producing gamma and beta
func heads(net *cunet.Network, hp Hyperparameters, width int, x *cunet.Node) (gamma, beta *cunet.Node, err error) {
	if gamma, err = head(net, "control/gamma", hp.GammaActivation, width, x); err != nil {
		return
	}

	beta, err = head(net, "control/beta", hp.BetaActivation, width, x)
	return
}

func head(net *cunet.Network, name, act string, width int, x *cunet.Node) (*cunet.Node, error) {
	h, err := add(net, name, operators.Dense(width), x)
	if err != nil || operators.IsLinear(act) {
		return h, err
	}

	return addActivation(net, name+"/act", act, h)
}
