package model

import (
	"github.com/darius522/cunet"
	"github.com/darius522/cunet/operators"
	"github.com/pkg/errors"
)

// Slicer routes the flat gamma and beta vectors to the encoder layers. Slicers hold no state:
// the position of the next slice is carried by the cursor that Next takes and returns, which the
// caller threads through the encoder layers in order.
type Slicer interface {
	// Mode is the FiLM mode that the slices are shaped for
	Mode() operators.FiLMMode

	// Length returns the length that gamma and beta must have, given the filters of each encoder
	// layer
	Length(filters []int) int

	// Next returns the bounds of the slice for layer i, and the cursor for layer i+1
	Next(i int, filters []int, cursor int) (b Bounds, next int)
}

type simpleSlicer struct{}

func (simpleSlicer) Mode() operators.FiLMMode { return operators.FiLMSimple }

func (simpleSlicer) Length(filters []int) int { return len(filters) }

// the cursor is unused; each layer takes the value at its own index
func (simpleSlicer) Next(i int, filters []int, cursor int) (Bounds, int) {
	return Bounds{i, i + 1}, cursor
}

type complexSlicer struct{}

func (complexSlicer) Mode() operators.FiLMMode { return operators.FiLMComplex }

func (complexSlicer) Length(filters []int) int {
	var sum int
	for _, f := range filters {
		sum += f
	}

	return sum
}

func (complexSlicer) Next(i int, filters []int, cursor int) (Bounds, int) {
	b := Bounds{cursor, cursor + filters[i]}
	return b, b.Hi
}

// noSlicer is used for unconditioned models; it never produces a slice
type noSlicer struct{}

func (noSlicer) Mode() operators.FiLMMode { return operators.FiLMSimple }

func (noSlicer) Length(filters []int) int { return 0 }

func (noSlicer) Next(i int, filters []int, cursor int) (Bounds, int) {
	return Bounds{}, cursor
}

func slicerFor(t FilmType) Slicer {
	switch t {
	case FilmSimple:
		return simpleSlicer{}
	case FilmComplex:
		return complexSlicer{}
	default:
		return noSlicer{}
	}
}

// SliceBounds runs the Slicer for hp over every encoder layer in order, returning the bounds of
// each layer's slice. For complex conditioning, the bounds partition [0, ConditioningLength(hp)).
func SliceBounds(hp Hyperparameters) []Bounds {
	s := slicerFor(hp.FilmType)
	fs := EncoderFilters(hp)

	bs := make([]Bounds, len(fs))
	var cursor int
	for i := range fs {
		bs[i], cursor = s.Next(i, fs, cursor)
	}

	return bs
}

// slice adds the nodes that take layer i's part of gamma and beta, returning them with the cursor
// for the next layer. The slice must match the bounds in the layer's plan.
func slice(net *cunet.Network, s Slicer, plan LayerPlan, filters []int, gamma, beta *cunet.Node, cursor int) (g, b *cunet.Node, next int, err error) {
	bounds, next := s.Next(plan.Index, filters, cursor)
	if bounds != plan.Cond {
		return nil, nil, 0, errors.Errorf("Slice %v for encoder layer %d does not match its plan %v", bounds, plan.Index, plan.Cond)
	}

	prefix := layerName("encoder", plan.Index)
	if g, err = add(net, prefix+"gamma", operators.Slice(bounds.Lo, bounds.Hi), gamma); err != nil {
		return nil, nil, 0, err
	} else if b, err = add(net, prefix+"beta", operators.Slice(bounds.Lo, bounds.Hi), beta); err != nil {
		return nil, nil, 0, err
	}

	return g, b, next, nil
}
