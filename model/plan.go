package model

import (
	"fmt"
)

// Bounds is the half-open range [Lo, Hi) of the conditioning vectors used by one encoder layer.
type Bounds struct {
	Lo int `yaml:"lo"`
	Hi int `yaml:"hi"`
}

// Len returns the number of values in the range.
func (b Bounds) Len() int {
	return b.Hi - b.Lo
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d)", b.Lo, b.Hi)
}

// LayerPlan is everything needed to build one encoder or decoder layer. It is derived from the
// Hyperparameters alone, so that both halves of the U-Net agree on it.
type LayerPlan struct {
	Index      int    `yaml:"index"`
	Filters    int    `yaml:"filters"`
	Activation string `yaml:"activation"`

	// Dropout and Skip are only ever set for decoder layers
	Dropout bool `yaml:"dropout"`
	Skip    bool `yaml:"skip"`

	// Mirror is the index of the layer on the other side of the U-Net: the encoder layer that a
	// decoder layer takes its skip connection and filters from, and vice versa.
	Mirror int `yaml:"mirror"`

	// Cond is the range of gamma and beta used by an encoder layer. It is empty for decoder
	// layers and for unconditioned models.
	Cond Bounds `yaml:"cond"`
}

// EncoderFilters returns the number of filters in each encoder layer.
func EncoderFilters(hp Hyperparameters) []int {
	if len(hp.EncoderFilters) != 0 {
		return cloneInts(hp.EncoderFilters)
	}

	fs := make([]int, hp.Layers)
	for i := range fs {
		fs[i] = hp.BaseFilters << uint(i)
	}

	return fs
}

// ConditioningLength returns the length that gamma and beta must have: the number of layers for
// simple conditioning, the total number of encoder filters for complex conditioning, and zero
// for unconditioned models.
func ConditioningLength(hp Hyperparameters) int {
	return slicerFor(hp.FilmType).Length(EncoderFilters(hp))
}

// EncoderPlan returns the plan of encoder layer i. It panics if i is not in [0, hp.Layers).
func EncoderPlan(i int, hp Hyperparameters) LayerPlan {
	if i < 0 || i >= hp.Layers {
		panic(fmt.Sprintf("Encoder layer %d out of range [0, %d)", i, hp.Layers))
	}

	fs := EncoderFilters(hp)

	var cond Bounds
	switch hp.FilmType {
	case FilmSimple:
		cond = Bounds{i, i + 1}
	case FilmComplex:
		for _, f := range fs[:i] {
			cond.Lo += f
		}
		cond.Hi = cond.Lo + fs[i]
	}

	return LayerPlan{
		Index:      i,
		Filters:    fs[i],
		Activation: hp.EncoderActivation,
		Mirror:     hp.Layers - 1 - i,
		Cond:       cond,
	}
}

// DecoderPlan returns the plan of decoder layer i, which mirrors encoder layer n-1-i. It panics if
// i is not in [0, hp.Layers).
//
// The first decoder layer has no skip connection, because its input already is the last encoder
// layer. Dropout is used everywhere except the first and the last two layers. The last layer
// produces the single-channel mask.
func DecoderPlan(i int, hp Hyperparameters) LayerPlan {
	if i < 0 || i >= hp.Layers {
		panic(fmt.Sprintf("Decoder layer %d out of range [0, %d)", i, hp.Layers))
	}

	n := hp.Layers
	enc := EncoderPlan(n-1-i, hp)

	p := LayerPlan{
		Index:      i,
		Filters:    enc.Filters / 2,
		Activation: hp.DecoderActivation,
		Dropout:    !(i == 0 || i == n-1 || i == n-2),
		Skip:       i > 0,
		Mirror:     enc.Index,
	}

	if i == n-1 {
		p.Filters = 1
		p.Activation = hp.FinalActivation
	}

	return p
}

// EncoderPlans returns the plans of every encoder layer, in order.
func EncoderPlans(hp Hyperparameters) []LayerPlan {
	ps := make([]LayerPlan, hp.Layers)
	for i := range ps {
		ps[i] = EncoderPlan(i, hp)
	}

	return ps
}

// DecoderPlans returns the plans of every decoder layer, in order.
func DecoderPlans(hp Hyperparameters) []LayerPlan {
	ps := make([]LayerPlan, hp.Layers)
	for i := range ps {
		ps[i] = DecoderPlan(i, hp)
	}

	return ps
}
