package operators

import (
	"fmt"
	"github.com/darius522/cunet"
	"github.com/pkg/errors"
)

type dropout float64

// Dropout returns dropout with the given rate, which must be in [0, 1). It is only active during
// training.
func Dropout(rate float64) dropout {
	return dropout(rate)
}

func (t dropout) TypeString() string {
	return "dropout"
}

func (t dropout) String() string {
	return fmt.Sprintf("dropout(%g)", float64(t))
}

// Rate returns the fraction of values that are dropped.
func (t dropout) Rate() float64 {
	return float64(t)
}

func (t dropout) OutputShape(ins []*cunet.Node) (cunet.Shape, error) {
	if t < 0 || t >= 1 {
		return cunet.Shape{}, errors.Errorf("Dropout rate must be in [0, 1) (%v)", float64(t))
	}

	return single(t.TypeString(), ins)
}
