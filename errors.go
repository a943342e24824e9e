package cunet

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNetFinalized    = Error{"Network has already been finalized"}
	ErrNetNotFinalized = Error{"Network has not been finalized"}
	ErrNoNodes         = Error{"Network has no nodes"}
	ErrNoOutputs       = Error{"No output nodes given"}
	ErrRegisterNilFunc = Error{"Registered function is nil"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// ShapeMismatchError is returned by Operators when the shape of one of their inputs does not fit
// what the Operator requires.
type ShapeMismatchError struct {
	// Op is the TypeString of the Operator reporting the error
	Op string

	// Input is the index of the offending input, or -1 if the mismatch is between several
	Input int

	Got  Shape
	Want string
}

func (err ShapeMismatchError) Error() string {
	if err.Input < 0 {
		return fmt.Sprintf("%s: inputs have mismatched shapes (%v), want %s", err.Op, err.Got, err.Want)
	}

	return fmt.Sprintf("%s: input %d has shape %v, want %s", err.Op, err.Input, err.Got, err.Want)
}

// UnknownTypeError is returned when looking up a CostFunction or Optimizer under a name that was
// never registered.
type UnknownTypeError struct {
	Kind string
	Name string
}

func (err UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown %s %q", err.Kind, err.Name)
}
