package model

import (
	"fmt"
)

// ConfigurationError is returned when the Hyperparameters cannot describe a valid model, including
// when the control network produces conditioning vectors of the wrong length. It is always
// returned before any part of the U-Net is built.
type ConfigurationError struct {
	// Field is the configuration key at fault, as used in configuration files
	Field  string
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("Invalid configuration for %s: %s", err.Field, err.Reason)
}

func configErr(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ShapeError is returned when a node of the model cannot be built because the shapes of its
// inputs do not fit together, for example when a decoder layer's input has a different number of
// channels than its skip connection.
type ShapeError struct {
	// Node is the name of the node that could not be added
	Node   string
	Reason string

	// Err is the error from the graph builder, if there was one
	Err error
}

func (err *ShapeError) Error() string {
	return fmt.Sprintf("Shape error at %q: %s", err.Node, err.Reason)
}

func (err *ShapeError) Unwrap() error {
	return err.Err
}
