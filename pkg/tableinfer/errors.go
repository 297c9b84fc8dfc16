package tableinfer

import (
	"errors"
	"fmt"
)

// ErrNilGrid indicates a nil grid was passed to the inference engine.
var ErrNilGrid = errors.New("nil grid")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// InferError represents an error during table inference for one
// sheet. Heuristic no-match outcomes are not errors; only invalid
// caller input surfaces here.
type InferError struct {
	SheetName string
	Component string // "grid", "detect", "assemble"
	Err       error
}

func (e *InferError) Error() string {
	return fmt.Sprintf("inference error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *InferError) Unwrap() error {
	return e.Err
}

// NewInferError creates a new InferError.
func NewInferError(sheetName, component string, err error) *InferError {
	return &InferError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
