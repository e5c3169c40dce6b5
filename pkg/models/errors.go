package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the models package.
var (
	// ErrInvalidProjectName indicates a project name that fails validation.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrInvalidConfig indicates a ProjectConfig that violates its invariants.
	ErrInvalidConfig = errors.New("invalid project configuration")
)

// ValidationError describes a single invalid ProjectConfig field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
