package utils

import "fmt"

// GradsError represents a structured descriptor or record error.
type GradsError struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *GradsError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// WrapError creates a contextual error.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &GradsError{
		Context: context,
		Cause:   cause,
	}
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *GradsError) Unwrap() error {
	return e.Cause
}
