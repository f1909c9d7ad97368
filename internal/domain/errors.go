package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the lookup layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUpstream      = errors.New("upstream failure")
)

// FieldError names one rejected request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// UpstreamError reports a non-success response from the document source
// after Attempts tries.
type UpstreamError struct {
	Status   int
	Attempts int
}

func (e *UpstreamError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("upstream status %d after %d attempts", e.Status, e.Attempts)
	}
	return fmt.Sprintf("upstream status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }
