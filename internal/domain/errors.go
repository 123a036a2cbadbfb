package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals malformed domain input (empty skill name,
	// negative salary, unrecognized seniority, empty criteria set).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing source document.
	ErrNotFound = errors.New("not found")
	// ErrMissingField signals that a field required by an enabled matching
	// criterion is absent on the source document.
	ErrMissingField = errors.New("missing required field")
	// ErrSearchUnavailable signals that the search index is unreachable.
	ErrSearchUnavailable = errors.New("search index unavailable")
)

// MissingFieldError wraps ErrMissingField with the name of the absent field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingField creates a missing field error.
func NewMissingField(field string) error {
	return &MissingFieldError{Field: field}
}
