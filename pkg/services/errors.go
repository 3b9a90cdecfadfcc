package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the API layer maps onto HTTP statuses.
var (
	// ErrNotFound: the entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists: a create collided with an existing row, e.g. a
	// webhook redelivery reusing a message id.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput: the request failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition: the requested status change is not an edge of
	// the task lifecycle machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError names the offending field alongside the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError builds a field-scoped validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
