package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDeviceNotFound    = fmt.Errorf("device %w", ErrNotFound)
	ErrEmployeeNotFound  = fmt.Errorf("employee %w", ErrNotFound)
	ErrInvalidDeviceType = errors.New("invalid device type")
	ErrValidation        = errors.New("validation failed")
)

// ValidationError carries a message that is safe to return to the caller.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
