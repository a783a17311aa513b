package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when submitted input fails validation.
	// MissingFieldError and InvalidFormatError both wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is wrapped by MissingFieldError.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidFormat is wrapped by InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid format")
)

// Reasons attached to InvalidFormatError for longitud.
const (
	ReasonNotInteger  = "is not an integer"
	ReasonNotPositive = "must be a positive integer"
)

// MissingFieldError reports a required form field that was absent or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingField, e.Field)
}

// Is lets errors.Is match both ErrMissingField and ErrValidation.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField || target == ErrValidation
}

// InvalidFormatError reports a field whose value could not be coerced.
type InvalidFormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: field %q value %q %s", ErrInvalidFormat, e.Field, e.Value, e.Reason)
}

// Is lets errors.Is match both ErrInvalidFormat and ErrValidation.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat || target == ErrValidation
}
