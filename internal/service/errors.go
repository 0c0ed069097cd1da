// Package service holds the user, exercise and log operations behind the HTTP API.
package service

import "errors"

var (
	// ErrNotFound is returned when the referenced user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidInput is matched by every *InputError.
	ErrInvalidInput = errors.New("invalid input")
)

// InputError describes a single rejected input field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
