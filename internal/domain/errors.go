package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")

	// ErrInsufficientData is returned by statistics that are undefined on an
	// empty answer history or ledger.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInsufficientCandidates is returned when a question generator cannot
	// find enough distinct distractors.
	ErrInsufficientCandidates = errors.New("insufficient candidates")

	// ErrNoWordsAvailable is returned when neither a new nor a review word can
	// be selected for a user.
	ErrNoWordsAvailable = errors.New("no words available")
)

// Conflict errors raised by the answer flow.
var (
	ErrQuestionAnswered = fmt.Errorf("question already answered: %w", ErrConflict)
	ErrQuestionNotOwned = fmt.Errorf("question belongs to another user: %w", ErrConflict)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
