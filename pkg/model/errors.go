package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
	ErrEmptyRequestSet  = errors.New("no pending requests")
	ErrSimulationBusy   = errors.New("simulation already running")
	ErrInvalidTrack     = errors.New("track is not an integer")
	ErrTrackOutOfRange  = errors.New("track out of range")
	ErrDuplicateTrack   = errors.New("track already requested")
	ErrInvalidDirection = errors.New("invalid direction")
)

// ValidationError reports a rejected track value. It unwraps to one of the
// track sentinels so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ErrorCode represents a structured API error code.
type ErrorCode string

const (
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrConflict   ErrorCode = "CONFLICT"
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
)

// APIError is a structured error returned by the disksched API.
type APIError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldError describes a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewValidationError creates an APIError with validation details.
func NewValidationError(msg string, details ...FieldError) *APIError {
	return &APIError{Code: ErrValidation, Message: msg, Details: details}
}

// NewNotFoundError creates a NOT_FOUND APIError.
func NewNotFoundError(resource, id string) *APIError {
	return &APIError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s '%s' not found", resource, id),
	}
}

// NewInternalError creates an INTERNAL_ERROR APIError.
func NewInternalError(msg string) *APIError {
	return &APIError{Code: ErrInternal, Message: msg}
}

// ToAPIError maps domain errors onto API error codes.
func ToAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		fe := FieldError{Field: vErr.Field, Message: vErr.Error()}
		if vErr.Err != nil {
			fe.Message = vErr.Err.Error()
		}
		return NewValidationError(vErr.Error(), fe)
	}
	switch {
	case errors.Is(err, ErrSimulationBusy):
		return &APIError{Code: ErrConflict, Message: err.Error()}
	case errors.Is(err, ErrInvalidAlgorithm), errors.Is(err, ErrEmptyRequestSet):
		return NewValidationError(err.Error())
	}
	return NewInternalError(err.Error())
}
