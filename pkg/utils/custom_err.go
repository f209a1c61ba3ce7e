package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")
	ErrGenerationFailed   = errors.New("plan generation failed")
	ErrParseFailed        = errors.New("plan parse failed")

	ErrTripNotFound       = errors.New("trip not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidExpense     = errors.New("invalid expense")
	ErrInvalidTripStatus  = errors.New("invalid trip status")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)

// GenerationError is returned by text generators for any failure to obtain a completion.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrGenerationFailed, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError wraps cause, or a message when cause is nil.
func NewGenerationError(cause error, format string, args ...any) error {
	if cause == nil {
		cause = fmt.Errorf(format, args...)
	} else if format != "" {
		cause = fmt.Errorf(format+": %w", append(args, cause)...)
	}
	return &GenerationError{Cause: cause}
}

// ParseError carries the raw model output prefix for diagnostics only.
type ParseError struct {
	Reason string
	Raw    string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrParseFailed, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrParseFailed, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParseFailed }

// InvalidTripRequest wraps ErrInvalidTripRequest with a human readable reason.
func InvalidTripRequest(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTripRequest, reason)
}
