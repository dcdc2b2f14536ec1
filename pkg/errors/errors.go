package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies failures by where they originate and how the
// orchestrator should react to them.
type ErrorType string

const (
	// ErrorTypeConfig covers invalid user input and bad configuration.
	// Never retried; the run terminates before any side effect.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeCapability means the extraction engine itself is
	// unavailable. Checked once at startup, never retried.
	ErrorTypeCapability ErrorType = "capability"
	ErrorTypeAuth       ErrorType = "auth"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	// ErrorTypeExtraction is a structural extraction failure (profile
	// unreachable, engine rejected the URL). The caller treats it as a
	// domain outcome, not a crash.
	ErrorTypeExtraction ErrorType = "extraction"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error carries a failure classification alongside the message.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a typed error without a cause.
func New(t ErrorType, message string) *Error {
	return &Error{Type: t, Message: message}
}

// Wrap creates a typed error wrapping an underlying cause.
func Wrap(t ErrorType, message string, err error) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

// IsRetryable reports whether an error type is worth retrying.
func IsRetryable(t ErrorType) bool {
	switch t {
	case ErrorTypeNetwork, ErrorTypeRateLimit:
		return true
	default:
		return false
	}
}

// TypeOf extracts the error type from an error chain. Untyped errors
// report ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Type
	}
	return ErrorTypeUnknown
}
