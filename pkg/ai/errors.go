// Package ai provides common types and utilities for the tutor's AI
// collaborators. It defines the error classification shared by text
// generators and speech synthesizers.
package ai

import (
	"context"
	"errors"
)

// Common error types used across AI providers
var (
	// ErrRecoverable indicates a temporary failure such as a network timeout,
	// an overloaded backend or a 5xx response. The same call may succeed later.
	ErrRecoverable = errors.New("recoverable AI provider error")

	// ErrFatal indicates a failure that will not go away on its own: a missing
	// API key, an unknown model, a malformed request.
	ErrFatal = errors.New("fatal AI provider error")
)

// IsRecoverable reports whether err is classified as recoverable.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrRecoverable)
}

// IsFatal reports whether err is classified as fatal.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatal)
}

// ProviderError wraps an underlying provider error with its classification.
type ProviderError struct {
	Underlying error
	Retryable  bool
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		if e.Underlying != nil {
			return e.Message + ": " + e.Underlying.Error()
		}
		return e.Message
	}
	if e.Underlying == nil {
		return "AI provider error"
	}
	return e.Underlying.Error()
}

// Is matches the classification sentinels.
func (e *ProviderError) Is(target error) bool {
	if e.Retryable {
		return target == ErrRecoverable
	}
	return target == ErrFatal
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewRecoverableError creates a recoverable error with context
func NewRecoverableError(underlying error, message string) error {
	return &ProviderError{
		Underlying: underlying,
		Retryable:  true,
		Message:    message,
	}
}

// NewFatalError creates a fatal error with context
func NewFatalError(underlying error, message string) error {
	return &ProviderError{
		Underlying: underlying,
		Retryable:  false,
		Message:    message,
	}
}

// Classify returns a short label for logging: "timeout", "recoverable",
// "fatal" or "unknown".
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case IsRecoverable(err):
		return "recoverable"
	case IsFatal(err):
		return "fatal"
	default:
		return "unknown"
	}
}
