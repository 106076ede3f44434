// Package domain defines the value types shared by the hashtag tooling.
package domain

import (
	"errors"
	"fmt"
)

// DomainError is an error with a stable code.
// Codes have the form HT-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "HT-INPUT-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Input errors (INPUT).
var (
	// ErrInputNotFound indicates an input file does not exist.
	ErrInputNotFound = NewDomainError("HT-INPUT-4040", "input not found")

	// ErrLineTooLong indicates a line exceeds the configured maximum size.
	ErrLineTooLong = NewDomainError("HT-INPUT-4130", "line too long")

	// ErrInputUnreadable indicates an input could not be read.
	ErrInputUnreadable = NewDomainError("HT-INPUT-5000", "input unreadable")
)

// Configuration errors (CONF).
var (
	// ErrInvalidConfig indicates a configuration value is out of range.
	ErrInvalidConfig = NewDomainError("HT-CONF-4000", "invalid configuration")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = NewDomainError("HT-CONF-4001", "invalid output format")
)

// Benchmark errors (BENCH).
var (
	// ErrBenchMismatch indicates a benchmark run found an unexpected number of hashtags.
	ErrBenchMismatch = NewDomainError("HT-BENCH-5000", "benchmark hashtag count mismatch")
)
