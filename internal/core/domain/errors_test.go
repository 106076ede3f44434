package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("HT-TEST-1000", "test message"),
			expected: "[HT-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("HT-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[HT-TEST-1001] test message: extra info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("HT-TEST-1000", "message 1")
	err2 := NewDomainError("HT-TEST-1000", "message 2")
	err3 := NewDomainError("HT-TEST-1001", "message 1")

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	err := ErrInputNotFound.WithDetails("tags.txt").WithCause(os.ErrNotExist)

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is should reach the cause")
	}
	if !errors.Is(err, ErrInputNotFound) {
		t.Error("errors.Is should match the code")
	}

	if errors.Unwrap(NewDomainError("HT-TEST-1000", "no cause")) != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestDomainError_WithDetails(t *testing.T) {
	original := NewDomainError("HT-TEST-1000", "original message")
	withDetails := original.WithDetails("additional details")

	if original.Details != "" {
		t.Error("WithDetails should not modify original error")
	}
	if withDetails.Details != "additional details" {
		t.Errorf("Details = %q, want %q", withDetails.Details, "additional details")
	}
	if withDetails.Code != original.Code || withDetails.Message != original.Message {
		t.Errorf("WithDetails changed code or message: %+v", withDetails)
	}
}

func TestDomainError_WithCause(t *testing.T) {
	original := NewDomainError("HT-TEST-1000", "original message")
	cause := fmt.Errorf("root cause")
	withCause := original.WithCause(cause)

	if original.Cause != nil {
		t.Error("WithCause should not modify original error")
	}
	if withCause.Cause != cause {
		t.Errorf("Cause = %v, want %v", withCause.Cause, cause)
	}
}

func TestIsDomainError(t *testing.T) {
	if !IsDomainError(ErrLineTooLong, "HT-INPUT-4130") {
		t.Error("IsDomainError should return true for matching code")
	}
	if IsDomainError(ErrLineTooLong, "HT-INPUT-9999") {
		t.Error("IsDomainError should return false for non-matching code")
	}
	if !IsDomainError(ErrLineTooLong, "") {
		t.Error("IsDomainError with empty code should match any DomainError")
	}
	if IsDomainError(fmt.Errorf("regular error"), "HT-INPUT-4130") {
		t.Error("IsDomainError should return false for non-DomainError")
	}

	wrapped := fmt.Errorf("scan stdin: %w", ErrLineTooLong)
	if !IsDomainError(wrapped, "HT-INPUT-4130") {
		t.Error("IsDomainError should work with wrapped errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"domain error", ErrBenchMismatch, "HT-BENCH-5000"},
		{"wrapped domain error", fmt.Errorf("wrapped: %w", ErrInvalidFormat), "HT-CONF-4001"},
		{"regular error", fmt.Errorf("regular error"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err  *DomainError
		code string
	}{
		{ErrInputNotFound, "HT-INPUT-4040"},
		{ErrLineTooLong, "HT-INPUT-4130"},
		{ErrInputUnreadable, "HT-INPUT-5000"},
		{ErrInvalidConfig, "HT-CONF-4000"},
		{ErrInvalidFormat, "HT-CONF-4001"},
		{ErrBenchMismatch, "HT-BENCH-5000"},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("code = %q, want %q", tt.err.Code, tt.code)
		}
		if tt.err.Message == "" {
			t.Errorf("%s has empty message", tt.code)
		}
		if seen[tt.code] {
			t.Errorf("duplicate code %s", tt.code)
		}
		seen[tt.code] = true
	}
}
