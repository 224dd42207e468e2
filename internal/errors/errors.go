// Package errors defines stable error codes for fossil's failure modes.
package errors

import (
	"fmt"
)

// ErrorCode identifies a failure class.
type ErrorCode string

const (
	// PatternInvalid indicates the marker pattern failed to compile.
	PatternInvalid ErrorCode = "PATTERN_INVALID"
	// RootNotFound indicates the scan root does not exist or is unreadable.
	RootNotFound ErrorCode = "ROOT_NOT_FOUND"
	// ConfigInvalid indicates the configuration file could not be loaded.
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates an unexpected error.
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixAction is a suggested remediation attached to an error.
type FixAction struct {
	Command     string `json:"command,omitempty"`
	Description string `json:"description,omitempty"`
}

// ScanError is a fossil error with a stable code and an optional cause.
type ScanError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error
}

// New creates a ScanError.
func New(code ErrorCode, message string, cause error) *ScanError {
	return &ScanError{
		Code:           code,
		Message:        message,
		SuggestedFixes: suggestedFixes[code],
		cause:          cause,
	}
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.cause
}

var suggestedFixes = map[ErrorCode][]FixAction{
	ConfigInvalid: {
		{
			Command:     "fossil config init",
			Description: "Write a default .fossilrc to start from",
		},
	},
	RootNotFound: {
		{
			Command:     "fossil scan <path>",
			Description: "Pass an existing directory to scan",
		},
	},
}
