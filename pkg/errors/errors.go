// Package errors provides structured error types for chartr.
//
// Every failure a chart command can surface carries a machine-readable
// [Code] so the CLI (and any library caller) can branch on the kind of
// failure without matching message text:
//
//   - DUPLICATE_ACTOR / UNKNOWN_ACTOR: event store misuse
//   - EMBEDDED_STATE_*, MALFORMED_*, UNRECOVERABLE_*: artifact decoding
//   - ARTIFACT_*: filesystem reads and writes of the artifact
//   - INVALID_*: bad user input or configuration
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownActor, "unknown actor id: %s", id)
//	if errors.Is(err, errors.ErrCodeUnknownActor) {
//	    // Handle missing actor
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeArtifactRead, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Event store errors
	ErrCodeDuplicateActor Code = "DUPLICATE_ACTOR"
	ErrCodeUnknownActor   Code = "UNKNOWN_ACTOR"

	// Artifact codec errors
	ErrCodeStateNotFound  Code = "EMBEDDED_STATE_NOT_FOUND"
	ErrCodeMalformedState Code = "MALFORMED_EMBEDDED_STATE"
	ErrCodeUnrecoverable  Code = "UNRECOVERABLE_STATE"
	ErrCodeArtifactRead   Code = "ARTIFACT_READ_FAILURE"
	ErrCodeArtifactWrite  Code = "ARTIFACT_WRITE_FAILURE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// Only the outermost *Error is consulted, so a wrapped code does not leak
// through a re-coded wrapper.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
