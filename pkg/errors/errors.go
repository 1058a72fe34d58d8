// Package errors provides structured error types for boardgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - MALFORMED_*: Structurally broken request payloads
//   - RENDERER_*: External renderer failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMode, "unknown mode: %s", mode)
//	if errors.Is(err, errors.ErrCodeInvalidMode) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPosition, parseErr, "Invalid FEN string")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPosition Code = "INVALID_POSITION"
	ErrCodeInvalidMode     Code = "INVALID_MODE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Request payload errors
	ErrCodeMalformedEdgeInput Code = "MALFORMED_EDGE_INPUT"

	// External collaborator errors
	ErrCodeRendererFailure Code = "RENDERER_FAILURE"
	ErrCodeTimeout         Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// MsgInvalidFEN is the user-facing message for every unparsable position.
const MsgInvalidFEN = "Invalid FEN string"

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

// InvalidPosition returns the INVALID_POSITION error for an unparsable FEN.
// The message is always MsgInvalidFEN; the parser detail is kept as Cause.
func InvalidPosition(cause error) *Error {
	return Wrap(ErrCodeInvalidPosition, cause, MsgInvalidFEN)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
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
		return e.Message
	}
	return err.Error()
}

// RendererError carries the diagnostic output of a failed renderer run.
type RendererError struct {
	Renderer string // Renderer name, e.g. "diagon"
	ExitCode int    // Process exit code, or -1 if the process never ran
	Stderr   string // Captured standard error
	Err      error  // Underlying exec or I/O error

	// Unavailable is set when the renderer could not be started at all,
	// e.g. because its executable is not installed.
	Unavailable bool
}

// Error implements the error interface.
func (e *RendererError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("renderer %s exited with code %d", e.Renderer, e.ExitCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("renderer %s: %v", e.Renderer, e.Err)
	}
	return fmt.Sprintf("renderer %s failed", e.Renderer)
}

// Unwrap returns the underlying error.
func (e *RendererError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *RendererError) Code() Code {
	return ErrCodeRendererFailure
}

// IsRendererUnavailable reports whether err comes from a renderer that
// could not be started.
func IsRendererUnavailable(err error) bool {
	var re *RendererError
	return errors.As(err, &re) && re.Unavailable
}

// Stderr extracts captured renderer diagnostics from err, if any.
func Stderr(err error) string {
	var re *RendererError
	if errors.As(err, &re) {
		return re.Stderr
	}
	return ""
}
