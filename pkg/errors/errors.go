// Package errors provides structured error types for wallcable.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// The cabling engine itself never returns errors: an incomplete wall yields a
// nil result. Errors come from the layers around it, mostly project loading
// and request validation.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMode, "unknown line mode %q", mode)
//	if errors.Is(err, errors.ErrCodeInvalidMode) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidProject, origErr, "decode %s", path)
//
// # Problems
//
// Validation reports every mistake in a project at once. Each [Error] may
// carry the Field it is about, as a path into the project file such as
// "walls[1].routing.cable_pick". Validators name the leaf field and callers
// prefix the path on the way up with [At]; [Join] collects the results into
// [Problems].
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeInvalidProject      Code = "INVALID_PROJECT"
	ErrCodeInvalidGrid         Code = "INVALID_GRID"
	ErrCodeInvalidMode         Code = "INVALID_MODE"
	ErrCodeInvalidDropPosition Code = "INVALID_DROP_POSITION"
	ErrCodeInvalidPowerEntry   Code = "INVALID_POWER_ENTRY"
	ErrCodeInvalidPlacement    Code = "INVALID_PLACEMENT"
	ErrCodeInvalidFormat       Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodePanelNotFound Code = "PANEL_NOT_FOUND"
	ErrCodeWallNotFound  Code = "WALL_NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Field   string // Path of the offending field, if any
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// At returns a copy of e with prefix prepended to its field path.
func (e *Error) At(prefix string) *Error {
	c := *e
	c.Field = joinPath(prefix, e.Field)
	return &c
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
// It unwraps the error chain looking for an *Error with a matching code;
// for [Problems] that is the first problem.
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

// UserMessage returns a user-friendly message for the error: the message
// without the code prefix, led by the field path when there is one.
// Problems are listed one per line.
func UserMessage(err error) string {
	var ps Problems
	if errors.As(err, &ps) {
		lines := make([]string, len(ps))
		for i, p := range ps {
			lines[i] = UserMessage(p)
		}
		return strings.Join(lines, "\n")
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Field != "" {
			return e.Field + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}

// Problems is a list of errors reported together, in the order found.
type Problems []*Error

func (ps Problems) Error() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Error()
	}
	return fmt.Sprintf("%d problems: %s", len(ps), strings.Join(parts, "; "))
}

// Unwrap exposes every problem to errors.Is and errors.As.
func (ps Problems) Unwrap() []error {
	errs := make([]error, len(ps))
	for i, p := range ps {
		errs[i] = p
	}
	return errs
}

// Join collects errs into one error, skipping nils and flattening nested
// Problems. It returns nil for no errors and the error itself for one.
// Errors without a code are kept as INVALID_INPUT problems.
func Join(errs ...error) error {
	var ps Problems
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
		case Problems:
			ps = append(ps, e...)
		case *Error:
			ps = append(ps, e)
		default:
			ps = append(ps, Wrap(ErrCodeInvalidInput, err, "%s", err.Error()))
		}
	}
	switch len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	}
	return ps
}

// At prefixes the field path of every problem in err. Errors without a
// code are returned unchanged.
func At(err error, prefix string) error {
	switch e := err.(type) {
	case *Error:
		return e.At(prefix)
	case Problems:
		out := make(Problems, len(e))
		for i, p := range e {
			out[i] = p.At(prefix)
		}
		return out
	}
	return err
}

// Flatten returns the problems in err: all of them for [Problems], a
// single one for an *Error, and none otherwise.
func Flatten(err error) []*Error {
	var ps Problems
	if errors.As(err, &ps) {
		return ps
	}
	var e *Error
	if errors.As(err, &e) {
		return []*Error{e}
	}
	return nil
}

// joinPath joins field path segments. Index segments ("[2]") attach
// without a dot.
func joinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	case strings.HasPrefix(field, "["):
		return prefix + field
	}
	return prefix + "." + field
}
