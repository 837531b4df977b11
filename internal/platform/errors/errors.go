// Package errors provides code-carrying errors for the casting pipeline and
// its dataset.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error pairs a machine-readable Code with a log message and optional
// metadata such as the offending key or path.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error returns the message followed by the cause, if any.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so sentinel values work with
// errors.Is regardless of message or metadata.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Class returns the class of the error's code.
func (e *Error) Class() Class {
	return e.Code.Class()
}

// New returns an error with code and message.
func New(code Code, message string) *Error {
	return WrapWithMetadata(code, message, nil, nil)
}

// Newf is New with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// WithMetadata returns an error carrying a copy of metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return WrapWithMetadata(code, message, metadata, nil)
}

// Wrap returns an error with code and message around cause.
func Wrap(code Code, message string, cause error) *Error {
	return WrapWithMetadata(code, message, nil, cause)
}

// WrapWithMetadata returns an error with metadata around cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: maps.Clone(metadata),
		Cause:    cause,
	}
}

// GetCode returns the code of the first *Error in err's chain, or
// CodeUnknown.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err's chain carries code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMetadata returns the metadata of the first *Error in err's chain.
func GetMetadata(err error) map[string]string {
	if e, ok := asError(err); ok {
		return e.Metadata
	}
	return nil
}

// IsConfiguration reports whether err is a fatal startup configuration error.
func IsConfiguration(err error) bool {
	return GetCode(err).Class() == ClassConfiguration
}

// IsIntegrity reports whether err signals a dataset/key-space inconsistency.
func IsIntegrity(err error) bool {
	return GetCode(err).Class() == ClassIntegrity
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
