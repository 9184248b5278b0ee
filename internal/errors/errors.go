// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidInput indicates a required-positive parameter was zero or negative
	TypeInvalidInput Type = "INVALID_INPUT"

	// TypeMissingInput indicates a parameter required by a method was not supplied
	TypeMissingInput Type = "MISSING_INPUT"

	// TypeParsing indicates a sample file could not be parsed
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotSupported indicates an unsupported method, format or file type
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type      Type                   `json:"type"`
	Message   string                 `json:"message"`
	Parameter string                 `json:"parameter,omitempty"`
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if any error in the chain is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// InvalidInput reports a parameter that must be strictly positive but was not
func InvalidInput(parameter string, value float64) *Error {
	return &Error{
		Type:      TypeInvalidInput,
		Message:   fmt.Sprintf("%s must be positive, got %g", parameter, value),
		Parameter: parameter,
	}
}

// IsInvalidInput reports whether err is an InvalidInput error
func IsInvalidInput(err error) bool {
	return IsType(err, TypeInvalidInput)
}

// ParameterOf returns the offending parameter name carried by err, if any
func ParameterOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Parameter
	}
	return ""
}

// MissingInput reports a parameter the selected method requires but did not receive
func MissingInput(parameter, method string) *Error {
	return &Error{
		Type:      TypeMissingInput,
		Message:   fmt.Sprintf("--%s is required for %s method", parameter, method),
		Parameter: parameter,
	}
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// NotSupported creates a not supported error
func NotSupported(operation string) *Error {
	return Newf(TypeNotSupported, "operation not supported: %s", operation)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
