package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes. The first four are the engine's error register kinds; a run
// stops at the first error carrying any of them.
const (
	ErrSyntax     ErrorCode = "SYNTAX"
	ErrFile       ErrorCode = "FILE"
	ErrProcedural ErrorCode = "PROCEDURAL"
	ErrVersion    ErrorCode = "VERSION"

	// CLI and configuration errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrArchive      ErrorCode = "ARCHIVE"
)

// WizError represents a structured error with code and details
type WizError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WizError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WizError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WizError) Is(target error) bool {
	var targetErr *WizError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WizError with the given code and message
func New(code ErrorCode, message string) *WizError {
	return &WizError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WizError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WizError {
	return &WizError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WizError
func Wrap(err error, code ErrorCode, message string) *WizError {
	if err == nil {
		return nil
	}
	return &WizError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WizError {
	if err == nil {
		return nil
	}
	return &WizError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WizError) WithDetail(key string, value interface{}) *WizError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wizErr *WizError
	if errors.As(err, &wizErr) {
		return wizErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WizError
func GetErrorCode(err error) ErrorCode {
	var wizErr *WizError
	if errors.As(err, &wizErr) {
		return wizErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WizError
func GetErrorDetails(err error) map[string]interface{} {
	var wizErr *WizError
	if errors.As(err, &wizErr) {
		return wizErr.Details
	}
	return nil
}
