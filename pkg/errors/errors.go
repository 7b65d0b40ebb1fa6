package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Policy errors
	ErrPolicyNotFound ErrorCode = "POLICY_NOT_FOUND"
	ErrPolicyInvalid  ErrorCode = "POLICY_INVALID"

	// Admission errors
	ErrDenied ErrorCode = "DENIED"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// AdmitError represents a structured error with code and details
type AdmitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AdmitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AdmitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AdmitError) Is(target error) bool {
	var targetErr *AdmitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AdmitError with the given code and message
func New(code ErrorCode, message string) *AdmitError {
	return &AdmitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AdmitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AdmitError {
	return &AdmitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AdmitError
func Wrap(err error, code ErrorCode, message string) *AdmitError {
	if err == nil {
		return nil
	}
	return &AdmitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AdmitError {
	if err == nil {
		return nil
	}
	return &AdmitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AdmitError) WithDetail(key string, value interface{}) *AdmitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var admitErr *AdmitError
	if errors.As(err, &admitErr) {
		return admitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AdmitError
func GetErrorCode(err error) ErrorCode {
	var admitErr *AdmitError
	if errors.As(err, &admitErr) {
		return admitErr.Code
	}
	return ErrUnknown
}
