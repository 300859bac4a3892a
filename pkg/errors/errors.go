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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Test data errors
	ErrDataInvalid     ErrorCode = "DATA_INVALID"
	ErrFormatUnknown   ErrorCode = "FORMAT_UNKNOWN"
	ErrSerialization   ErrorCode = "SERIALIZATION"
	ErrKeywordNotFound ErrorCode = "KEYWORD_NOT_FOUND"
)

// RideError represents a structured error with code and details
type RideError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RideError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RideError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RideError) Is(target error) bool {
	var targetErr *RideError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RideError with the given code and message
func New(code ErrorCode, message string) *RideError {
	return &RideError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RideError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RideError {
	return &RideError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RideError
func Wrap(err error, code ErrorCode, message string) *RideError {
	if err == nil {
		return nil
	}
	return &RideError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RideError {
	if err == nil {
		return nil
	}
	return &RideError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RideError) WithDetail(key string, value interface{}) *RideError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Join combines errors into one, dropping nils. It returns nil when every
// argument is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rideErr *RideError
	if errors.As(err, &rideErr) {
		return rideErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RideError
func GetErrorCode(err error) ErrorCode {
	var rideErr *RideError
	if errors.As(err, &rideErr) {
		return rideErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RideError
func GetErrorDetails(err error) map[string]interface{} {
	var rideErr *RideError
	if errors.As(err, &rideErr) {
		return rideErr.Details
	}
	return nil
}
