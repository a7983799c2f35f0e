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

	// Query errors
	ErrURLParse ErrorCode = "URL_PARSE"

	// Sitemap errors
	ErrSitemapParse ErrorCode = "SITEMAP_PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors (CLI surface only; the core does no I/O)
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// RobotsError represents a structured error with code and details
type RobotsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RobotsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RobotsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RobotsError) Is(target error) bool {
	var targetErr *RobotsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RobotsError with the given code and message
func New(code ErrorCode, message string) *RobotsError {
	return &RobotsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RobotsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RobotsError {
	return &RobotsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RobotsError
func Wrap(err error, code ErrorCode, message string) *RobotsError {
	if err == nil {
		return nil
	}
	return &RobotsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RobotsError {
	if err == nil {
		return nil
	}
	return &RobotsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RobotsError) WithDetail(key string, value interface{}) *RobotsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var robotsErr *RobotsError
	if errors.As(err, &robotsErr) {
		return robotsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RobotsError
func GetErrorCode(err error) ErrorCode {
	var robotsErr *RobotsError
	if errors.As(err, &robotsErr) {
		return robotsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RobotsError
func GetErrorDetails(err error) map[string]interface{} {
	var robotsErr *RobotsError
	if errors.As(err, &robotsErr) {
		return robotsErr.Details
	}
	return nil
}
