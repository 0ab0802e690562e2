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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors
	ErrRuleInvalid  ErrorCode = "RULE_INVALID"
	ErrRuleCompile  ErrorCode = "RULE_COMPILE"
	ErrRuleNotFound ErrorCode = "RULE_NOT_FOUND"

	// Store errors
	ErrStoreRead  ErrorCode = "STORE_READ"
	ErrStoreParse ErrorCode = "STORE_PARSE"
	ErrStoreWrite ErrorCode = "STORE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Event errors
	ErrEventUnknown  ErrorCode = "EVENT_UNKNOWN"
	ErrActionUnknown ErrorCode = "ACTION_UNKNOWN"

	// View errors
	ErrViewState ErrorCode = "VIEW_STATE"
)

// PrefsError represents a structured error with code and details
type PrefsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PrefsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PrefsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PrefsError) Is(target error) bool {
	var targetErr *PrefsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PrefsError with the given code and message
func New(code ErrorCode, message string) *PrefsError {
	return &PrefsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PrefsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PrefsError {
	return &PrefsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PrefsError
func Wrap(err error, code ErrorCode, message string) *PrefsError {
	if err == nil {
		return nil
	}
	return &PrefsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PrefsError {
	if err == nil {
		return nil
	}
	return &PrefsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PrefsError) WithDetail(key string, value interface{}) *PrefsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var prefsErr *PrefsError
	if errors.As(err, &prefsErr) {
		return prefsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PrefsError
func GetErrorCode(err error) ErrorCode {
	var prefsErr *PrefsError
	if errors.As(err, &prefsErr) {
		return prefsErr.Code
	}
	return ErrUnknown
}
