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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrPermission     ErrorCode = "PERMISSION"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Link errors
	ErrTargetNotFound      ErrorCode = "TARGET_NOT_FOUND"
	ErrPlatformUnsupported ErrorCode = "PLATFORM_UNSUPPORTED"
	ErrSpawnFailure        ErrorCode = "SPAWN_FAILURE"
	ErrProviderFailure     ErrorCode = "PROVIDER_FAILURE"

	// Manifest errors
	ErrManifestRead  ErrorCode = "MANIFEST_READ"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"

	// Store errors
	ErrStoreOpen   ErrorCode = "STORE_OPEN"
	ErrStoreQuery  ErrorCode = "STORE_QUERY"
	ErrModNotFound ErrorCode = "MOD_NOT_FOUND"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrDirRemove  ErrorCode = "DIR_REMOVE"
)

// ModgraftError represents a structured error with code and details
type ModgraftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModgraftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModgraftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModgraftError) Is(target error) bool {
	var targetErr *ModgraftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModgraftError with the given code and message
func New(code ErrorCode, message string) *ModgraftError {
	return &ModgraftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModgraftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModgraftError {
	return &ModgraftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModgraftError
func Wrap(err error, code ErrorCode, message string) *ModgraftError {
	if err == nil {
		return nil
	}
	return &ModgraftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModgraftError {
	if err == nil {
		return nil
	}
	return &ModgraftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModgraftError) WithDetail(key string, value interface{}) *ModgraftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mgErr *ModgraftError
	if errors.As(err, &mgErr) {
		return mgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModgraftError
func GetErrorCode(err error) ErrorCode {
	var mgErr *ModgraftError
	if errors.As(err, &mgErr) {
		return mgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModgraftError
func GetErrorDetails(err error) map[string]interface{} {
	var mgErr *ModgraftError
	if errors.As(err, &mgErr) {
		return mgErr.Details
	}
	return nil
}
