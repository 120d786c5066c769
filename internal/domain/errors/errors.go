package errors

import (
	"net/http"

	"capsule/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Capsule-related errors.
	//
	// ErrCapsuleNotFound deliberately covers both "absent" and "owned by
	// someone else" so responses never leak a capsule's existence.
	ErrCapsuleNotFound = NewBaseError(
		http.StatusNotFound,
		"CAPSULE_NOT_FOUND",
		"Capsule not found",
		"",
	)

	ErrCapsuleEmpty = NewBaseError(
		http.StatusBadRequest,
		"CAPSULE_EMPTY",
		"Capsule must contain a message or at least one media file",
		"",
	)

	ErrReleaseTimeRequired = NewBaseError(
		http.StatusBadRequest,
		"RELEASE_TIME_REQUIRED",
		"Capsule release time is required",
		"",
	)

	ErrLocationIncomplete = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_INCOMPLETE",
		"Capsule location requires both latitude and longitude",
		"",
	)

	ErrInvalidCapsuleKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CAPSULE_KIND",
		"Capsule kind must be digital or physical",
		"",
	)

	// ErrCapsuleSealed is returned when a capsule's release gate denies an
	// open attempt. The gate reason is attached via WithDetails.
	ErrCapsuleSealed = NewBaseError(
		http.StatusForbidden,
		"CAPSULE_SEALED",
		"Capsule cannot be opened yet",
		"",
	)

	ErrCapsuleCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAPSULE_CREATION_FAILED",
		"Failed to create capsule",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Media-related errors
	ErrMediaUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"MEDIA_UNAVAILABLE",
		"Media storage is not available",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
