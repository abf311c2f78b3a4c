// Package errors defines the application-level error kinds of the
// credential-issuance core. Each kind carries the HTTP status the transport
// layer maps it onto, a stable business code, and the message shown to the
// caller. The authentication service branches on these explicit values
// rather than inspecting error types at runtime.
package errors

import (
	"net/http"

	"keygate/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error kinds.
var (
	// ErrValidationFailed covers malformed input; it never touches the store.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation error",
		"",
	)

	// ErrInvalidCredentials deliberately merges "email absent" and "wrong
	// password" so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Entered Email or Password is Incorrect",
		"",
	)

	// ErrUserAlreadyExists is the conflict kind for duplicate registration,
	// whether caught by the pre-insert check or by the store's unique index.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	// ErrCredentialProcessing reports a hashing or comparison subsystem
	// failure. Its message must not read as "wrong password".
	ErrCredentialProcessing = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIAL_PROCESSING_FAILED",
		"Error in processing credentials",
		"",
	)

	// ErrAccountLookupFailed is an infrastructure failure while reading the
	// account store, distinct from the business-rule "not found" outcome.
	ErrAccountLookupFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_LOOKUP_FAILED",
		"Error in getting the user",
		"",
	)

	// ErrRegistrationFailed is an infrastructure failure while writing the
	// account store during registration.
	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Error in registering the user",
		"",
	)

	// ErrTokenIssueFailed is a signing-subsystem failure after the identity
	// has already been established.
	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Error in issuing the access token",
		"",
	)

	// ErrInternalError is the generic fallback; internals are logged, never
	// surfaced to the caller.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An internal error occurred",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. The driver error is retained for logging but the
// caller-visible message stays generic.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
