// Package errors defines the application error taxonomy. Every error that
// crosses a usecase boundary is an AppError so the HTTP layer can translate
// it without switching on free-form strings.
package errors

import (
	"fmt"
	"net/http"

	"courier/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"Email already exists",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DEACTIVATED",
		"Account is deactivated",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Parcel-related errors
	ErrParcelNotFound = NewBaseError(
		http.StatusNotFound,
		"PARCEL_NOT_FOUND",
		"Parcel not found",
		"",
	)

	ErrTrackingNumberConflict = NewBaseError(
		http.StatusConflict,
		"TRACKING_NUMBER_CONFLICT",
		"Tracking number already exists",
		"",
	)

	ErrCODAmountRequired = NewBaseError(
		http.StatusBadRequest,
		"COD_AMOUNT_REQUIRED",
		"COD amount is required for Cash on Delivery",
		"",
	)

	ErrCODAmountNegative = NewBaseError(
		http.StatusBadRequest,
		"COD_AMOUNT_NEGATIVE",
		"COD amount must not be negative",
		"",
	)

	ErrParcelNotAssignable = NewBaseError(
		http.StatusBadRequest,
		"PARCEL_NOT_ASSIGNABLE",
		"Cannot assign agent to a delivered or failed parcel",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"No location recorded for this parcel",
		"",
	)

	// QR-related errors
	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Invalid QR code data",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
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

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// InvalidTransitionError represents a parcel status change that is not in
// the transition table. It implements AppError and carries both statuses.
type InvalidTransitionError struct {
	from string
	to   string
}

// NewInvalidTransitionError creates an invalid-transition error for the given statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{from: from, to: to}
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.from, e.to)
}

// HTTPCode returns the HTTP status code
func (e *InvalidTransitionError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InvalidTransitionError) ErrorCode() string {
	return "INVALID_STATUS_TRANSITION"
}

// Message returns the user-friendly error message
func (e *InvalidTransitionError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *InvalidTransitionError) Details() string {
	return fmt.Sprintf("current status: %s, requested status: %s", e.from, e.to)
}

// From returns the status the parcel was in.
func (e *InvalidTransitionError) From() string { return e.from }

// To returns the requested status.
func (e *InvalidTransitionError) To() string { return e.to }

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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
