package errors

import (
	"net/http"

	"warranty/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches any BaseError carrying the same error code, so errors built with
// WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Warranty-related errors
	ErrWarrantyNotFound = NewBaseError(
		http.StatusNotFound,
		"WARRANTY_NOT_FOUND",
		"Warranty record not found",
		"",
	)

	ErrInvalidWarranty = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WARRANTY",
		"Warranty record is invalid",
		"",
	)

	ErrDeleteNotConfirmed = NewBaseError(
		http.StatusConflict,
		"DELETE_NOT_CONFIRMED",
		"Deleting a warranty record requires confirmation",
		"",
	)

	// Share-related errors
	ErrInvalidShareMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SHARE_MODE",
		"Unknown message mode",
		"",
	)

	ErrShareTargetMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"SHARE_TARGET_MISSING",
		"The record has no contact for the selected channel",
		"",
	)

	ErrShareFailed = NewBaseError(
		http.StatusBadGateway,
		"SHARE_FAILED",
		"Failed to open the share channel",
		"",
	)

	ErrQRCodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_FAILED",
		"Failed to render the QR code",
		"",
	)

	// Storage-related errors
	ErrStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILED",
		"Failed to access the record store",
		"",
	)

	ErrMigrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"MIGRATION_FAILED",
		"Failed to migrate stored records",
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
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreError represents a record store failure, implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a record store error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "record store access failed").Error()
}

// Unwrap returns the underlying store error
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return ErrStoreFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return ErrStoreFailed.Message()
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
