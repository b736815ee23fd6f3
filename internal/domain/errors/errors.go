// Package errors defines the application error taxonomy rendered by the HTTP layer.
package errors

import (
	"net/http"

	"pawtrack/internal/errors"
)

// AppError is an error the API can render: a status, a stable machine code
// and a message safe to show to clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context, shown only for client errors.
	Details() string
}

// BaseError is a sentinel AppError. Copies made with WithDetails still match
// the sentinel through errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Is matches BaseErrors by code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

//nolint:gochecknoglobals
var (
	// Ingest rejections. The fix is not written at all.
	ErrDeviceRejected     = newError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
	ErrInvalidCoordinates = newError(http.StatusBadRequest, "INVALID_COORDINATES", "Invalid latitude or longitude")

	ErrAlertNotFound     = newError(http.StatusNotFound, "ALERT_NOT_FOUND", "Alert not found")
	ErrPushTokenConflict = newError(http.StatusConflict, "PUSH_TOKEN_CONFLICT", "Push token is already registered")

	ErrUnauthorized  = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrInvalidToken  = newError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
	ErrInvalidAPIKey = newError(http.StatusUnauthorized, "INVALID_API_KEY", "Invalid or missing API key")

	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInternalError    = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrNotFound         = newError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
)

// DatabaseExecuteError is a store failure. The driver error stays reachable
// through Unwrap for logging but never reaches clients.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
