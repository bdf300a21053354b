// Package errors defines the errors the domain exposes to callers, each bound to an HTTP status
// and a stable business code.
package errors

import (
	"net/http"

	"campusradar/internal/errors"
)

// AppError is an error that knows how it should be rendered to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context for 4xx responses
	Details() string
}

// BaseError implements AppError. Two BaseErrors match under errors.Is when they share a business code,
// so a detailed copy still matches the predefined value.
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

// WrapMessage returns a copy of e carrying details, with a stack recorded at the call site.
func (e *BaseError) WrapMessage(details string) error {
	detailed := *e
	detailed.details = details

	return errors.WithStack(&detailed)
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Argument errors, raised before any store is touched.
var (
	ErrInvalidRadius = newError(http.StatusBadRequest, "INVALID_RADIUS",
		"search radius must be a finite, non-negative number of meters")
	ErrInvalidCoordinate = newError(http.StatusBadRequest, "INVALID_COORDINATE",
		"coordinate must contain finite latitude and longitude")
	ErrInvalidArgument  = newError(http.StatusBadRequest, "INVALID_ARGUMENT", "invalid argument")
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "request validation failed")
)

// Lookup errors
var (
	ErrUserNotFound    = newError(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrLocationUnknown = newError(http.StatusNotFound, "LOCATION_UNKNOWN", "user location is unknown")
)

// ErrCacheState reports a resolver operation that panicked; its partial state was discarded.
var ErrCacheState = newError(http.StatusInternalServerError, "CACHE_STATE_VIOLATION",
	"location cache is in an inconsistent state")
