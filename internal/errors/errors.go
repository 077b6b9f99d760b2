// Package errors defines the console's domain errors. Each carries a stable
// code and the HTTP status handlers should answer with.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so wrapped copies still compare equal.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error carrying a more specific message.
func (e *DomainError) WithMessage(format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: fmt.Sprintf(format, args...),
		Status:  e.Status,
	}
}

// HTTPStatus returns the status for err, defaulting to 500 for unknown errors.
func HTTPStatus(err error) int {
	var de *DomainError
	if stderrors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}

// Code returns the domain code for err, or INTERNAL.
func Code(err error) string {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return "INTERNAL"
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrViewNotFound = &DomainError{
		Code:    "VIEW_NOT_FOUND",
		Message: "view not found or expired",
		Status:  http.StatusNotFound,
	}
	ErrInvalidPeriod = &DomainError{
		Code:    "INVALID_PERIOD",
		Message: "period must be one of daily, weekly, monthly, yearly",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidTab = &DomainError{
		Code:    "INVALID_TAB",
		Message: "unknown tab",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidFilter = &DomainError{
		Code:    "INVALID_FILTER",
		Message: "invalid filter",
		Status:  http.StatusBadRequest,
	}
	ErrUpstream = &DomainError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: "platform API request failed",
		Status:  http.StatusBadGateway,
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid credentials",
		Status:  http.StatusUnauthorized,
	}
)
