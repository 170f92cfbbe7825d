// Package engineerrors defines the typed error kinds the decision
// engine surfaces to its callers. The core packages themselves prefer
// sentinel empty results over returning an error for unrecoverable
// inputs; these kinds exist for the layers that need to map a failure
// onto an HTTP status (store, reconcile, handlers) and for the two
// cases that are genuinely exceptional: a missing training set and a
// pick-submission rule violation.
package engineerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrTransient         = errors.New("transient failure")
)

// Code is a short machine-readable classification of an AppError.
type Code string

const (
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeInsufficientData Code = "INSUFFICIENT_DATA"
	CodeTransient        Code = "TRANSIENT"
)

// AppError wraps a sentinel kind with a human-readable message and
// optional detail, so handlers can render a response body without
// re-deriving the HTTP status from a bare error string.
type AppError struct {
	Code    Code
	Message string
	Details string
	wrapped error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying sentinel so errors.Is(err, ErrNotFound)
// etc. keep working through an AppError.
func (e *AppError) Unwrap() error {
	return e.wrapped
}

// NotFound builds a NotFound AppError (HTTP 404 at the API layer).
func NotFound(message string, details ...string) *AppError {
	return newErr(CodeNotFound, ErrNotFound, message, details...)
}

// Conflict builds a Conflict AppError (HTTP 400 at the API layer): team
// reused, second pick in the same week, or a pick on a dead entry.
func Conflict(message string, details ...string) *AppError {
	return newErr(CodeConflict, ErrConflict, message, details...)
}

// InsufficientData builds an InsufficientData AppError: a training set
// below the minimum sample count, or no matchups with win probabilities.
func InsufficientData(message string, details ...string) *AppError {
	return newErr(CodeInsufficientData, ErrInsufficientData, message, details...)
}

// Transient builds a Transient AppError for I/O failures the caller
// should retry; the core itself never raises these, only the store
// layer does.
func Transient(message string, details ...string) *AppError {
	return newErr(CodeTransient, ErrTransient, message, details...)
}

func newErr(code Code, wrapped error, message string, details ...string) *AppError {
	e := &AppError{Code: code, Message: message, wrapped: wrapped}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}
