package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code, so clones and wraps of a
// sentinel still match it with errors.Is.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// SessionExpiredMessage is the fixed text returned for expired backend sessions.
const SessionExpiredMessage = "Your previous session has expired and is no longer valid."

// Predefined errors for the fault taxonomy.
var (
	ErrSessionExpired = New("SESSION_EXPIRED", http.StatusUnauthorized, SessionExpiredMessage)
	ErrUnauthorized   = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrForbidden      = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrNotFound       = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrDataRead       = New("DATA_READ_ERROR", http.StatusBadRequest, "error reading data")
	ErrValidation     = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrBadRequest     = New("BAD_REQUEST", http.StatusBadRequest, "unable to process the request")
	ErrMapping        = New("MAPPING_ERROR", http.StatusInternalServerError, "unable to map entity")
	ErrNotSupported   = New("NOT_SUPPORTED", http.StatusMethodNotAllowed, "Operation not supported.")
	ErrNotAcceptable  = New("NOT_ACCEPTABLE", http.StatusNotAcceptable, "requested media type is not supported")
	ErrInternal       = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss      = New("CACHE_MISS", http.StatusInternalServerError, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// CodeOf returns the code of the first *Error in the chain, or "" when none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return ""
}
