package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse is raised when a handler returns no Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries the status and client-facing message of a failed request.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTPError with a custom message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// Wrap attaches cause to a copy of e.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.Err = cause
	return e
}

var (
	ErrBadRequest   = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrUnauthorized = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrNotFound     = HTTPError{Code: http.StatusNotFound, Message: "Not found"}
	ErrConflict     = HTTPError{Code: http.StatusConflict, Message: "Conflict"}
	ErrInternal     = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)
