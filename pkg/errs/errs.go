// Package errs holds the error sentinels shared by services and the
// JSON error shape returned to API clients.
package errs

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed or incomplete input.
	ErrValidation = errors.New("validation failed")
)

// HTTPError is the body written for every failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Internal is logged but never sent to the client.
	Internal error `json:"-"`
}

func (e *HTTPError) Error() string { return e.Message }

func (e *HTTPError) Unwrap() error { return e.Internal }

// FromStatus turns a status code into a code like "NOT_FOUND".
func FromStatus(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    FromStatus(status),
		Message: message,
		Status:  status,
	}
}

func NewNotFound(message string) *HTTPError   { return newHTTPError(http.StatusNotFound, message) }
func NewBadRequest(message string) *HTTPError { return newHTTPError(http.StatusBadRequest, message) }

// NewInternal hides the underlying error from the client.
func NewInternal() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// FromError maps service errors onto HTTP errors.
func FromError(err error) *HTTPError {
	var he *HTTPError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &he):
		return he
	case errors.Is(err, ErrNotFound):
		he = NewNotFound(err.Error())
	case errors.Is(err, ErrValidation):
		he = NewBadRequest(err.Error())
	default:
		he = NewInternal()
	}
	he.Internal = err
	return he
}
