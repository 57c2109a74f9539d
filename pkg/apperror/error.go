package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that knows which HTTP status and client-facing message
// it maps to. Internal carries the cause and is only ever logged.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// FallbackMessage is used when a failure carries no message of its own.
const FallbackMessage = "Submission failed"

var (
	ErrBadRequest = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrNotFound   = New(http.StatusNotFound, "not_found", "Not Found")
	ErrInternal   = New(http.StatusInternalServerError, "internal_error", FallbackMessage)
)

// NewBadRequest creates a 400 error with the given client message.
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewInternal creates a 500 error. An empty message falls back to
// FallbackMessage.
func NewInternal(message string, err error) *Error {
	if message == "" {
		message = FallbackMessage
	}
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}

// FromError wraps an arbitrary failure as a 500 whose client message is the
// failure's own message. *Error values pass through unchanged.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if err == nil {
		return NewInternal("", nil)
	}
	return NewInternal(err.Error(), err)
}

// Body is the JSON shape of every error response.
type Body struct {
	Error string `json:"error"`
}

// ToHTTPError converts any error to a status and response body.
func ToHTTPError(err error) (int, Body) {
	appErr := FromError(err)
	return appErr.HTTPStatus, Body{Error: appErr.Message}
}
