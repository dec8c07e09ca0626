// Package apperror defines the tagged error that flows from handlers and
// middleware to the terminal error stage. An Error pairs the HTTP status the
// client should see with a message safe to serialize; anything it wraps stays
// server-side.
package apperror

import "net/http"

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict reports a duplicate resource. The API contract predates 409 for
// this case: duplicate registration answers 400.
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message)
}
