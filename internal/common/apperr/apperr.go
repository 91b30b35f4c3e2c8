package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services wrap these with a message; controllers map
// them to HTTP statuses without inspecting message text.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrAuthRequired = errors.New("authentication required")
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries a user-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func AuthRequired(format string, args ...interface{}) error {
	return &Error{Kind: ErrAuthRequired, Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps an error to the HTTP status the original API used.
// Conflicts are reported as 400, not 409, for client compatibility.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return 400
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrAuthRequired), errors.Is(err, ErrTokenExpired):
		return 401
	case errors.Is(err, ErrForbidden):
		return 403
	default:
		return 500
	}
}
