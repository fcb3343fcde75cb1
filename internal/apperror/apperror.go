package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForeignKey is returned when a transaction references a missing product or user.
	ErrForeignKey = errors.New("foreign key error")
	// ErrConstraint is returned when a unique or other table constraint is violated.
	ErrConstraint = errors.New("constraint violation")
	// ErrAuthentication is returned when credentials or a session are rejected.
	ErrAuthentication = errors.New("authentication error")
)

// Error is a domain error of one of the kinds above with a user facing message.
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

func newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error { return newf(ErrValidation, format, args...) }

func NotFound(format string, args ...any) error { return newf(ErrNotFound, format, args...) }

func ForeignKey(format string, args ...any) error { return newf(ErrForeignKey, format, args...) }

func Constraint(format string, args ...any) error { return newf(ErrConstraint, format, args...) }

func Authentication(format string, args ...any) error {
	return newf(ErrAuthentication, format, args...)
}

// FromDB translates gorm errors (TranslateError must be enabled) into domain kinds.
// Unrecognized errors are returned unchanged.
func FromDB(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Constraint("%s already exists", what)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ForeignKey("%s references a missing record", what)
	}
	return err
}

// HTTPStatus maps an error kind to the status used when re-rendering a form.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForeignKey):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConstraint):
		return http.StatusConflict
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text shown to the user. Internal failures are not echoed.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
