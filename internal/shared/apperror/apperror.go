// Package apperror holds the typed failures services hand back to controllers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// KindNotFound is raised when a lookup yields nothing or a required record is absent
	KindNotFound Kind = "NOT_FOUND"
)

// Error is a business failure with a machine-readable kind and a client-facing message
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a not found error carrying the given message
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NotFoundf is NotFound with fmt formatting
func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// IsNotFound reports whether any error in err's chain is a NotFound error
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// HTTPStatus maps an error to the status code the transport layer should use
func HTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
