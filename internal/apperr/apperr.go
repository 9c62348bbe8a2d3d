// Package apperr defines the classified failures the API reports to clients.
// Only the HTTP error handler inspects the kind; everything else just returns
// the error.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnclassified covers every failure that is not one of the kinds below.
	KindUnclassified Kind = iota
	KindAuthentication
	KindValidation
	KindNotFound
)

// GenericMessage is returned to clients for unclassified failures.
const GenericMessage = "Something went wrong!"

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unclassified"
	}
}

// Status returns the HTTP status code of the kind.
func (k Kind) Status() int {
	switch k {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with a client facing message.
type Error struct {
	Kind    Kind
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

// Authentication returns a 401 failure.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Validation returns a 400 failure.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound returns a 404 failure wrapping the underlying cause.
func NotFound(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: cause}
}

// Resolve returns the status and client message for err. Unclassified errors
// get the generic message so internal detail never reaches the client.
func Resolve(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindUnclassified {
		return appErr.Kind.Status(), appErr.Message
	}
	return http.StatusInternalServerError, GenericMessage
}
