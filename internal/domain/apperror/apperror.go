// Package apperror defines the error kinds surfaced by the usecase layer.
// Specific errors wrap one of the kinds so callers can classify them with
// errors.Is without knowing every sentinel.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation error")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// New returns an error of the given kind with its own message.
// errors.Is(New(ErrConflict, "x"), ErrConflict) is true.
func New(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

// Validation wraps a lower-level parsing error as a validation error.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrValidation) {
		return err
	}
	return &kindError{kind: ErrValidation, message: err.Error(), cause: err}
}

type kindError struct {
	kind    error
	message string
	cause   error
}

func (e *kindError) Error() string {
	return e.message
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// HTTPStatus maps an error kind to a response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// Kind returns a short machine-readable code for the error kind.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	default:
		return "INTERNAL_ERROR"
	}
}
