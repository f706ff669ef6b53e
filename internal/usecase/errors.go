package usecase

import (
	"errors"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
)

var (
	ErrPatientNotFound = apperror.New(apperror.ErrNotFound, "patient not found")
	ErrDoctorNotFound  = apperror.New(apperror.ErrNotFound, "doctor not found")
)

// isDomainError reports whether err is an expected business outcome rather
// than an infrastructure failure worth a warning.
func isDomainError(err error) bool {
	return errors.Is(err, apperror.ErrNotFound) ||
		errors.Is(err, apperror.ErrConflict) ||
		errors.Is(err, apperror.ErrValidation) ||
		errors.Is(err, apperror.ErrInsufficientFunds)
}
