package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
)

// ErrRecordNotFound is returned by Update when the record does not exist.
// Finders return (nil, nil) instead.
var ErrRecordNotFound = fmt.Errorf("record %w", apperror.ErrNotFound)

// ErrDuplicateSlot is returned when a second live appointment claims the same
// doctor, date and start time.
var ErrDuplicateSlot = apperror.New(apperror.ErrConflict, "slot is already booked")

// ErrDuplicateMedication is returned when a medication name is already taken.
var ErrDuplicateMedication = apperror.New(apperror.ErrConflict, "medication already exists")

// ErrDuplicatePrescription is returned when the appointment already holds the
// medication.
var ErrDuplicatePrescription = apperror.New(apperror.ErrConflict, "medication is already prescribed for this appointment")

// Store owns every entity collection. Workflows receive it explicitly.
type Store interface {
	Patients() PatientRepository
	Doctors() DoctorRepository
	Staff() StaffRepository
	Appointments() AppointmentRepository
	Processes() ProcessRepository
	Billings() BillingRepository
	Resources() MedicalResourceRepository
	Reservations() ResourceReservationRepository
	Reviews() ReviewRepository
	Medications() MedicationRepository
	Prescriptions() PrescriptionRepository
	Reports() ReportRepository
	AuditLogs() AuditLogRepository

	// Transaction runs fn as one atomic unit against tx. When fn returns an
	// error none of its writes are kept. Calling Transaction on tx runs fn
	// inside the outer unit.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// IsNotFound reports whether err says a record is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, apperror.ErrNotFound)
}
