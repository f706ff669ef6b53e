package repository

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	// Create fails with ErrDuplicateSlot if a live appointment already holds
	// the same doctor, date and start time.
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date string) ([]entity.Appointment, error)
	// FindByDateRange returns appointments whose date lies in [from, to].
	FindByDateRange(ctx context.Context, from, to string) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
}
