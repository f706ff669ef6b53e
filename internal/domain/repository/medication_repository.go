package repository

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicationRepository interface {
	Create(ctx context.Context, medication *entity.Medication) error
	FindByName(ctx context.Context, name string) (*entity.Medication, error)
	FindByNames(ctx context.Context, names []string) ([]entity.Medication, error)
	FindAll(ctx context.Context) ([]entity.Medication, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	Find(ctx context.Context, appointmentID uuid.UUID, medicationName string) (*entity.Prescription, error)
	FindByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]entity.Prescription, error)
	// Delete returns ErrRecordNotFound when nothing was prescribed.
	Delete(ctx context.Context, appointmentID uuid.UUID, medicationName string) error
}
