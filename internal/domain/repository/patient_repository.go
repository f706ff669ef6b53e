package repository

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends
	// on backends that support row locks.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
}
