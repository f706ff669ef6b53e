package repository

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Doctor, error)
	// FindAll returns doctors matching filter; a nil filter matches all.
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
}

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
}
