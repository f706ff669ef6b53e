package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct {
	db *gorm.DB
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return first[entity.Patient](r.db.WithContext(ctx), "id = ?", id)
}

func (r *patientRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return first[entity.Patient](db, "id = ?", id)
}

func (r *patientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Patient, error) {
	if len(ids) == 0 {
		return []entity.Patient{}, nil
	}
	return find[entity.Patient](r.db.WithContext(ctx), "name ASC", "id IN ?", ids)
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	return find[entity.Patient](r.db.WithContext(ctx), "name ASC", "")
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return update(r.db.WithContext(ctx), patient)
}
