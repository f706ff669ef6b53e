package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return first[entity.Doctor](r.db.WithContext(ctx), "id = ?", id)
}

func (r *doctorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Doctor, error) {
	if len(ids) == 0 {
		return []entity.Doctor{}, nil
	}
	return find[entity.Doctor](r.db.WithContext(ctx), "name ASC", "id IN ?", ids)
}

// FindAll applies the filter in SQL with the same semantics as
// entity.DoctorFilter.Matches.
func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	query := r.db.WithContext(ctx)

	if filter != nil {
		if filter.Specialization != "" {
			query = query.Where("specialization = ?", filter.Specialization)
		}
		if filter.MinRating != nil {
			query = query.Where("rating >= ?", *filter.MinRating)
		}
		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.AvailableDay != "" {
			query = query.Where(
				"EXISTS (SELECT 1 FROM jsonb_array_elements_text(available_days) AS d(day) WHERE lower(d.day) = lower(?))",
				filter.AvailableDay,
			)
		}
	}

	return find[entity.Doctor](query, "name ASC", "")
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return update(r.db.WithContext(ctx), doctor)
}

type staffRepository struct {
	db *gorm.DB
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	return first[entity.Staff](r.db.WithContext(ctx), "id = ?", id)
}
