package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resourceRepository struct {
	db *gorm.DB
}

func (r *resourceRepository) Create(ctx context.Context, resource *entity.MedicalResource) error {
	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalResource, error) {
	return first[entity.MedicalResource](r.db.WithContext(ctx), "id = ?", id)
}

func (r *resourceRepository) FindAll(ctx context.Context, filter *entity.ResourceFilter) ([]entity.MedicalResource, error) {
	query := r.db.WithContext(ctx)
	if filter != nil {
		if filter.Type != "" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.Department != "" {
			query = query.Where("department = ?", filter.Department)
		}
		if filter.AvailableOnly {
			query = query.Where("is_available = ?", true)
		}
	}
	return find[entity.MedicalResource](query, "name ASC", "")
}

type reservationRepository struct {
	db *gorm.DB
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.ResourceReservation) error {
	if reservation.ID == uuid.Nil {
		reservation.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ResourceReservation, error) {
	return first[entity.ResourceReservation](r.db.WithContext(ctx), "id = ?", id)
}

func (r *reservationRepository) FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]entity.ResourceReservation, error) {
	return find[entity.ResourceReservation](r.db.WithContext(ctx), "date ASC, start_time ASC", "resource_id = ?", resourceID)
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.ResourceReservation) error {
	return update(r.db.WithContext(ctx), reservation)
}
