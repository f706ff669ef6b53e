package repository

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicalResourceRepository interface {
	Create(ctx context.Context, resource *entity.MedicalResource) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalResource, error)
	FindAll(ctx context.Context, filter *entity.ResourceFilter) ([]entity.MedicalResource, error)
}

type ResourceReservationRepository interface {
	Create(ctx context.Context, reservation *entity.ResourceReservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ResourceReservation, error)
	FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]entity.ResourceReservation, error)
	Update(ctx context.Context, reservation *entity.ResourceReservation) error
}
