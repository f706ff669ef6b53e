package memory

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type resourceRepository struct{ s *Store }

func (r *resourceRepository) Create(ctx context.Context, resource *entity.MedicalResource) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&resource.ID)
		st.resources = append(st.resources, *resource)
		return nil
	})
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalResource, error) {
	var resource *entity.MedicalResource
	err := r.s.read(ctx, func(st *state) {
		resource = findOne(st.resources, func(m *entity.MedicalResource) bool { return m.ID == id })
	})
	return resource, err
}

func (r *resourceRepository) FindAll(ctx context.Context, filter *entity.ResourceFilter) ([]entity.MedicalResource, error) {
	var resources []entity.MedicalResource
	err := r.s.read(ctx, func(st *state) {
		resources = findAll(st.resources, func(m *entity.MedicalResource) bool {
			return filter == nil || filter.Matches(m)
		})
	})
	return resources, err
}

type reservationRepository struct{ s *Store }

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.ResourceReservation) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&reservation.ID)
		stamp(&reservation.CreatedAt, &reservation.UpdatedAt)
		st.reservations = append(st.reservations, *reservation)
		return nil
	})
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ResourceReservation, error) {
	var reservation *entity.ResourceReservation
	err := r.s.read(ctx, func(st *state) {
		reservation = findOne(st.reservations, func(rr *entity.ResourceReservation) bool { return rr.ID == id })
	})
	return reservation, err
}

func (r *reservationRepository) FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]entity.ResourceReservation, error) {
	var reservations []entity.ResourceReservation
	err := r.s.read(ctx, func(st *state) {
		reservations = findAll(st.reservations, func(rr *entity.ResourceReservation) bool { return rr.ResourceID == resourceID })
	})
	return reservations, err
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.ResourceReservation) error {
	return r.s.write(ctx, func(st *state) error {
		stamp(nil, &reservation.UpdatedAt)
		return replaceOne(st.reservations, func(rr *entity.ResourceReservation) bool { return rr.ID == reservation.ID }, *reservation)
	})
}
