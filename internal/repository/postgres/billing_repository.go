package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type processRepository struct {
	db *gorm.DB
}

func (r *processRepository) Create(ctx context.Context, process *entity.Process) error {
	if process.ID == uuid.Nil {
		process.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(process).Error
}

func (r *processRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Process, error) {
	return first[entity.Process](r.db.WithContext(ctx), "id = ?", id)
}

func (r *processRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]entity.Process, error) {
	if len(appointmentIDs) == 0 {
		return []entity.Process{}, nil
	}
	return find[entity.Process](r.db.WithContext(ctx), "created_at ASC", "appointment_id IN ?", appointmentIDs)
}

func (r *processRepository) Update(ctx context.Context, process *entity.Process) error {
	return update(r.db.WithContext(ctx), process)
}

type billingRepository struct {
	db *gorm.DB
}

func (r *billingRepository) Create(ctx context.Context, billing *entity.Billing) error {
	if billing.ID == uuid.Nil {
		billing.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(billing).Error
}

func (r *billingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	return first[entity.Billing](r.db.WithContext(ctx), "id = ?", id)
}

func (r *billingRepository) FindByProcessID(ctx context.Context, processID uuid.UUID) (*entity.Billing, error) {
	return first[entity.Billing](r.db.WithContext(ctx), "process_id = ?", processID)
}

func (r *billingRepository) FindByProcessIDs(ctx context.Context, processIDs []uuid.UUID) ([]entity.Billing, error) {
	if len(processIDs) == 0 {
		return []entity.Billing{}, nil
	}
	return find[entity.Billing](r.db.WithContext(ctx), "created_at ASC", "process_id IN ?", processIDs)
}

func (r *billingRepository) FindByDateRange(ctx context.Context, from, to string) ([]entity.Billing, error) {
	return find[entity.Billing](r.db.WithContext(ctx), "date ASC", "date BETWEEN ? AND ?", from, to)
}

func (r *billingRepository) Update(ctx context.Context, billing *entity.Billing) error {
	return update(r.db.WithContext(ctx), billing)
}
