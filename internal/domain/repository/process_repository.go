package repository

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type ProcessRepository interface {
	Create(ctx context.Context, process *entity.Process) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Process, error)
	FindByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]entity.Process, error)
	Update(ctx context.Context, process *entity.Process) error
}

type BillingRepository interface {
	Create(ctx context.Context, billing *entity.Billing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error)
	FindByProcessID(ctx context.Context, processID uuid.UUID) (*entity.Billing, error)
	FindByProcessIDs(ctx context.Context, processIDs []uuid.UUID) ([]entity.Billing, error)
	// FindByDateRange returns billings whose date lies in [from, to].
	FindByDateRange(ctx context.Context, from, to string) ([]entity.Billing, error)
	Update(ctx context.Context, billing *entity.Billing) error
}
