package memory

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type processRepository struct{ s *Store }

func (r *processRepository) Create(ctx context.Context, process *entity.Process) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&process.ID)
		stamp(&process.CreatedAt, nil)
		st.processes = append(st.processes, *process)
		return nil
	})
}

func (r *processRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Process, error) {
	var process *entity.Process
	err := r.s.read(ctx, func(st *state) {
		process = findOne(st.processes, func(p *entity.Process) bool { return p.ID == id })
	})
	return process, err
}

func (r *processRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]entity.Process, error) {
	set := idSet(appointmentIDs)
	var processes []entity.Process
	err := r.s.read(ctx, func(st *state) {
		processes = findAll(st.processes, func(p *entity.Process) bool {
			_, ok := set[p.AppointmentID]
			return ok
		})
	})
	return processes, err
}

func (r *processRepository) Update(ctx context.Context, process *entity.Process) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceOne(st.processes, func(p *entity.Process) bool { return p.ID == process.ID }, *process)
	})
}

type billingRepository struct{ s *Store }

func (r *billingRepository) Create(ctx context.Context, billing *entity.Billing) error {
	return r.s.write(ctx, func(st *state) error {
		ensureID(&billing.ID)
		stamp(&billing.CreatedAt, &billing.UpdatedAt)
		st.billings = append(st.billings, *billing)
		return nil
	})
}

func (r *billingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	var billing *entity.Billing
	err := r.s.read(ctx, func(st *state) {
		billing = findOne(st.billings, func(b *entity.Billing) bool { return b.ID == id })
	})
	return billing, err
}

func (r *billingRepository) FindByProcessID(ctx context.Context, processID uuid.UUID) (*entity.Billing, error) {
	var billing *entity.Billing
	err := r.s.read(ctx, func(st *state) {
		billing = findOne(st.billings, func(b *entity.Billing) bool { return b.ProcessID == processID })
	})
	return billing, err
}

func (r *billingRepository) FindByProcessIDs(ctx context.Context, processIDs []uuid.UUID) ([]entity.Billing, error) {
	set := idSet(processIDs)
	var billings []entity.Billing
	err := r.s.read(ctx, func(st *state) {
		billings = findAll(st.billings, func(b *entity.Billing) bool {
			_, ok := set[b.ProcessID]
			return ok
		})
	})
	return billings, err
}

func (r *billingRepository) FindByDateRange(ctx context.Context, from, to string) ([]entity.Billing, error) {
	var billings []entity.Billing
	err := r.s.read(ctx, func(st *state) {
		billings = findAll(st.billings, func(b *entity.Billing) bool { return b.Date >= from && b.Date <= to })
	})
	return billings, err
}

func (r *billingRepository) Update(ctx context.Context, billing *entity.Billing) error {
	return r.s.write(ctx, func(st *state) error {
		stamp(nil, &billing.UpdatedAt)
		return replaceOne(st.billings, func(b *entity.Billing) bool { return b.ID == billing.ID }, *billing)
	})
}
