package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/google/uuid"
)

type appointmentRepository struct{ s *Store }

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.s.write(ctx, func(st *state) error {
		if appointment.OccupiesSlot() && slotTaken(st.appointments, appointment) {
			return repository.ErrDuplicateSlot
		}
		ensureID(&appointment.ID)
		stamp(&appointment.CreatedAt, &appointment.UpdatedAt)
		st.appointments = append(st.appointments, *appointment)
		return nil
	})
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment *entity.Appointment
	err := r.s.read(ctx, func(st *state) {
		appointment = findOne(st.appointments, func(a *entity.Appointment) bool { return a.ID == id })
	})
	return appointment, err
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	return r.find(ctx, func(a *entity.Appointment) bool { return a.PatientID == patientID })
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return r.find(ctx, func(a *entity.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *appointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date string) ([]entity.Appointment, error) {
	return r.find(ctx, func(a *entity.Appointment) bool { return a.DoctorID == doctorID && a.Date == date })
}

func (r *appointmentRepository) FindByDateRange(ctx context.Context, from, to string) ([]entity.Appointment, error) {
	return r.find(ctx, func(a *entity.Appointment) bool { return a.Date >= from && a.Date <= to })
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.s.write(ctx, func(st *state) error {
		stamp(nil, &appointment.UpdatedAt)
		return replaceOne(st.appointments, func(a *entity.Appointment) bool { return a.ID == appointment.ID }, *appointment)
	})
}

// find returns matches ordered by date then start time.
func (r *appointmentRepository) find(ctx context.Context, match func(*entity.Appointment) bool) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.s.read(ctx, func(st *state) {
		appointments = findAll(st.appointments, match)
	})
	slices.SortStableFunc(appointments, func(a, b entity.Appointment) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.StartTime, b.StartTime))
	})
	return appointments, err
}

func slotTaken(appointments []entity.Appointment, candidate *entity.Appointment) bool {
	for i := range appointments {
		a := &appointments[i]
		if a.OccupiesSlot() && a.DoctorID == candidate.DoctorID && a.Date == candidate.Date && a.StartTime == candidate.StartTime {
			return true
		}
	}
	return false
}
