package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const appointmentOrder = "date ASC, start_time ASC"

type appointmentRepository struct {
	db *gorm.DB
}

// Create relies on the partial unique index over live slots; a violation
// becomes repository.ErrDuplicateSlot.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(appointment).Error
	if isUniqueViolation(err, liveSlotIndex) {
		return repository.ErrDuplicateSlot
	}
	return err
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return first[entity.Appointment](r.db.WithContext(ctx), "id = ?", id)
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	return find[entity.Appointment](r.db.WithContext(ctx), appointmentOrder, "patient_id = ?", patientID)
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return find[entity.Appointment](r.db.WithContext(ctx), appointmentOrder, "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date string) ([]entity.Appointment, error) {
	return find[entity.Appointment](r.db.WithContext(ctx), appointmentOrder, "doctor_id = ? AND date = ?", doctorID, date)
}

func (r *appointmentRepository) FindByDateRange(ctx context.Context, from, to string) ([]entity.Appointment, error) {
	return find[entity.Appointment](r.db.WithContext(ctx), appointmentOrder, "date BETWEEN ? AND ?", from, to)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	err := update(r.db.WithContext(ctx), appointment)
	if isUniqueViolation(err, liveSlotIndex) {
		return repository.ErrDuplicateSlot
	}
	return err
}
