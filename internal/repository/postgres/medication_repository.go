package postgres

import (
	"context"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	medicationKey           = "medications_pkey"
	prescriptionUniqueIndex = "idx_prescriptions_appointment_medication"
)

type medicationRepository struct {
	db *gorm.DB
}

func (r *medicationRepository) Create(ctx context.Context, medication *entity.Medication) error {
	err := r.db.WithContext(ctx).Create(medication).Error
	if isUniqueViolation(err, medicationKey) {
		return repository.ErrDuplicateMedication
	}
	return err
}

func (r *medicationRepository) FindByName(ctx context.Context, name string) (*entity.Medication, error) {
	return first[entity.Medication](r.db.WithContext(ctx), "name = ?", name)
}

func (r *medicationRepository) FindByNames(ctx context.Context, names []string) ([]entity.Medication, error) {
	if len(names) == 0 {
		return []entity.Medication{}, nil
	}
	return find[entity.Medication](r.db.WithContext(ctx), "name ASC", "name IN ?", names)
}

func (r *medicationRepository) FindAll(ctx context.Context) ([]entity.Medication, error) {
	return find[entity.Medication](r.db.WithContext(ctx), "name ASC", "")
}

type prescriptionRepository struct {
	db *gorm.DB
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	if prescription.ID == uuid.Nil {
		prescription.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(prescription).Error
	if isUniqueViolation(err, prescriptionUniqueIndex) {
		return repository.ErrDuplicatePrescription
	}
	return err
}

func (r *prescriptionRepository) Find(ctx context.Context, appointmentID uuid.UUID, medicationName string) (*entity.Prescription, error) {
	return first[entity.Prescription](r.db.WithContext(ctx), "appointment_id = ? AND medication_name = ?", appointmentID, medicationName)
}

func (r *prescriptionRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]entity.Prescription, error) {
	if len(appointmentIDs) == 0 {
		return []entity.Prescription{}, nil
	}
	return find[entity.Prescription](r.db.WithContext(ctx), "created_at ASC", "appointment_id IN ?", appointmentIDs)
}

func (r *prescriptionRepository) Delete(ctx context.Context, appointmentID uuid.UUID, medicationName string) error {
	result := r.db.WithContext(ctx).
		Where("appointment_id = ? AND medication_name = ?", appointmentID, medicationName).
		Delete(&entity.Prescription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}
	return nil
}
