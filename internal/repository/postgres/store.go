// Package postgres implements repository.Store on top of gorm.
package postgres

import (
	"context"
	"errors"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// liveSlotIndex is the partial unique index guarding appointment slots.
const liveSlotIndex = "idx_appointments_live_slot"

const uniqueViolation = "23505"

var _ repository.Store = (*Store)(nil)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Patients() repository.PatientRepository { return &patientRepository{s.db} }

func (s *Store) Doctors() repository.DoctorRepository { return &doctorRepository{s.db} }

func (s *Store) Staff() repository.StaffRepository { return &staffRepository{s.db} }

func (s *Store) Appointments() repository.AppointmentRepository {
	return &appointmentRepository{s.db}
}

func (s *Store) Processes() repository.ProcessRepository { return &processRepository{s.db} }

func (s *Store) Billings() repository.BillingRepository { return &billingRepository{s.db} }

func (s *Store) Resources() repository.MedicalResourceRepository {
	return &resourceRepository{s.db}
}

func (s *Store) Reservations() repository.ResourceReservationRepository {
	return &reservationRepository{s.db}
}

func (s *Store) Reviews() repository.ReviewRepository { return &reviewRepository{s.db} }

func (s *Store) Medications() repository.MedicationRepository {
	return &medicationRepository{s.db}
}

func (s *Store) Prescriptions() repository.PrescriptionRepository {
	return &prescriptionRepository{s.db}
}

func (s *Store) Reports() repository.ReportRepository { return &reportRepository{s.db} }

func (s *Store) AuditLogs() repository.AuditLogRepository { return &auditLogRepository{s.db} }

// Transaction nests as a savepoint when s is already a transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func first[T any](db *gorm.DB, query string, args ...any) (*T, error) {
	var record T
	err := db.Where(query, args...).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func find[T any](db *gorm.DB, order string, query string, args ...any) ([]T, error) {
	records := make([]T, 0)
	q := db
	if query != "" {
		q = q.Where(query, args...)
	}
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// update writes every column of record except created_at.
func update(db *gorm.DB, record any) error {
	result := db.Model(record).Select("*").Omit("created_at").Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}
