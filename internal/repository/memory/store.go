// Package memory provides the in-process entity store used by default and in
// tests. All collections live in one state value guarded by a single RWMutex.
// A transaction works on a private clone of the state and swaps it in on
// success, so a failed transaction leaves no trace.
//
// Repositories obtained from a transaction's Store must not be used after the
// transaction returns, and the root Store must not be used from inside a
// transaction callback (it would wait on the lock the transaction holds).
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
)

// Compile-time check
var _ repository.Store = (*Store)(nil)

type state struct {
	patients      []entity.Patient
	doctors       []entity.Doctor
	staff         []entity.Staff
	appointments  []entity.Appointment
	processes     []entity.Process
	billings      []entity.Billing
	resources     []entity.MedicalResource
	reservations  []entity.ResourceReservation
	reviews       []entity.Review
	medications   []entity.Medication
	prescriptions []entity.Prescription
	reports       []entity.Report
	auditLogs     []entity.AuditLog
	auditSeq      int64
}

// clone copies every collection. Records are values, so copying the slices
// is enough except for the reference-typed fields handled below. Stored
// reports are never mutated in place, so their row slices may be shared.
func (s *state) clone() *state {
	c := &state{
		patients:      slices.Clone(s.patients),
		doctors:       slices.Clone(s.doctors),
		staff:         slices.Clone(s.staff),
		appointments:  slices.Clone(s.appointments),
		processes:     slices.Clone(s.processes),
		billings:      slices.Clone(s.billings),
		resources:     slices.Clone(s.resources),
		reservations:  slices.Clone(s.reservations),
		reviews:       slices.Clone(s.reviews),
		medications:   slices.Clone(s.medications),
		prescriptions: slices.Clone(s.prescriptions),
		reports:       slices.Clone(s.reports),
		auditLogs:     slices.Clone(s.auditLogs),
		auditSeq:      s.auditSeq,
	}
	for i := range c.doctors {
		c.doctors[i].AvailableDays = slices.Clone(c.doctors[i].AvailableDays)
	}
	return c
}

type database struct {
	mu    sync.RWMutex
	state *state
}

// Store is the in-memory repository.Store.
type Store struct {
	db *database
	tx *state // set inside a transaction
}

// New returns an empty store.
func New() *Store {
	return &Store{db: &database{state: &state{}}}
}

func (s *Store) Patients() repository.PatientRepository { return &patientRepository{s} }

func (s *Store) Doctors() repository.DoctorRepository { return &doctorRepository{s} }

func (s *Store) Staff() repository.StaffRepository { return &staffRepository{s} }

func (s *Store) Appointments() repository.AppointmentRepository { return &appointmentRepository{s} }

func (s *Store) Processes() repository.ProcessRepository { return &processRepository{s} }

func (s *Store) Billings() repository.BillingRepository { return &billingRepository{s} }

func (s *Store) Resources() repository.MedicalResourceRepository { return &resourceRepository{s} }

func (s *Store) Reservations() repository.ResourceReservationRepository {
	return &reservationRepository{s}
}

func (s *Store) Reviews() repository.ReviewRepository { return &reviewRepository{s} }

func (s *Store) Medications() repository.MedicationRepository { return &medicationRepository{s} }

func (s *Store) Prescriptions() repository.PrescriptionRepository {
	return &prescriptionRepository{s}
}

func (s *Store) Reports() repository.ReportRepository { return &reportRepository{s} }

func (s *Store) AuditLogs() repository.AuditLogRepository { return &auditLogRepository{s} }

// Transaction holds the write lock for the whole callback.
func (s *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.db.state.clone()
	if err := fn(&Store{db: s.db, tx: snapshot}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.db.state = snapshot
	return nil
}

func (s *Store) read(ctx context.Context, fn func(st *state)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.tx != nil {
		fn(s.tx)
		return nil
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	fn(s.db.state)
	return nil
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.tx != nil {
		return fn(s.tx)
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return fn(s.db.state)
}
