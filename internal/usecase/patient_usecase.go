package usecase

import (
	"context"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	GetPatientDoctors(ctx context.Context, patientID uuid.UUID) (*dto.DoctorListResponse, error)
	GetPatientStatistics(ctx context.Context, patientID uuid.UUID) (*dto.PatientStatisticsResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	store repository.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewPatientUsecase(store repository.Store, log *logrus.Logger) PatientUsecase {
	return &patientUsecase{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

// GetPatientDoctors returns the distinct doctors the patient has seen.
func (u *patientUsecase) GetPatientDoctors(ctx context.Context, patientID uuid.UUID) (*dto.DoctorListResponse, error) {
	if _, err := u.findPatient(ctx, patientID); err != nil {
		return nil, err
	}

	appointments, err := u.store.Appointments().FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	doctorIDs := distinctIDs(appointments, func(a *entity.Appointment) uuid.UUID { return a.DoctorID })
	doctors, err := u.store.Doctors().FindByIDs(ctx, doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to find doctors of patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// GetPatientStatistics is computed on every call from the current store. The
// report date is day-granular so repeated calls over unchanged data agree.
func (u *patientUsecase) GetPatientStatistics(ctx context.Context, patientID uuid.UUID) (*dto.PatientStatisticsResponse, error) {
	if _, err := u.findPatient(ctx, patientID); err != nil {
		return nil, err
	}

	appointments, err := u.store.Appointments().FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	processes, billings, err := loadProcesses(ctx, u.store, appointments)
	if err != nil {
		u.log.Warnf("Failed to load processes for patient %s: %+v", patientID, err)
		return nil, err
	}

	stats := &entity.PatientStatistics{
		PatientID:         patientID,
		TotalAppointments: len(appointments),
		TotalProcesses:    len(processes),
		TotalPaid:         sumPaid(billings),
		ReportDate:        u.now().Format(clock.DateLayout),
	}
	for i := range appointments {
		if appointments[i].Date > stats.LastVisit {
			stats.LastVisit = appointments[i].Date
		}
	}

	return converter.PatientStatisticsToResponse(stats), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.store.Patients().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) findPatient(ctx context.Context, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := u.store.Patients().FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

// sumPaid adds up the amounts of paid billings.
func sumPaid(billings []entity.Billing) decimal.Decimal {
	total := decimal.Zero
	for i := range billings {
		if billings[i].IsPaid() {
			total = total.Add(billings[i].Amount)
		}
	}
	return total
}
