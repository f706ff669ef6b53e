package usecase

import (
	"context"
	"fmt"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/metrics"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrProcessNotFound      = apperror.New(apperror.ErrNotFound, "process not found")
	ErrBillingNotFound      = apperror.New(apperror.ErrNotFound, "billing not found")
	ErrInvalidProcessStatus = apperror.New(apperror.ErrValidation, "invalid process status")
	ErrInvalidBillingStatus = apperror.New(apperror.ErrValidation, "invalid billing status")
	ErrProcessNameRequired  = apperror.New(apperror.ErrValidation, "process name is required")
)

const processScope = "process"

type ProcessUsecase interface {
	AddProcess(ctx context.Context, appointmentID uuid.UUID, req *dto.CreateProcessRequest) (*dto.ProcessResponse, error)
	UpdateProcessStatus(ctx context.Context, processID uuid.UUID, req *dto.UpdateProcessStatusRequest) (*dto.ProcessResponse, error)
	UpdateBillingStatus(ctx context.Context, billingID uuid.UUID, req *dto.UpdateBillingStatusRequest) (*dto.BillingResponse, error)
	GetAppointmentProcesses(ctx context.Context, appointmentID uuid.UUID) (*dto.ProcessListResponse, error)
	GetPatientProcesses(ctx context.Context, patientID uuid.UUID) (*dto.ProcessListResponse, error)
	GetDoctorPatientProcesses(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.ProcessListResponse, error)
	GetProcessBilling(ctx context.Context, processID uuid.UUID) (*dto.BillingResponse, error)
}

type processUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	idempotency  *service.IdempotencyGuard
	auditService service.AuditService
}

func NewProcessUsecase(
	store repository.Store,
	log *logrus.Logger,
	idempotency *service.IdempotencyGuard,
	auditService service.AuditService,
) ProcessUsecase {
	return &processUsecase{
		store:        store,
		log:          log,
		idempotency:  idempotency,
		auditService: auditService,
	}
}

// AddProcess creates a process dated today together with its pending
// billing of the same amount. Both records are written or neither is.
func (u *processUsecase) AddProcess(ctx context.Context, appointmentID uuid.UUID, req *dto.CreateProcessRequest) (*dto.ProcessResponse, error) {
	if req.Name == "" {
		return nil, ErrProcessNameRequired
	}
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	var (
		process *entity.Process
		billing *entity.Billing
	)
	id, replayed, err := u.idempotency.Do(ctx, processScope, req.IdempotencyKey, func(ctx context.Context) (string, error) {
		err := u.store.Transaction(ctx, func(tx repository.Store) error {
			appointment, err := tx.Appointments().FindByID(ctx, appointmentID)
			if err != nil {
				return err
			}
			if appointment == nil {
				return ErrAppointmentNotFound
			}

			today := clock.Today()
			process = &entity.Process{
				ID:            uuid.New(),
				AppointmentID: appointment.ID,
				Name:          req.Name,
				Description:   req.Description,
				Price:         req.Price,
				Status:        entity.ProcessStatusScheduled,
				Date:          today,
			}
			if err := tx.Processes().Create(ctx, process); err != nil {
				return err
			}

			billing = &entity.Billing{
				ID:        uuid.New(),
				ProcessID: process.ID,
				Date:      today,
				Amount:    process.Price,
				Status:    entity.BillingStatusPending,
			}
			if err := tx.Billings().Create(ctx, billing); err != nil {
				return err
			}

			return u.auditService.LogCreate(ctx, tx, entity.AuditActionProcessCreate, "process", process.ID.String(), *process)
		})
		if err != nil {
			return "", err
		}
		return process.ID.String(), nil
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to add process to appointment %s: %+v", appointmentID, err)
		}
		return nil, err
	}

	if replayed {
		metrics.RecordIdempotentReplay(processScope)
		return u.replayProcess(ctx, id)
	}

	metrics.RecordProcessCreated()
	u.log.Infof("Process created: id=%s, appointment=%s, price=%s", process.ID, appointmentID, process.Price)
	return converter.ProcessToResponse(process, billing), nil
}

func (u *processUsecase) replayProcess(ctx context.Context, id string) (*dto.ProcessResponse, error) {
	processID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("remembered process id %q: %w", id, err)
	}

	process, err := u.store.Processes().FindByID(ctx, processID)
	if err != nil {
		return nil, err
	}
	if process == nil {
		return nil, ErrProcessNotFound
	}
	billing, err := u.store.Billings().FindByProcessID(ctx, processID)
	if err != nil {
		return nil, err
	}

	return converter.ProcessToResponse(process, billing), nil
}

// UpdateProcessStatus sets any known status; transitions are not restricted.
func (u *processUsecase) UpdateProcessStatus(ctx context.Context, processID uuid.UUID, req *dto.UpdateProcessStatusRequest) (*dto.ProcessResponse, error) {
	status := entity.ProcessStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidProcessStatus
	}

	var process *entity.Process
	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		found, err := tx.Processes().FindByID(ctx, processID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrProcessNotFound
		}

		old := *found
		found.Status = status
		if err := tx.Processes().Update(ctx, found); err != nil {
			return err
		}
		process = found

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionProcessStatus, "process", processID.String(), old.Status, status)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to update process %s status: %+v", processID, err)
		}
		return nil, err
	}

	return converter.ProcessToResponse(process, nil), nil
}

// UpdateBillingStatus sets any known status independently of the process.
func (u *processUsecase) UpdateBillingStatus(ctx context.Context, billingID uuid.UUID, req *dto.UpdateBillingStatusRequest) (*dto.BillingResponse, error) {
	status := entity.BillingStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidBillingStatus
	}

	var billing *entity.Billing
	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		found, err := tx.Billings().FindByID(ctx, billingID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrBillingNotFound
		}

		old := *found
		found.Status = status
		if err := tx.Billings().Update(ctx, found); err != nil {
			return err
		}
		billing = found

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionBillingStatus, "billing", billingID.String(), old.Status, status)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to update billing %s status: %+v", billingID, err)
		}
		return nil, err
	}

	return converter.BillingToResponse(billing), nil
}

func (u *processUsecase) GetAppointmentProcesses(ctx context.Context, appointmentID uuid.UUID) (*dto.ProcessListResponse, error) {
	appointment, err := u.store.Appointments().FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return u.processesOf(ctx, []entity.Appointment{*appointment})
}

func (u *processUsecase) GetPatientProcesses(ctx context.Context, patientID uuid.UUID) (*dto.ProcessListResponse, error) {
	patient, err := u.store.Patients().FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.store.Appointments().FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return u.processesOf(ctx, appointments)
}

// GetDoctorPatientProcesses lists processes from the appointments a patient
// had with one doctor.
func (u *processUsecase) GetDoctorPatientProcesses(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.ProcessListResponse, error) {
	doctor, err := u.store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.store.Patients().FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.store.Appointments().FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	withDoctor := make([]entity.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.DoctorID == doctorID {
			withDoctor = append(withDoctor, appointment)
		}
	}

	return u.processesOf(ctx, withDoctor)
}

func (u *processUsecase) GetProcessBilling(ctx context.Context, processID uuid.UUID) (*dto.BillingResponse, error) {
	process, err := u.store.Processes().FindByID(ctx, processID)
	if err != nil {
		u.log.Warnf("Failed to find process %s: %+v", processID, err)
		return nil, err
	}
	if process == nil {
		return nil, ErrProcessNotFound
	}

	billing, err := u.store.Billings().FindByProcessID(ctx, processID)
	if err != nil {
		u.log.Warnf("Failed to find billing of process %s: %+v", processID, err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	return converter.BillingToResponse(billing), nil
}

func (u *processUsecase) processesOf(ctx context.Context, appointments []entity.Appointment) (*dto.ProcessListResponse, error) {
	processes, billings, err := loadProcesses(ctx, u.store, appointments)
	if err != nil {
		u.log.Warnf("Failed to load processes: %+v", err)
		return nil, err
	}

	return &dto.ProcessListResponse{
		Processes: converter.ProcessesToResponses(processes, billings),
		Total:     len(processes),
	}, nil
}

// loadProcesses returns the processes of appointments and their billings.
func loadProcesses(ctx context.Context, store repository.Store, appointments []entity.Appointment) ([]entity.Process, []entity.Billing, error) {
	appointmentIDs := make([]uuid.UUID, len(appointments))
	for i := range appointments {
		appointmentIDs[i] = appointments[i].ID
	}

	processes, err := store.Processes().FindByAppointmentIDs(ctx, appointmentIDs)
	if err != nil {
		return nil, nil, err
	}

	processIDs := make([]uuid.UUID, len(processes))
	for i := range processes {
		processIDs[i] = processes[i].ID
	}

	billings, err := store.Billings().FindByProcessIDs(ctx, processIDs)
	if err != nil {
		return nil, nil, err
	}

	return processes, billings, nil
}
