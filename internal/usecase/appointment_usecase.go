package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

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
	ErrAppointmentNotFound         = apperror.New(apperror.ErrNotFound, "appointment not found")
	ErrSlotUnavailable             = apperror.New(apperror.ErrConflict, "time slot is no longer available")
	ErrAppointmentAlreadyCancelled = apperror.New(apperror.ErrConflict, "appointment is already cancelled")
	ErrSlotNotInSchedule           = apperror.New(apperror.ErrValidation, "time slot is not part of the daily schedule")
	ErrInvalidTimeRange            = apperror.New(apperror.ErrValidation, "end time must be after start time")
	ErrNegativePrice               = apperror.New(apperror.ErrValidation, "price must not be negative")
	ErrInvalidAppointmentStatus    = apperror.New(apperror.ErrValidation, "invalid appointment status")
)

const appointmentScope = "appointment"

type AppointmentUsecase interface {
	GetTimeSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.TimeSlotListResponse, error)
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	slots        *service.SlotTemplate
	locker       service.Locker
	idempotency  *service.IdempotencyGuard
	auditService service.AuditService
	markPaid     bool
}

// NewAppointmentUsecase wires the booking workflow. markPaid is the payment
// policy applied to new appointments.
func NewAppointmentUsecase(
	store repository.Store,
	log *logrus.Logger,
	slots *service.SlotTemplate,
	locker service.Locker,
	idempotency *service.IdempotencyGuard,
	auditService service.AuditService,
	markPaid bool,
) AppointmentUsecase {
	return &appointmentUsecase{
		store:        store,
		log:          log,
		slots:        slots,
		locker:       locker,
		idempotency:  idempotency,
		auditService: auditService,
		markPaid:     markPaid,
	}
}

// GetTimeSlots returns the doctor's slots for date. A slot is unavailable
// exactly when a non-cancelled appointment holds its start time.
func (u *appointmentUsecase) GetTimeSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.TimeSlotListResponse, error) {
	day, err := clock.NormalizeDate(date)
	if err != nil {
		return nil, apperror.Validation(err)
	}

	doctor, err := u.store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.store.Appointments().FindByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments of doctor %s on %s: %+v", doctorID, day, err)
		return nil, err
	}

	booked := bookedStartTimes(appointments)
	slots := slices.Collect(u.slots.Generate(func(startTime string) bool {
		_, ok := booked[startTime]
		return ok
	}))

	available := 0
	for _, slot := range slots {
		if slot.IsAvailable {
			available++
		}
	}

	return &dto.TimeSlotListResponse{
		DoctorID:  doctorID,
		Date:      day,
		Slots:     converter.TimeSlotsToResponses(slots),
		Available: available,
		Total:     u.slots.Size(),
	}, nil
}

// BookAppointment books a slot for a patient.
//
// Flow:
// 1. Normalize date and times, check the slot belongs to the template
// 2. Replay the earlier result if the idempotency key was already used
// 3. Take the slot lock
// 4. In one transaction: resolve patient and doctor, re-check the slot,
// create the appointment and its audit entry
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, startTime, endTime, err := u.normalizeSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		metrics.RecordBooking(metrics.OutcomeRejected)
		return nil, err
	}
	if req.Price != nil && req.Price.IsNegative() {
		metrics.RecordBooking(metrics.OutcomeRejected)
		return nil, ErrNegativePrice
	}

	var created *entity.Appointment
	id, replayed, err := u.idempotency.Do(ctx, appointmentScope, req.IdempotencyKey, func(ctx context.Context) (string, error) {
		appointment, err := u.book(ctx, req, date, startTime, endTime)
		if err != nil {
			return "", err
		}
		created = appointment
		return appointment.ID.String(), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrConflict):
			metrics.RecordBooking(metrics.OutcomeConflict)
		case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrValidation):
			metrics.RecordBooking(metrics.OutcomeRejected)
		default:
			metrics.RecordBooking(metrics.OutcomeError)
		}
		return nil, err
	}

	if replayed {
		metrics.RecordIdempotentReplay(appointmentScope)
		return u.replayAppointment(ctx, id)
	}

	metrics.RecordBooking(metrics.OutcomeSuccess)
	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, start=%s", created.ID, created.DoctorID, created.Date, created.StartTime)
	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) book(ctx context.Context, req *dto.CreateAppointmentRequest, date, startTime, endTime string) (*entity.Appointment, error) {
	release, err := u.locker.Lock(ctx, service.SlotLockKey(req.DoctorID.String(), date, startTime))
	if err != nil {
		u.log.Warnf("Failed to lock slot %s %s %s: %+v", req.DoctorID, date, startTime, err)
		return nil, err
	}
	defer release()

	var appointment *entity.Appointment
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		patient, err := tx.Patients().FindByID(ctx, req.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		doctor, err := tx.Doctors().FindByID(ctx, req.DoctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		existing, err := tx.Appointments().FindByDoctorAndDate(ctx, doctor.ID, date)
		if err != nil {
			return err
		}
		if _, taken := bookedStartTimes(existing)[startTime]; taken {
			return ErrSlotUnavailable
		}

		price := doctor.Price
		if req.Price != nil {
			price = *req.Price
		}
		reason := req.Reason
		if reason == "" {
			reason = entity.DefaultAppointmentReason
		}

		appointment = &entity.Appointment{
			ID:        uuid.New(),
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
			Status:    entity.AppointmentStatusScheduled,
			Price:     price,
			IsPaid:    u.markPaid,
			Reason:    reason,
		}
		if err := tx.Appointments().Create(ctx, appointment); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlot) {
				return ErrSlotUnavailable
			}
			return err
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), *appointment)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to book appointment: %+v", err)
		}
		return nil, err
	}

	return appointment, nil
}

func (u *appointmentUsecase) replayAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("remembered appointment id %q: %w", id, err)
	}
	return u.GetAppointment(ctx, appointmentID)
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.store.Appointments().FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
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

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	doctor, err := u.store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.store.Appointments().FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment changes status and/or reason. Moving a cancelled
// appointment back to a live status claims its slot again and fails with
// ErrSlotUnavailable if someone else holds it.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var status entity.AppointmentStatus
	if req.Status != nil {
		status = entity.AppointmentStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidAppointmentStatus
		}
	}

	current, err := u.store.Appointments().FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if current == nil {
		return nil, ErrAppointmentNotFound
	}

	release, err := u.locker.Lock(ctx, service.SlotLockKey(current.DoctorID.String(), current.Date, current.StartTime))
	if err != nil {
		u.log.Warnf("Failed to lock slot of appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	defer release()

	var updated *entity.Appointment
	err = u.store.Transaction(ctx, func(tx repository.Store) error {
		appointment, err := tx.Appointments().FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		old := *appointment

		if req.Status != nil {
			if !old.OccupiesSlot() && status != entity.AppointmentStatusCancelled {
				existing, err := tx.Appointments().FindByDoctorAndDate(ctx, old.DoctorID, old.Date)
				if err != nil {
					return err
				}
				if _, taken := bookedStartTimes(existing)[old.StartTime]; taken {
					return ErrSlotUnavailable
				}
			}
			appointment.Status = status
		}
		if req.Reason != nil {
			appointment.Reason = *req.Reason
		}

		if err := tx.Appointments().Update(ctx, appointment); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlot) {
				return ErrSlotUnavailable
			}
			return err
		}
		updated = appointment

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), old, *appointment)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		}
		return nil, err
	}

	return converter.AppointmentToResponse(updated), nil
}

// CancelAppointment marks the appointment cancelled, which frees its slot.
// Appointments are never deleted.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	var cancelled *entity.Appointment
	err := u.store.Transaction(ctx, func(tx repository.Store) error {
		appointment, err := tx.Appointments().FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if appointment.IsCancelled() {
			return ErrAppointmentAlreadyCancelled
		}

		old := *appointment
		appointment.Cancel()
		if err := tx.Appointments().Update(ctx, appointment); err != nil {
			return err
		}
		cancelled = appointment

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), old, *appointment)
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		}
		return nil, err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return converter.AppointmentToResponse(cancelled), nil
}

// normalizeSlot canonicalizes the date and times of a booking request.
func (u *appointmentUsecase) normalizeSlot(date, startTime, endTime string) (string, string, string, error) {
	day, err := clock.NormalizeDate(date)
	if err != nil {
		return "", "", "", apperror.Validation(err)
	}
	start, err := clock.NormalizeTime(startTime)
	if err != nil {
		return "", "", "", apperror.Validation(err)
	}
	end, err := clock.NormalizeTime(endTime)
	if err != nil {
		return "", "", "", apperror.Validation(err)
	}
	if end <= start {
		return "", "", "", ErrInvalidTimeRange
	}
	if !u.slots.Contains(start, end) {
		return "", "", "", ErrSlotNotInSchedule
	}
	return day, start, end, nil
}

// bookedStartTimes returns the start times held by live appointments.
func bookedStartTimes(appointments []entity.Appointment) map[string]struct{} {
	booked := make(map[string]struct{}, len(appointments))
	for i := range appointments {
		if appointments[i].OccupiesSlot() {
			booked[appointments[i].StartTime] = struct{}{}
		}
	}
	return booked
}
