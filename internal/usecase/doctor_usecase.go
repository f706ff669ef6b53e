package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAvailableDay = apperror.New(apperror.ErrValidation, "available_day must be a weekday name or a YYYY-MM-DD date")
	ErrInvalidDoctorFilter = apperror.New(apperror.ErrValidation, "invalid doctor filter")
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context, req *dto.DoctorFilterRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetDoctorPatients(ctx context.Context, doctorID uuid.UUID) (*dto.PatientListResponse, error)
	GetDoctorStatistics(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorStatisticsResponse, error)
}

type doctorUsecase struct {
	store repository.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewDoctorUsecase(store repository.Store, log *logrus.Logger) DoctorUsecase {
	return &doctorUsecase{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// GetDoctors lists doctors passing every provided filter.
func (u *doctorUsecase) GetDoctors(ctx context.Context, req *dto.DoctorFilterRequest) (*dto.DoctorListResponse, error) {
	var filter *entity.DoctorFilter
	if req != nil {
		f, err := doctorFilterFromRequest(req)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	doctors, err := u.store.Doctors().FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

// GetDoctorPatients returns the distinct patients who have had an
// appointment with the doctor.
func (u *doctorUsecase) GetDoctorPatients(ctx context.Context, doctorID uuid.UUID) (*dto.PatientListResponse, error) {
	if _, err := u.findDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	appointments, err := u.store.Appointments().FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	patientIDs := distinctIDs(appointments, func(a *entity.Appointment) uuid.UUID { return a.PatientID })
	patients, err := u.store.Patients().FindByIDs(ctx, patientIDs)
	if err != nil {
		u.log.Warnf("Failed to find patients of doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *doctorUsecase) GetDoctorStatistics(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorStatisticsResponse, error) {
	if _, err := u.findDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	appointments, err := u.store.Appointments().FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	reviews, err := u.store.Reviews().FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reviews for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	_, billings, err := loadProcesses(ctx, u.store, appointments)
	if err != nil {
		u.log.Warnf("Failed to load processes for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	stats := &entity.DoctorStatistics{
		DoctorID:         doctorID,
		AppointmentCount: len(appointments),
		AverageRating:    averageRating(reviews),
		ReviewCount:      len(reviews),
		TotalRevenue:     sumPaid(billings),
		ReportDate:       u.now().Format(clock.DateLayout),
	}
	for i := range appointments {
		switch {
		case appointments[i].IsCompleted():
			stats.CompletedAppointments++
		case appointments[i].IsCancelled():
			stats.CancelledAppointments++
		}
	}

	return converter.DoctorStatisticsToResponse(stats), nil
}

func (u *doctorUsecase) findDoctor(ctx context.Context, doctorID uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.store.Doctors().FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func doctorFilterFromRequest(req *dto.DoctorFilterRequest) (*entity.DoctorFilter, error) {
	if req.MinRating != nil && (*req.MinRating < 0 || *req.MinRating > maxRating) {
		return nil, ErrInvalidDoctorFilter
	}
	if req.MaxPrice != nil && req.MaxPrice.IsNegative() {
		return nil, ErrInvalidDoctorFilter
	}

	filter := &entity.DoctorFilter{
		Specialization: req.Specialization,
		MinRating:      req.MinRating,
		MaxPrice:       req.MaxPrice,
	}
	if req.AvailableDay != "" {
		day, err := parseWeekday(req.AvailableDay)
		if err != nil {
			return nil, err
		}
		filter.AvailableDay = day
	}
	return filter, nil
}

// parseWeekday accepts "monday", "Monday" or a date and returns the
// canonical weekday name.
func parseWeekday(s string) (string, error) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d.String(), nil
		}
	}
	if day, err := clock.Weekday(s); err == nil {
		return day, nil
	}
	return "", ErrInvalidAvailableDay
}

// distinctIDs collects ids in first-seen order.
func distinctIDs(appointments []entity.Appointment, id func(*entity.Appointment) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(appointments))
	ids := make([]uuid.UUID, 0, len(appointments))
	for i := range appointments {
		v := id(&appointments[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}
	return ids
}
