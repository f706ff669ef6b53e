package usecase

import (
	"context"
	"fmt"
	"time"

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
	ErrReportNotFound      = apperror.New(apperror.ErrNotFound, "report not found")
	ErrInvalidTimeframe    = apperror.New(apperror.ErrValidation, "invalid timeframe, must be one of: weekly, monthly, yearly")
	ErrInvalidReportWindow = apperror.New(apperror.ErrValidation, "start_date must not be after end_date")
)

const reportScope = "report"

type ReportUsecase interface {
	GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	ListReports(ctx context.Context) (*dto.ReportListResponse, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	store        repository.Store
	log          *logrus.Logger
	idempotency  *service.IdempotencyGuard
	auditService service.AuditService
	now          func() time.Time
}

func NewReportUsecase(
	store repository.Store,
	log *logrus.Logger,
	idempotency *service.IdempotencyGuard,
	auditService service.AuditService,
) ReportUsecase {
	return &reportUsecase{
		store:        store,
		log:          log,
		idempotency:  idempotency,
		auditService: auditService,
		now:          time.Now,
	}
}

// GenerateReport summarizes activity dated inside the window and stores the
// result. The window ends at EndDate, or today, and starts at StartDate, or
// one timeframe before the end.
func (u *reportUsecase) GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	timeframe, start, end, err := u.window(req)
	if err != nil {
		return nil, err
	}

	var report *entity.Report
	id, replayed, err := u.idempotency.Do(ctx, reportScope, req.IdempotencyKey, func(ctx context.Context) (string, error) {
		err := u.store.Transaction(ctx, func(tx repository.Store) error {
			report = &entity.Report{
				ID:        uuid.New(),
				Timeframe: timeframe,
				StartDate: start,
				EndDate:   end,
			}
			if err := u.compile(ctx, tx, report, req); err != nil {
				return err
			}
			if err := tx.Reports().Create(ctx, report); err != nil {
				return err
			}
			return u.auditService.LogCreate(ctx, tx, entity.AuditActionReportGenerate, "report", report.ID.String(), entity.JSON{
				"timeframe":  report.Timeframe,
				"start_date": report.StartDate,
				"end_date":   report.EndDate,
			})
		})
		if err != nil {
			return "", err
		}
		return report.ID.String(), nil
	})
	if err != nil {
		if !isDomainError(err) {
			u.log.Warnf("Failed to generate %s report %s..%s: %+v", timeframe, start, end, err)
		}
		return nil, err
	}

	if replayed {
		metrics.RecordIdempotentReplay(reportScope)
		reportID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("remembered report id %q: %w", id, err)
		}
		return u.GetReport(ctx, reportID)
	}

	u.log.Infof("Report generated: id=%s, window=%s..%s, patients=%d, doctors=%d, equipment=%d",
		report.ID, start, end, len(report.PatientStatistics), len(report.DoctorStatistics), len(report.EquipmentStatistics))
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) ListReports(ctx context.Context) (*dto.ReportListResponse, error) {
	reports, err := u.store.Reports().FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find reports: %+v", err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToSummaries(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) GetReport(ctx context.Context, reportID uuid.UUID) (*dto.ReportResponse, error) {
	report, err := u.store.Reports().FindByID(ctx, reportID)
	if err != nil {
		u.log.Warnf("Failed to find report %s: %+v", reportID, err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) window(req *dto.GenerateReportRequest) (entity.ReportTimeframe, string, string, error) {
	timeframe := entity.ReportTimeframe(req.Timeframe)
	if timeframe == "" {
		timeframe = entity.TimeframeMonthly
	}
	days := timeframe.Period().Days()
	if days == 0 {
		return "", "", "", ErrInvalidTimeframe
	}

	end := u.now()
	if req.EndDate != "" {
		t, err := clock.ParseDate(req.EndDate)
		if err != nil {
			return "", "", "", apperror.Validation(err)
		}
		end = t
	}
	start := end.AddDate(0, 0, -days)
	if req.StartDate != "" {
		t, err := clock.ParseDate(req.StartDate)
		if err != nil {
			return "", "", "", apperror.Validation(err)
		}
		start = t
	}

	from, to := start.Format(clock.DateLayout), end.Format(clock.DateLayout)
	if from > to {
		return "", "", "", ErrInvalidReportWindow
	}
	return timeframe, from, to, nil
}

// compile fills the three sections of report from tx.
func (u *reportUsecase) compile(ctx context.Context, tx repository.Store, report *entity.Report, req *dto.GenerateReportRequest) error {
	appointments, err := tx.Appointments().FindByDateRange(ctx, report.StartDate, report.EndDate)
	if err != nil {
		return err
	}

	patients, err := reportPatients(ctx, tx, req.PatientIDs)
	if err != nil {
		return err
	}
	for i := range patients {
		row, err := patientReportRow(ctx, tx, &patients[i], appointments)
		if err != nil {
			return err
		}
		report.PatientStatistics = append(report.PatientStatistics, row)
	}

	doctors, err := reportDoctors(ctx, tx, req.DoctorIDs)
	if err != nil {
		return err
	}
	for i := range doctors {
		row, err := doctorReportRow(ctx, tx, &doctors[i], appointments)
		if err != nil {
			return err
		}
		report.DoctorStatistics = append(report.DoctorStatistics, row)
	}

	resources, err := reportResources(ctx, tx, req.ResourceIDs)
	if err != nil {
		return err
	}
	for i := range resources {
		row, err := equipmentReportRow(ctx, tx, &resources[i], report.StartDate, report.EndDate)
		if err != nil {
			return err
		}
		report.EquipmentStatistics = append(report.EquipmentStatistics, row)
	}
	return nil
}

// Unknown ids are skipped.
func reportPatients(ctx context.Context, tx repository.Store, ids []uuid.UUID) ([]entity.Patient, error) {
	if len(ids) == 0 {
		return tx.Patients().FindAll(ctx)
	}
	return tx.Patients().FindByIDs(ctx, ids)
}

func reportDoctors(ctx context.Context, tx repository.Store, ids []uuid.UUID) ([]entity.Doctor, error) {
	if len(ids) == 0 {
		return tx.Doctors().FindAll(ctx, nil)
	}
	return tx.Doctors().FindByIDs(ctx, ids)
}

func reportResources(ctx context.Context, tx repository.Store, ids []uuid.UUID) ([]entity.MedicalResource, error) {
	resources, err := tx.Resources().FindAll(ctx, nil)
	if err != nil || len(ids) == 0 {
		return resources, err
	}

	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	selected := resources[:0]
	for i := range resources {
		if _, ok := wanted[resources[i].ID]; ok {
			selected = append(selected, resources[i])
		}
	}
	return selected, nil
}

func patientReportRow(ctx context.Context, tx repository.Store, patient *entity.Patient, window []entity.Appointment) (entity.PatientReportRow, error) {
	appointments := filterAppointments(window, func(a *entity.Appointment) bool { return a.PatientID == patient.ID })
	processes, billings, err := loadProcesses(ctx, tx, appointments)
	if err != nil {
		return entity.PatientReportRow{}, err
	}

	row := entity.PatientReportRow{
		PatientID:         patient.ID,
		PatientName:       patient.Name,
		TotalAppointments: len(appointments),
		TotalProcesses:    len(processes),
		TotalPaid:         sumPaid(billings),
	}
	for i := range appointments {
		if appointments[i].Date > row.LastVisit {
			row.LastVisit = appointments[i].Date
		}
	}
	return row, nil
}

func doctorReportRow(ctx context.Context, tx repository.Store, doctor *entity.Doctor, window []entity.Appointment) (entity.DoctorReportRow, error) {
	appointments := filterAppointments(window, func(a *entity.Appointment) bool { return a.DoctorID == doctor.ID })
	row := entity.DoctorReportRow{
		DoctorID:         doctor.ID,
		DoctorName:       doctor.Name,
		AppointmentCount: len(appointments),
	}

	_, billings, err := loadProcesses(ctx, tx, appointments)
	if err != nil {
		return row, err
	}
	row.TotalRevenue = sumPaid(billings)

	inWindow := make(map[uuid.UUID]struct{}, len(appointments))
	ids := make([]uuid.UUID, len(appointments))
	for i := range appointments {
		ids[i] = appointments[i].ID
		inWindow[appointments[i].ID] = struct{}{}
	}

	prescriptions, err := tx.Prescriptions().FindByAppointmentIDs(ctx, ids)
	if err != nil {
		return row, err
	}
	medications := make(map[string]struct{}, len(prescriptions))
	for i := range prescriptions {
		medications[prescriptions[i].MedicationName] = struct{}{}
	}
	row.PrescriptionCount = len(medications)

	reviews, err := tx.Reviews().FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return row, err
	}
	windowReviews := reviews[:0]
	for i := range reviews {
		if _, ok := inWindow[reviews[i].AppointmentID]; ok {
			windowReviews = append(windowReviews, reviews[i])
		}
	}
	row.AverageRating = averageRating(windowReviews)
	return row, nil
}

// equipmentReportRow counts reservations dated in [from, to] that were not
// rejected.
func equipmentReportRow(ctx context.Context, tx repository.Store, resource *entity.MedicalResource, from, to string) (entity.EquipmentReportRow, error) {
	row := entity.EquipmentReportRow{
		ResourceID:   resource.ID,
		ResourceName: resource.Name,
	}

	reservations, err := tx.Reservations().FindByResourceID(ctx, resource.ID)
	if err != nil {
		return row, err
	}

	requesters := make(map[uuid.UUID]struct{})
	for i := range reservations {
		r := &reservations[i]
		if r.Date < from || r.Date > to || r.Status == entity.ReservationStatusRejected {
			continue
		}
		row.TotalRequests++
		requesters[r.RequesterID] = struct{}{}
		if r.Date > row.LastUsedDate {
			row.LastUsedDate = r.Date
		}
	}
	row.UsageCount = len(requesters)
	return row, nil
}

func filterAppointments(appointments []entity.Appointment, keep func(*entity.Appointment) bool) []entity.Appointment {
	var kept []entity.Appointment
	for i := range appointments {
		if keep(&appointments[i]) {
			kept = append(kept, appointments[i])
		}
	}
	return kept
}
