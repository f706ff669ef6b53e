package usecase

import (
	"context"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/converter"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrInvalidPeriod = apperror.New(apperror.ErrValidation, "invalid period, must be one of: week, month, quarter, year")

type AdminUsecase interface {
	GetAppointmentStatistics(ctx context.Context, period string) (*dto.AppointmentStatisticsResponse, error)
	GetRevenueStatistics(ctx context.Context, period string) (*dto.RevenueStatisticsResponse, error)
}

type adminUsecase struct {
	store repository.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewAdminUsecase(store repository.Store, log *logrus.Logger) AdminUsecase {
	return &adminUsecase{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (u *adminUsecase) GetAppointmentStatistics(ctx context.Context, period string) (*dto.AppointmentStatisticsResponse, error) {
	p, from, to, err := u.window(period)
	if err != nil {
		return nil, err
	}

	appointments, err := u.store.Appointments().FindByDateRange(ctx, from, to)
	if err != nil {
		u.log.Warnf("Failed to find appointments between %s and %s: %+v", from, to, err)
		return nil, err
	}

	stats := &entity.AppointmentStatistics{
		Period:            p,
		StartDate:         from,
		EndDate:           to,
		TotalAppointments: len(appointments),
	}
	for i := range appointments {
		switch appointments[i].Status {
		case entity.AppointmentStatusScheduled:
			stats.ScheduledAppointments++
		case entity.AppointmentStatusCompleted:
			stats.CompletedAppointments++
		case entity.AppointmentStatusCancelled:
			stats.CancelledAppointments++
		}
	}

	return converter.AppointmentStatisticsToResponse(stats), nil
}

// GetRevenueStatistics sums paid billings dated inside the window.
func (u *adminUsecase) GetRevenueStatistics(ctx context.Context, period string) (*dto.RevenueStatisticsResponse, error) {
	p, from, to, err := u.window(period)
	if err != nil {
		return nil, err
	}

	billings, err := u.store.Billings().FindByDateRange(ctx, from, to)
	if err != nil {
		u.log.Warnf("Failed to find billings between %s and %s: %+v", from, to, err)
		return nil, err
	}

	stats := &entity.RevenueStatistics{
		Period:           p,
		StartDate:        from,
		EndDate:          to,
		TotalRevenue:     decimal.Zero,
		AvgBillingAmount: decimal.Zero,
	}
	for i := range billings {
		if !billings[i].IsPaid() {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(billings[i].Amount)
		stats.BillingCount++
	}
	if stats.BillingCount > 0 {
		stats.AvgBillingAmount = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.BillingCount))).Round(2)
	}

	return converter.RevenueStatisticsToResponse(stats), nil
}

// window resolves period to the inclusive range [today - days, today].
// An empty period means a month.
func (u *adminUsecase) window(period string) (entity.StatisticsPeriod, string, string, error) {
	p := entity.StatisticsPeriod(period)
	if p == "" {
		p = entity.PeriodMonth
	}
	days := p.Days()
	if days == 0 {
		return "", "", "", ErrInvalidPeriod
	}

	end := u.now()
	start := end.AddDate(0, 0, -days)
	return p, start.Format(clock.DateLayout), end.Format(clock.DateLayout), nil
}
