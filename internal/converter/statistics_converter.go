package converter

import (
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

func AppointmentStatisticsToResponse(stats *entity.AppointmentStatistics) *dto.AppointmentStatisticsResponse {
	return &dto.AppointmentStatisticsResponse{
		Period:                string(stats.Period),
		StartDate:             stats.StartDate,
		EndDate:               stats.EndDate,
		TotalAppointments:     stats.TotalAppointments,
		ScheduledAppointments: stats.ScheduledAppointments,
		CompletedAppointments: stats.CompletedAppointments,
		CancelledAppointments: stats.CancelledAppointments,
	}
}

func RevenueStatisticsToResponse(stats *entity.RevenueStatistics) *dto.RevenueStatisticsResponse {
	return &dto.RevenueStatisticsResponse{
		Period:           string(stats.Period),
		StartDate:        stats.StartDate,
		EndDate:          stats.EndDate,
		TotalRevenue:     stats.TotalRevenue,
		BillingCount:     stats.BillingCount,
		AvgBillingAmount: stats.AvgBillingAmount,
	}
}
