package dto

import "github.com/shopspring/decimal"

type AppointmentStatisticsResponse struct {
	Period                string `json:"period"`
	StartDate             string `json:"start_date"`
	EndDate               string `json:"end_date"`
	TotalAppointments     int    `json:"total_appointments"`
	ScheduledAppointments int    `json:"scheduled_appointments"`
	CompletedAppointments int    `json:"completed_appointments"`
	CancelledAppointments int    `json:"cancelled_appointments"`
}

type RevenueStatisticsResponse struct {
	Period           string          `json:"period"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	BillingCount     int             `json:"billing_count"`
	AvgBillingAmount decimal.Decimal `json:"avg_billing_amount"`
}
