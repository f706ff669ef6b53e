package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PatientStatistics is a point-in-time summary of one patient's activity.
type PatientStatistics struct {
	PatientID         uuid.UUID
	TotalAppointments int
	TotalProcesses    int
	TotalPaid         decimal.Decimal
	LastVisit         string // latest appointment date, empty when none
	ReportDate        string // day the summary was computed
}

// DoctorStatistics is a point-in-time summary of one doctor's activity.
type DoctorStatistics struct {
	DoctorID              uuid.UUID
	AppointmentCount      int
	CompletedAppointments int
	CancelledAppointments int
	AverageRating         float64
	ReviewCount           int
	TotalRevenue          decimal.Decimal
	ReportDate            string
}

// StatisticsPeriod is a look-back window for admin reports.
type StatisticsPeriod string

const (
	PeriodWeek    StatisticsPeriod = "week"
	PeriodMonth   StatisticsPeriod = "month"
	PeriodQuarter StatisticsPeriod = "quarter"
	PeriodYear    StatisticsPeriod = "year"
)

// Days returns the window length, or 0 for an unknown period.
func (p StatisticsPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodQuarter:
		return 90
	case PeriodYear:
		return 365
	}
	return 0
}

type AppointmentStatistics struct {
	Period                StatisticsPeriod
	StartDate             string
	EndDate               string
	TotalAppointments     int
	ScheduledAppointments int
	CompletedAppointments int
	CancelledAppointments int
}

type RevenueStatistics struct {
	Period           StatisticsPeriod
	StartDate        string
	EndDate          string
	TotalRevenue     decimal.Decimal
	BillingCount     int
	AvgBillingAmount decimal.Decimal
}
