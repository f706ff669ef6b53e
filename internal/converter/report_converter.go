package converter

import (
	"slices"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:                  report.ID,
		Timeframe:           string(report.Timeframe),
		StartDate:           report.StartDate,
		EndDate:             report.EndDate,
		PatientStatistics:   nonNil(report.PatientStatistics),
		DoctorStatistics:    nonNil(report.DoctorStatistics),
		EquipmentStatistics: nonNil(report.EquipmentStatistics),
		CreatedAt:           report.CreatedAt,
	}
}

func ReportsToSummaries(reports []entity.Report) []dto.ReportSummaryResponse {
	summaries := make([]dto.ReportSummaryResponse, len(reports))
	for i := range reports {
		r := &reports[i]
		summaries[i] = dto.ReportSummaryResponse{
			ID:             r.ID,
			Timeframe:      string(r.Timeframe),
			StartDate:      r.StartDate,
			EndDate:        r.EndDate,
			PatientCount:   len(r.PatientStatistics),
			DoctorCount:    len(r.DoctorStatistics),
			EquipmentCount: len(r.EquipmentStatistics),
			CreatedAt:      r.CreatedAt,
		}
	}
	return summaries
}

// nonNil keeps empty sections rendering as [] rather than null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return slices.Clip(rows)
}
