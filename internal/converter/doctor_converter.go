package converter

import (
	"slices"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	availableDays := slices.Clone([]string(doctor.AvailableDays))
	if availableDays == nil {
		availableDays = []string{}
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Role:           string(doctor.Role()),
		Specialization: doctor.Specialization,
		Rating:         doctor.Rating,
		Experience:     doctor.Experience,
		Bio:            doctor.Bio,
		AvailableDays:  availableDays,
		Price:          doctor.Price,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func DoctorStatisticsToResponse(stats *entity.DoctorStatistics) *dto.DoctorStatisticsResponse {
	return &dto.DoctorStatisticsResponse{
		DoctorID:              stats.DoctorID,
		AppointmentCount:      stats.AppointmentCount,
		CompletedAppointments: stats.CompletedAppointments,
		CancelledAppointments: stats.CancelledAppointments,
		AverageRating:         stats.AverageRating,
		ReviewCount:           stats.ReviewCount,
		TotalRevenue:          stats.TotalRevenue,
		ReportDate:            stats.ReportDate,
	}
}
