package converter

import (
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		Name:        patient.Name,
		Email:       patient.Email,
		Role:        string(patient.Role()),
		PhoneNumber: patient.PhoneNumber,
		Balance:     patient.Balance,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func PatientStatisticsToResponse(stats *entity.PatientStatistics) *dto.PatientStatisticsResponse {
	return &dto.PatientStatisticsResponse{
		PatientID:         stats.PatientID,
		TotalAppointments: stats.TotalAppointments,
		TotalProcesses:    stats.TotalProcesses,
		TotalPaid:         stats.TotalPaid,
		LastVisit:         stats.LastVisit,
		ReportDate:        stats.ReportDate,
	}
}
