package converter

import (
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		Name:        medication.Name,
		Description: medication.Description,
		Information: medication.Information,
	}
}

func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i := range medications {
		responses[i] = *MedicationToResponse(&medications[i])
	}
	return responses
}
