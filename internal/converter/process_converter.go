package converter

import (
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessToResponse converts a Process entity to ProcessResponse DTO.
// billing may be nil.
func ProcessToResponse(process *entity.Process, billing *entity.Billing) *dto.ProcessResponse {
	if process == nil {
		return nil
	}

	return &dto.ProcessResponse{
		ID:            process.ID,
		AppointmentID: process.AppointmentID,
		Name:          process.Name,
		Description:   process.Description,
		Price:         process.Price,
		Status:        string(process.Status),
		Date:          process.Date,
		Billing:       BillingToResponse(billing),
		CreatedAt:     process.CreatedAt,
	}
}

// ProcessesToResponses attaches each process's billing when present in billings.
func ProcessesToResponses(processes []entity.Process, billings []entity.Billing) []dto.ProcessResponse {
	byProcess := make(map[uuid.UUID]*entity.Billing, len(billings))
	for i := range billings {
		byProcess[billings[i].ProcessID] = &billings[i]
	}

	responses := make([]dto.ProcessResponse, len(processes))
	for i := range processes {
		responses[i] = *ProcessToResponse(&processes[i], byProcess[processes[i].ID])
	}
	return responses
}

// BillingToResponse converts a Billing entity to BillingResponse DTO
func BillingToResponse(billing *entity.Billing) *dto.BillingResponse {
	if billing == nil {
		return nil
	}

	return &dto.BillingResponse{
		ID:        billing.ID,
		ProcessID: billing.ProcessID,
		Date:      billing.Date,
		Amount:    billing.Amount,
		Status:    string(billing.Status),
		UpdatedAt: billing.UpdatedAt,
	}
}
