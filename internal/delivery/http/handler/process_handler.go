package handler

import (
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"
)

type ProcessHandler struct {
	processUsecase usecase.ProcessUsecase
	validator      *validator.CustomValidator
}

func NewProcessHandler(processUsecase usecase.ProcessUsecase, validator *validator.CustomValidator) *ProcessHandler {
	return &ProcessHandler{
		processUsecase: processUsecase,
		validator:      validator,
	}
}

func (h *ProcessHandler) AddProcess(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.CreateProcessRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}
	req.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)

	process, err := h.processUsecase.AddProcess(r.Context(), appointmentID, &req)
	if err != nil {
		writeError(w, err, "Failed to add process")
		return
	}

	response.Success(w, http.StatusCreated, "Process added successfully", process)
}

func (h *ProcessHandler) GetAppointmentProcesses(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	processes, err := h.processUsecase.GetAppointmentProcesses(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to get processes")
		return
	}

	response.Success(w, http.StatusOK, "Processes retrieved successfully", processes)
}

func (h *ProcessHandler) GetPatientProcesses(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	processes, err := h.processUsecase.GetPatientProcesses(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get processes")
		return
	}

	response.Success(w, http.StatusOK, "Processes retrieved successfully", processes)
}

func (h *ProcessHandler) GetDoctorPatientProcesses(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}
	patientID, err := pathUUID(r, "patientId")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	processes, err := h.processUsecase.GetDoctorPatientProcesses(r.Context(), doctorID, patientID)
	if err != nil {
		writeError(w, err, "Failed to get processes")
		return
	}

	response.Success(w, http.StatusOK, "Processes retrieved successfully", processes)
}

func (h *ProcessHandler) UpdateProcessStatus(w http.ResponseWriter, r *http.Request) {
	processID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid process ID")
		return
	}

	var req dto.UpdateProcessStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	process, err := h.processUsecase.UpdateProcessStatus(r.Context(), processID, &req)
	if err != nil {
		writeError(w, err, "Failed to update process status")
		return
	}

	response.Success(w, http.StatusOK, "Process status updated successfully", process)
}

func (h *ProcessHandler) GetProcessBilling(w http.ResponseWriter, r *http.Request) {
	processID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid process ID")
		return
	}

	billing, err := h.processUsecase.GetProcessBilling(r.Context(), processID)
	if err != nil {
		writeError(w, err, "Failed to get billing")
		return
	}

	response.Success(w, http.StatusOK, "Billing retrieved successfully", billing)
}

func (h *ProcessHandler) UpdateBillingStatus(w http.ResponseWriter, r *http.Request) {
	billingID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid billing ID")
		return
	}

	var req dto.UpdateBillingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.processUsecase.UpdateBillingStatus(r.Context(), billingID, &req)
	if err != nil {
		writeError(w, err, "Failed to update billing status")
		return
	}

	response.Success(w, http.StatusOK, "Billing status updated successfully", billing)
}
