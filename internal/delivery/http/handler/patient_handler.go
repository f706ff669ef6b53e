package handler

import (
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetPatientDoctors(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	doctors, err := h.patientUsecase.GetPatientDoctors(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *PatientHandler) GetPatientStatistics(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	stats, err := h.patientUsecase.GetPatientStatistics(r.Context(), patientID)
	if err != nil {
		writeError(w, err, "Failed to get patient statistics")
		return
	}

	response.Success(w, http.StatusOK, "Patient statistics retrieved successfully", stats)
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) TopUpBalance(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.TopUpBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.paymentUsecase.TopUpBalance(r.Context(), patientID, &req)
	if err != nil {
		writeError(w, err, "Failed to top up balance")
		return
	}

	response.Success(w, http.StatusOK, "Balance topped up successfully", patient)
}

// MakePayment settles one billing from the patient's balance. A balance
// shortfall is answered with 402 and leaves everything unchanged.
func (h *PatientHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.MakePayment(r.Context(), patientID, &req)
	if err != nil {
		writeError(w, err, "Failed to make payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment completed successfully", payment)
}
