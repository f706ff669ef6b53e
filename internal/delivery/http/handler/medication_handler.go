package handler

import (
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := h.medicationUsecase.ListMedications(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get medications")
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

// PrescribeMedication answers 201 for a new prescription and 200 when the
// appointment already held the medication.
func (h *MedicationHandler) PrescribeMedication(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.PrescribeMedicationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.medicationUsecase.PrescribeMedication(r.Context(), appointmentID, &req)
	if err != nil {
		writeError(w, err, "Failed to prescribe medication")
		return
	}

	if !prescription.Created {
		response.Success(w, http.StatusOK, "Medication already prescribed", prescription)
		return
	}
	response.Success(w, http.StatusCreated, "Medication prescribed successfully", prescription)
}

func (h *MedicationHandler) GetAppointmentMedications(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	medications, err := h.medicationUsecase.GetAppointmentMedications(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to get medications")
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

func (h *MedicationHandler) RemovePrescription(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.medicationUsecase.RemovePrescription(r.Context(), appointmentID, mux.Vars(r)["name"]); err != nil {
		writeError(w, err, "Failed to remove prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription removed successfully", nil)
}
