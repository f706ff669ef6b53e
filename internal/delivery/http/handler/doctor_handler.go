package handler

import (
	"net/http"
	"strconv"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"

	"github.com/shopspring/decimal"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetDoctors handles GET /doctors?specialization=&min_rating=&max_price=&available_day=
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.DoctorFilterRequest{
		Specialization: query.Get("specialization"),
		AvailableDay:   query.Get("available_day"),
	}

	if raw := query.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "min_rating must be a number")
			return
		}
		req.MinRating = &minRating
	}
	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			response.BadRequest(w, "max_price must be a number")
			return
		}
		req.MaxPrice = &maxPrice
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.GetDoctors(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetDoctorPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	patients, err := h.doctorUsecase.GetDoctorPatients(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *DoctorHandler) GetDoctorStatistics(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	stats, err := h.doctorUsecase.GetDoctorStatistics(r.Context(), doctorID)
	if err != nil {
		writeError(w, err, "Failed to get doctor statistics")
		return
	}

	response.Success(w, http.StatusOK, "Doctor statistics retrieved successfully", stats)
}
