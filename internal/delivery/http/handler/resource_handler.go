package handler

import (
	"net/http"
	"strconv"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"
)

type ResourceHandler struct {
	resourceUsecase usecase.ResourceUsecase
	validator       *validator.CustomValidator
}

func NewResourceHandler(resourceUsecase usecase.ResourceUsecase, validator *validator.CustomValidator) *ResourceHandler {
	return &ResourceHandler{
		resourceUsecase: resourceUsecase,
		validator:       validator,
	}
}

// GetResources handles GET /resources?type=&department=&available=
func (h *ResourceHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.ResourceFilterRequest{
		Type:       query.Get("type"),
		Department: query.Get("department"),
	}
	if raw := query.Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "available must be true or false")
			return
		}
		req.AvailableOnly = available
	}

	resources, err := h.resourceUsecase.GetResources(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to get resources")
		return
	}

	response.Success(w, http.StatusOK, "Resources retrieved successfully", resources)
}

func (h *ResourceHandler) RequestResource(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}
	req.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)

	reservation, err := h.resourceUsecase.RequestResource(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to request resource")
		return
	}

	response.Success(w, http.StatusCreated, "Resource requested successfully", reservation)
}

func (h *ResourceHandler) GetResourceReservations(w http.ResponseWriter, r *http.Request) {
	resourceID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid resource ID")
		return
	}

	reservations, err := h.resourceUsecase.GetResourceReservations(r.Context(), resourceID)
	if err != nil {
		writeError(w, err, "Failed to get reservations")
		return
	}

	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}

func (h *ResourceHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid reservation ID")
		return
	}

	var req dto.UpdateReservationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reservation, err := h.resourceUsecase.UpdateReservationStatus(r.Context(), reservationID, &req)
	if err != nil {
		writeError(w, err, "Failed to update reservation")
		return
	}

	response.Success(w, http.StatusOK, "Reservation updated successfully", reservation)
}
