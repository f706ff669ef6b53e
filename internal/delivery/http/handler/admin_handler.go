package handler

import (
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) GetAppointmentStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.GetAppointmentStatistics(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, err, "Failed to get appointment statistics")
		return
	}

	response.Success(w, http.StatusOK, "Appointment statistics retrieved successfully", stats)
}

func (h *AdminHandler) GetRevenueStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.GetRevenueStatistics(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, err, "Failed to get revenue statistics")
		return
	}

	response.Success(w, http.StatusOK, "Revenue statistics retrieved successfully", stats)
}
