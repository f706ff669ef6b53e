package handler

import (
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}
	req.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)

	report, err := h.reportUsecase.GenerateReport(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to generate report")
		return
	}

	response.Success(w, http.StatusCreated, "Report generated successfully", report)
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.ListReports(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	report, err := h.reportUsecase.GetReport(r.Context(), reportID)
	if err != nil {
		writeError(w, err, "Failed to get report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}
