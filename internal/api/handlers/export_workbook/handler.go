package export_workbook

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VendorDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-VendorDashboard/internal/api/middleware"
	exportReport "github.com/m04kA/SMC-VendorDashboard/internal/usecase/export_report"
)

const (
	msgMissingVendorID = "отсутствует ID вендора"
	msgForbidden       = "доступ запрещен"
	msgVendorNotFound  = "вендор не найден"
)

type Handler struct {
	useCase ExportUseCase
	logger  Logger
}

func NewHandler(useCase ExportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/reports/bookings.xlsx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorID := vars["vendorId"]
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/reports/bookings.xlsx - Missing vendor ID in path")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	requesterID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/reports/bookings.xlsx - Missing vendor ID in context")
		handlers.RespondUnauthorized(w, msgMissingVendorID)
		return
	}
	if requesterID != vendorID {
		h.logger.Warn("GET /vendors/{id}/reports/bookings.xlsx - Access denied: vendor_id=%s, requester_id=%s",
			vendorID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	artifact, err := h.useCase.ExportStatusWorkbook(r.Context(), &exportReport.Request{VendorID: vendorID})
	if err != nil {
		switch {
		case errors.Is(err, exportReport.ErrNoRows):
			h.logger.Info("GET /vendors/{id}/reports/bookings.xlsx - Nothing to export: vendor_id=%s", vendorID)
			handlers.RespondNoContent(w)

		case errors.Is(err, exportReport.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/reports/bookings.xlsx - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		default:
			h.logger.Error("GET /vendors/{id}/reports/bookings.xlsx - Export failed: vendor_id=%s, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/reports/bookings.xlsx - Report generated: vendor_id=%s, size=%d",
		vendorID, len(artifact.Data))
	handlers.RespondFile(w, artifact.Filename, artifact.ContentType, artifact.Data)
}
