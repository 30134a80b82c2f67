package export_bookings

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

// Handle GET /api/v1/vendors/{vendorId}/reports/bookings.csv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorID := vars["vendorId"]
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/reports/bookings.csv - Missing vendor ID in path")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	requesterID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/reports/bookings.csv - Missing vendor ID in context")
		handlers.RespondUnauthorized(w, msgMissingVendorID)
		return
	}
	if requesterID != vendorID {
		h.logger.Warn("GET /vendors/{id}/reports/bookings.csv - Access denied: vendor_id=%s, requester_id=%s",
			vendorID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	artifact, err := h.useCase.ExportBookingsCSV(r.Context(), &exportReport.Request{VendorID: vendorID})
	if err != nil {
		switch {
		case errors.Is(err, exportReport.ErrNoRows):
			// Пустой снапшот - файл не генерируется
			h.logger.Info("GET /vendors/{id}/reports/bookings.csv - Nothing to export: vendor_id=%s", vendorID)
			handlers.RespondNoContent(w)

		case errors.Is(err, exportReport.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/reports/bookings.csv - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		default:
			h.logger.Error("GET /vendors/{id}/reports/bookings.csv - Export failed: vendor_id=%s, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/reports/bookings.csv - Report generated: vendor_id=%s, size=%d",
		vendorID, len(artifact.Data))
	handlers.RespondFile(w, artifact.Filename, artifact.ContentType, artifact.Data)
}
