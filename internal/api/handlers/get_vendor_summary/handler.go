package get_vendor_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VendorDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-VendorDashboard/internal/api/middleware"
	getDashboardSummary "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_dashboard_summary"
)

const (
	msgMissingVendorID = "отсутствует ID вендора"
	msgForbidden       = "доступ запрещен"
	msgVendorNotFound  = "вендор не найден"
)

type Handler struct {
	useCase DashboardSummaryUseCase
	logger  Logger
}

func NewHandler(useCase DashboardSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorID := vars["vendorId"]
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/summary - Missing vendor ID in path")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	// Вендор из заголовка (через middleware Auth) должен совпадать с вендором из пути
	requesterID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/summary - Missing vendor ID in context")
		handlers.RespondUnauthorized(w, msgMissingVendorID)
		return
	}
	if requesterID != vendorID {
		h.logger.Warn("GET /vendors/{id}/summary - Access denied: vendor_id=%s, requester_id=%s", vendorID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDashboardSummary.Request{VendorID: vendorID})
	if err != nil {
		switch {
		case errors.Is(err, getDashboardSummary.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/summary - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		default:
			h.logger.Error("GET /vendors/{id}/summary - Failed to build summary: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/summary - Summary built successfully: vendor_id=%s, total=%d",
		vendorID, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
