package get_vendor_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VendorDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-VendorDashboard/internal/api/middleware"
	getBookingTable "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_booking_table"
)

const (
	msgMissingVendorID = "отсутствует ID вендора"
	msgInvalidParams   = "некорректные параметры запроса"
	msgInvalidPeriod   = "начало периода позже конца"
	msgForbidden       = "доступ запрещен"
	msgVendorNotFound  = "вендор не найден"
)

type Handler struct {
	useCase BookingTableUseCase
	logger  Logger
}

func NewHandler(useCase BookingTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/bookings
// Query params: from, to, status, sortBy, order (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vendorID := vars["vendorId"]
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/bookings - Missing vendor ID in path")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	requesterID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/bookings - Missing vendor ID in context")
		handlers.RespondUnauthorized(w, msgMissingVendorID)
		return
	}
	if requesterID != vendorID {
		h.logger.Warn("GET /vendors/{id}/bookings - Access denied: vendor_id=%s, requester_id=%s", vendorID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		vendorID,
		query.Get("from"),
		query.Get("to"),
		query.Get("status"),
		query.Get("sortBy"),
		query.Get("order"),
	)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getBookingTable.ErrInvalidPeriod):
			h.logger.Warn("GET /vendors/{id}/bookings - Invalid period: vendor_id=%s", vendorID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getBookingTable.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/bookings - Invalid input: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getBookingTable.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/bookings - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		default:
			h.logger.Error("GET /vendors/{id}/bookings - Failed to build table: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/bookings - Table built successfully: vendor_id=%s, rows=%d",
		vendorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
