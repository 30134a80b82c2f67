package get_vendor_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VendorDashboard/internal/api/middleware"
	getBookingTable "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_booking_table"
)

type fakeUseCase struct {
	gotReq *getBookingTable.Request
	resp   *getBookingTable.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getBookingTable.Request) (*getBookingTable.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(uc BookingTableUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/vendors/{vendorId}/bookings", handler.Handle).Methods(http.MethodGet)
	return router
}

func doRequest(router *mux.Router, url string, vendorHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if vendorHeader != "" {
		req.Header.Set(middleware.VendorIDHeader, vendorHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getBookingTable.Response{
			VendorID: "v1",
			Total:    1,
			Rows: []getBookingTable.RowResponse{
				{ID: "b1", Status: "completed", Amount: "100.00"},
			},
		},
	}
	router := newRouter(uc)

	rec := doRequest(router, "/api/v1/vendors/v1/bookings?status=completed&sortBy=parkingDate&order=desc", "v1")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp getBookingTable.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.VendorID)
	assert.Equal(t, 1, resp.Total)

	// Query параметры дошли до use case
	require.NotNil(t, uc.gotReq)
	require.NotNil(t, uc.gotReq.Status)
	assert.Equal(t, "completed", string(*uc.gotReq.Status))
	assert.Equal(t, "parkingDate", string(uc.gotReq.SortBy))
	assert.Equal(t, "desc", string(uc.gotReq.Order))
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doRequest(router, "/api/v1/vendors/v1/bookings", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ForeignVendor(t *testing.T) {
	uc := &fakeUseCase{}
	router := newRouter(uc)

	rec := doRequest(router, "/api/v1/vendors/v1/bookings", "other-vendor")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidQueryParams(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	tests := []struct {
		name string
		url  string
	}{
		{"bad from date", "/api/v1/vendors/v1/bookings?from=not-a-date"},
		{"bad status", "/api/v1/vendors/v1/bookings?status=teleported"},
		{"bad sort key", "/api/v1/vendors/v1/bookings?sortBy=amount"},
		{"bad order", "/api/v1/vendors/v1/bookings?order=sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, tt.url, "v1")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid period", getBookingTable.ErrInvalidPeriod, http.StatusBadRequest},
		{"vendor not found", getBookingTable.ErrVendorNotFound, http.StatusNotFound},
		{"internal error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})
			rec := doRequest(router, "/api/v1/vendors/v1/bookings", "v1")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
