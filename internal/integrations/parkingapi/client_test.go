package parkingapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "", 5*time.Second, nopLogger{}, nil)
}

func TestFetchVendorBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendor/fetchbookingsbyvendorid/v1", r.URL.Path)
		w.Write([]byte(`{"bookings":[{"_id":"b1","amount":100},{"_id":"b2","amount":"250.50"}]}`))
	})

	got, err := client.FetchVendorBookings(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "b1", got[0].ID.String())
	v, ok := got[1].Amount.Decimal()
	require.True(t, ok)
	assert.Equal(t, "250.50", v.StringFixed(2))
}

func TestFetchBookingTransactions_NestedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendor/fetchbookingtransaction/v1", r.URL.Path)
		w.Write([]byte(`{"data":{"bookings":[{"_id":"t1"}]}}`))
	})

	got, err := client.FetchBookingTransactions(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID.String())
}

func TestFetchUserBookingTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendor/userbookingtrans/v1", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[{"_id":"u1","gst":5,"handlingfee":2}]}`))
	})

	got, err := client.FetchUserBookingTransactions(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFetchNonUserBookings_SuccessFalse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"no records"}`))
	})

	got, err := client.FetchNonUserBookings(context.Background(), "v1")
	// success=false - пустая коллекция, не ошибка
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchVendorBookings_NonArrayPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bookings":{"error":"boom"}}`))
	})

	got, err := client.FetchVendorBookings(context.Background(), "v1")
	// Не-массив в поле коллекции деградирует в пустой список
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchVendorBookings_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchVendorBookings(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestFetchVendorBookings_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchVendorBookings(context.Background(), "v1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"bookings":[]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "secret-token", 5*time.Second, nopLogger{}, nil)
	_, err := client.FetchVendorBookings(context.Background(), "v1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestFetchVendorBookingsWithGracefulDegradation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "", 5*time.Second, nopLogger{}, nil)
	_, err := client.FetchVendorBookingsWithGracefulDegradation(context.Background(), "v1")

	assert.ErrorIs(t, err, ErrServiceDegraded)
}
