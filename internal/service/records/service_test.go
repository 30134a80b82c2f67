package records

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VendorDashboard/internal/integrations/parkingapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	vendorBookings    []parkingapi.RawBooking
	vendorBookingsErr error

	transactions    []parkingapi.RawBooking
	transactionsErr error

	userTrans    []parkingapi.RawBooking
	userTransErr error

	nonUser    []parkingapi.RawBooking
	nonUserErr error
}

func (c *fakeClient) FetchVendorBookings(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error) {
	return c.vendorBookings, c.vendorBookingsErr
}

func (c *fakeClient) FetchBookingTransactions(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error) {
	return c.transactions, c.transactionsErr
}

func (c *fakeClient) FetchUserBookingTransactions(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error) {
	return c.userTrans, c.userTransErr
}

func (c *fakeClient) FetchNonUserBookings(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error) {
	return c.nonUser, c.nonUserErr
}

func rawWithID(id string) parkingapi.RawBooking {
	return parkingapi.RawBooking{ID: parkingapi.LooseString(id)}
}

func TestLoadBookings(t *testing.T) {
	client := &fakeClient{
		vendorBookings: []parkingapi.RawBooking{rawWithID("b1"), rawWithID("b2")},
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.LoadBookings(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
}

func TestLoadBookings_DegradesToEmptyOnFetchFailure(t *testing.T) {
	client := &fakeClient{
		vendorBookingsErr: errors.New("connection refused"),
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.LoadBookings(context.Background(), "v1")
	// Недоступность backend - не ошибка представления
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadBookings_VendorNotFound(t *testing.T) {
	client := &fakeClient{
		vendorBookingsErr: parkingapi.ErrVendorNotFound,
	}
	svc := NewService(client, nopLogger{})

	_, err := svc.LoadBookings(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestLoadBookings_EmptyVendorID(t *testing.T) {
	svc := NewService(&fakeClient{}, nopLogger{})

	_, err := svc.LoadBookings(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoadTransactions_JoinsBothSides(t *testing.T) {
	client := &fakeClient{
		userTrans: []parkingapi.RawBooking{rawWithID("u1")},
		nonUser:   []parkingapi.RawBooking{rawWithID("n1"), rawWithID("n2")},
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.LoadTransactions(context.Background(), "v1")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLoadTransactions_OneSideFails(t *testing.T) {
	client := &fakeClient{
		userTransErr: errors.New("timeout"),
		nonUser:      []parkingapi.RawBooking{rawWithID("n1")},
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.LoadTransactions(context.Background(), "v1")
	// Отказ одной стороны деградирует её в пустую коллекцию,
	// представление строится по успешной стороне
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

func TestLoadTransactions_BothSidesFail(t *testing.T) {
	client := &fakeClient{
		userTransErr: errors.New("timeout"),
		nonUserErr:   errors.New("connection refused"),
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.LoadTransactions(context.Background(), "v1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadTransactions_VendorNotFound(t *testing.T) {
	client := &fakeClient{
		userTransErr: parkingapi.ErrVendorNotFound,
		nonUserErr:   parkingapi.ErrVendorNotFound,
	}
	svc := NewService(client, nopLogger{})

	_, err := svc.LoadTransactions(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestLoadTransactionHistory(t *testing.T) {
	client := &fakeClient{
		transactions: []parkingapi.RawBooking{rawWithID("t1")},
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.LoadTransactionHistory(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}
