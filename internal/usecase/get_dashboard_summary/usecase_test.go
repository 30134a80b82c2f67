package get_dashboard_summary

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	"github.com/m04kA/SMC-VendorDashboard/internal/service/records"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSnapshots struct {
	transactions []domain.BookingRecord
	err          error
}

func (s *fakeSnapshots) LoadTransactions(ctx context.Context, vendorID string) ([]domain.BookingRecord, error) {
	return s.transactions, s.err
}

func summaryRecord(status string, amount int64, subscription bool) domain.BookingRecord {
	category, _ := domain.ClassifyStatus(status)
	return domain.BookingRecord{
		Status:       category,
		RawStatus:    status,
		Subscription: subscription,
		Amount:       decimal.NewFromInt(amount),
	}
}

func TestExecute(t *testing.T) {
	snapshots := &fakeSnapshots{transactions: []domain.BookingRecord{
		summaryRecord("Pending", 100, false),
		summaryRecord("Completed", 250, false),
		summaryRecord("parked", 0, false),
		summaryRecord("approved", 50, true),
	}}
	uc := NewUseCase(snapshots, nopLogger{})

	got, err := uc.Execute(context.Background(), &Request{VendorID: "v1"})
	require.NoError(t, err)

	assert.Equal(t, "v1", got.VendorID)
	assert.Equal(t, 4, got.TotalBookings)
	assert.Equal(t, 1, got.Pending)
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 1, got.Parked)
	assert.Equal(t, 1, got.Approved)
	assert.Equal(t, 0, got.Cancelled)
	assert.Equal(t, 1, got.Subscriptions)
	assert.Equal(t, "400.00", got.TotalAmount)
}

func TestExecute_EmptySnapshot(t *testing.T) {
	uc := NewUseCase(&fakeSnapshots{}, nopLogger{})

	got, err := uc.Execute(context.Background(), &Request{VendorID: "v1"})
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalBookings)
	assert.Equal(t, "0.00", got.TotalAmount)
}

func TestExecute_MissingVendorID(t *testing.T) {
	uc := NewUseCase(&fakeSnapshots{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_VendorNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSnapshots{err: records.ErrVendorNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VendorID: "missing"})
	assert.ErrorIs(t, err, ErrVendorNotFound)
}
