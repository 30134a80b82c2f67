package records

import (
	"context"

	"github.com/m04kA/SMC-VendorDashboard/internal/integrations/parkingapi"
)

// ParkingAPIClient интерфейс клиента backend API платформы
type ParkingAPIClient interface {
	FetchVendorBookings(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error)
	FetchBookingTransactions(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error)
	FetchUserBookingTransactions(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error)
	FetchNonUserBookings(ctx context.Context, vendorID string) ([]parkingapi.RawBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
