package get_booking_table

import (
	"context"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// SnapshotService интерфейс сервиса снапшотов бронирований
type SnapshotService interface {
	LoadBookings(ctx context.Context, vendorID string) ([]domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
