package export_report

import (
	"context"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// SnapshotService интерфейс сервиса снапшотов бронирований
type SnapshotService interface {
	LoadBookings(ctx context.Context, vendorID string) ([]domain.BookingRecord, error)
	LoadTransactions(ctx context.Context, vendorID string) ([]domain.BookingRecord, error)
	LoadTransactionHistory(ctx context.Context, vendorID string) ([]domain.BookingRecord, error)
}

// Observer интерфейс для метрик экспорта
// Реализуется pkg/metrics; nil-observer допустим (метрики выключены)
type Observer interface {
	ObserveExport(format string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
