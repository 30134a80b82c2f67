package get_vendor_bookings

import (
	"context"

	getBookingTable "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_booking_table"
)

// BookingTableUseCase интерфейс use case табличного представления бронирований
type BookingTableUseCase interface {
	Execute(ctx context.Context, req *getBookingTable.Request) (*getBookingTable.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
