package get_booking_table

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("invalid period: start date is after end date")

	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("get_booking_table: internal error")
)
