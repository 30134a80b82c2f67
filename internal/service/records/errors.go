package records

import "errors"

var (
	// ErrVendorNotFound возвращается, когда backend не знает такого вендора
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("records service: internal error")
)
