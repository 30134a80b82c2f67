package get_dashboard_summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("get_dashboard_summary: internal error")
)
