package export_report

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrNoRows возвращается при экспорте пустого снапшота
	// Пустой отчет не генерируется: экспорт превращается в no-op
	ErrNoRows = errors.New("nothing to export: snapshot is empty")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("export_report: internal error")
)
