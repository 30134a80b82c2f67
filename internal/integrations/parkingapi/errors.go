package parkingapi

import "errors"

var (
	// ErrVendorNotFound возвращается, когда backend не знает такого вендора
	ErrVendorNotFound = errors.New("parkingapi client: vendor not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("parkingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе backend
	ErrInvalidResponse = errors.New("parkingapi client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что backend недоступен и представление следует строить по пустой коллекции
	ErrServiceDegraded = errors.New("parkingapi unavailable: graceful degradation applied")
)
