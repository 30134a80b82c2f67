package get_booking_table

import (
	"fmt"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// validateRequest валидирует входные данные запроса и подставляет дефолты
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.VendorID == "" {
		return fmt.Errorf("%w: vendorID is required", ErrInvalidInput)
	}

	if req.From != nil && req.To != nil {
		from := domain.TruncateToDay(*req.From)
		to := domain.TruncateToDay(*req.To)
		if from.After(to) {
			return ErrInvalidPeriod
		}
	}

	// Дефолты сортировки: по моменту создания, по возрастанию
	if req.SortBy == "" {
		req.SortBy = domain.SortByCreatedAt
	}
	if req.Order == "" {
		req.Order = domain.SortAsc
	}

	return nil
}
