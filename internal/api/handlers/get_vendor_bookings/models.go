package get_vendor_bookings

import (
	"fmt"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	getBookingTable "github.com/m04kA/SMC-VendorDashboard/internal/usecase/get_booking_table"
)

// ToUseCaseRequest формирует запрос к use case из query параметров
// Даты принимаются в любом из поддерживаемых форматов backend
func ToUseCaseRequest(
	vendorID string,
	fromStr string,
	toStr string,
	statusStr string,
	sortByStr string,
	orderStr string,
) (*getBookingTable.Request, error) {
	req := &getBookingTable.Request{
		VendorID: vendorID,
	}

	// Парсим from если указан
	if fromStr != "" {
		from, ok := domain.ParseDate(fromStr)
		if !ok {
			return nil, fmt.Errorf("invalid from date: %q", fromStr)
		}
		req.From = &from
	}

	// Парсим to если указан
	if toStr != "" {
		to, ok := domain.ParseDate(toStr)
		if !ok {
			return nil, fmt.Errorf("invalid to date: %q", toStr)
		}
		req.To = &to
	}

	// Парсим status если указан
	if statusStr != "" {
		status, ok := domain.ParseStatusCategory(statusStr)
		if !ok {
			return nil, fmt.Errorf("invalid status: %q", statusStr)
		}
		req.Status = &status
	}

	// Парсим sortBy если указан
	if sortByStr != "" {
		sortBy, ok := domain.ParseSortKey(sortByStr)
		if !ok {
			return nil, fmt.Errorf("invalid sortBy: %q", sortByStr)
		}
		req.SortBy = sortBy
	}

	// Парсим order если указан
	if orderStr != "" {
		order, ok := domain.ParseSortOrder(orderStr)
		if !ok {
			return nil, fmt.Errorf("invalid order: %q", orderStr)
		}
		req.Order = order
	}

	return req, nil
}
