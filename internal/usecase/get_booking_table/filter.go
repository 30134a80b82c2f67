package get_booking_table

import (
	"time"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// filterByDateRange оставляет записи, чья дата бронирования попадает в период
// Обе границы включительны, любая из них может отсутствовать.
// Сравнение выполняется по датам, усечённым до полуночи (запись и обе границы),
// поэтому конечная дата периода включается целиком.
//
// Записи с нераспознаваемой датой:
//   - исключаются, если задана хотя бы одна граница (fail closed)
//   - включаются, если границ нет (фильтр ничего не ограничивает)
func filterByDateRange(records []domain.BookingRecord, from, to *time.Time) []domain.BookingRecord {
	if from == nil && to == nil {
		out := make([]domain.BookingRecord, len(records))
		copy(out, records)
		return out
	}

	var fromDay, toDay time.Time
	if from != nil {
		fromDay = domain.TruncateToDay(*from)
	}
	if to != nil {
		toDay = domain.TruncateToDay(*to)
	}

	out := make([]domain.BookingRecord, 0, len(records))
	for _, r := range records {
		day, ok := r.BookingDay()
		if !ok {
			continue
		}

		if from != nil && day.Before(fromDay) {
			continue
		}
		if to != nil && day.After(toDay) {
			continue
		}

		out = append(out, r)
	}

	return out
}

// filterByStatus оставляет записи указанной канонической категории
func filterByStatus(records []domain.BookingRecord, status *domain.StatusCategory) []domain.BookingRecord {
	if status == nil {
		return records
	}

	out := make([]domain.BookingRecord, 0, len(records))
	for _, r := range records {
		if r.Status == *status {
			out = append(out, r)
		}
	}

	return out
}
