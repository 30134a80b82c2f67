package domain

import "github.com/shopspring/decimal"

// Aggregate свод по снапшоту бронирований
// Счётчики категорий и счётчик подписок независимы: подписочное бронирование
// со статусом "completed" учитывается в обоих. Денежные суммы считаются по
// ВСЕМ записям, включая записи с нераспознанным статусом.
//
// Одни и те же числа показываются в плитках дашборда и выгружаются в
// summary отчет, поэтому свод считается в одном месте.
type Aggregate struct {
	TotalBookings int
	StatusCounts  map[StatusCategory]int
	Subscriptions int

	TotalAmount      decimal.Decimal
	TotalPlatformFee decimal.Decimal
	TotalReceivable  decimal.Decimal
	TotalGST         decimal.Decimal
	TotalHandlingFee decimal.Decimal
}

// BuildAggregate сворачивает снапшот в свод
// Свёртка коммутативна (сложение и счёт), результат не зависит от порядка записей
func BuildAggregate(records []BookingRecord) Aggregate {
	agg := Aggregate{
		TotalBookings:    len(records),
		StatusCounts:     make(map[StatusCategory]int, len(StatusCategories)),
		TotalAmount:      decimal.Zero,
		TotalPlatformFee: decimal.Zero,
		TotalReceivable:  decimal.Zero,
		TotalGST:         decimal.Zero,
		TotalHandlingFee: decimal.Zero,
	}

	for _, category := range StatusCategories {
		agg.StatusCounts[category] = 0
	}

	for _, r := range records {
		if r.Status != StatusUnknown {
			agg.StatusCounts[r.Status]++
		}
		if r.Subscription {
			agg.Subscriptions++
		}

		agg.TotalAmount = agg.TotalAmount.Add(r.Amount)
		agg.TotalPlatformFee = agg.TotalPlatformFee.Add(r.PlatformFee)
		agg.TotalReceivable = agg.TotalReceivable.Add(r.Receivable)
		agg.TotalGST = agg.TotalGST.Add(r.GST)
		agg.TotalHandlingFee = agg.TotalHandlingFee.Add(r.HandlingFee)
	}

	return agg
}

// Count возвращает счётчик категории
func (a Aggregate) Count(category StatusCategory) int {
	return a.StatusCounts[category]
}
