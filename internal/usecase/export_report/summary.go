package export_report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// buildSummaryCSV сериализует свод в CSV "метрика на строку"
// Числа в файле обязаны совпадать с плитками дашборда: свод считается тем же
// domain.BuildAggregate, денежные значения форматируются с двумя знаками
func buildSummaryCSV(agg domain.Aggregate) ([]byte, error) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Total Bookings", strconv.Itoa(agg.TotalBookings)},
		{"Pending", strconv.Itoa(agg.Count(domain.StatusPending))},
		{"Approved", strconv.Itoa(agg.Count(domain.StatusApproved))},
		{"Cancelled", strconv.Itoa(agg.Count(domain.StatusCancelled))},
		{"Parked", strconv.Itoa(agg.Count(domain.StatusParked))},
		{"Completed", strconv.Itoa(agg.Count(domain.StatusCompleted))},
		{"Subscriptions", strconv.Itoa(agg.Subscriptions)},
		{"Total Amount", agg.TotalAmount.StringFixed(domain.MoneyPrecision)},
		{"Total Platform Fee", agg.TotalPlatformFee.StringFixed(domain.MoneyPrecision)},
		{"Total Receivable", agg.TotalReceivable.StringFixed(domain.MoneyPrecision)},
		{"Total GST", agg.TotalGST.StringFixed(domain.MoneyPrecision)},
		{"Total Handling Fee", agg.TotalHandlingFee.StringFixed(domain.MoneyPrecision)},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("%w: buildSummaryCSV - write rows: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}
