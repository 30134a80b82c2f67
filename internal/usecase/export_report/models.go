package export_report

import (
	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// Форматы отчетов для метрик
const (
	formatCSV        = "csv"
	formatWorkbook   = "xlsx"
	formatSummaryCSV = "summary_csv"
)

// Request запрос экспорта отчета
type Request struct {
	VendorID string
}

// Artifact сгенерированный файл отчета
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// reportHeader колонки табличных отчетов - ровно те, что видны в таблице дашборда
var reportHeader = []string{
	"ID",
	"Booking Date",
	"Parking Time",
	"Exit Date",
	"Vehicle Number",
	"Vehicle Type",
	"Amount",
	"Platform Fee",
	"GST",
	"Handling Fee",
	"Receivable",
	"Status",
	"Subscription",
}

// reportRow форматирует запись в ячейки строки отчета
// Порядок значений соответствует reportHeader
func reportRow(r *domain.BookingRecord) []string {
	status := string(r.Status)
	if r.Status == domain.StatusUnknown {
		status = r.RawStatus
	}

	subscription := "no"
	if r.Subscription {
		subscription = "yes"
	}

	return []string{
		r.ID,
		r.BookingDate,
		r.ParkingTime.String(),
		r.ExitDate,
		r.VehicleNumber,
		string(r.VehicleType),
		r.Amount.StringFixed(domain.MoneyPrecision),
		r.PlatformFee.StringFixed(domain.MoneyPrecision),
		r.GST.StringFixed(domain.MoneyPrecision),
		r.HandlingFee.StringFixed(domain.MoneyPrecision),
		r.Receivable.StringFixed(domain.MoneyPrecision),
		status,
		subscription,
	}
}
