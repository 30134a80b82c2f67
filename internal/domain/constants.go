package domain

// Имена файлов отчетов
const (
	BookingsReportFilename = "vendor_bookings_report.csv"
	StatusWorkbookFilename = "vendor_bookings_by_status.xlsx"
	SummaryReportFilename  = "vendor_dashboard_summary.csv"
)

// SubscriptionsSheetName имя листа с подписочными бронированиями в XLSX отчете
// Лист наполняется по ортогональному признаку Subscription: строка может
// одновременно присутствовать на листе своей категории и на этом листе
const SubscriptionsSheetName = "Subscriptions"

// MoneyPrecision количество знаков после запятой в денежных значениях отчетов
const MoneyPrecision = 2
