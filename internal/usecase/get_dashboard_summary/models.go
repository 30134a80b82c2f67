package get_dashboard_summary

import (
	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// Request запрос свода дашборда
type Request struct {
	VendorID string `json:"vendorId"`
}

// Response свод дашборда вендора
// Денежные значения сериализуются строками с двумя знаками после запятой -
// ровно те числа, что показываются в плитках и выгружаются в summary отчет
type Response struct {
	VendorID      string `json:"vendorId"`
	TotalBookings int    `json:"totalBookings"`

	Pending       int `json:"pending"`
	Approved      int `json:"approved"`
	Cancelled     int `json:"cancelled"`
	Parked        int `json:"parked"`
	Completed     int `json:"completed"`
	Subscriptions int `json:"subscriptions"`

	TotalAmount      string `json:"totalAmount"`
	TotalPlatformFee string `json:"totalPlatformFee"`
	TotalReceivable  string `json:"totalReceivable"`
	TotalGST         string `json:"totalGst"`
	TotalHandlingFee string `json:"totalHandlingFee"`
}

// ToResponse конвертирует свод в ответ
func ToResponse(vendorID string, agg domain.Aggregate) *Response {
	return &Response{
		VendorID:      vendorID,
		TotalBookings: agg.TotalBookings,

		Pending:       agg.Count(domain.StatusPending),
		Approved:      agg.Count(domain.StatusApproved),
		Cancelled:     agg.Count(domain.StatusCancelled),
		Parked:        agg.Count(domain.StatusParked),
		Completed:     agg.Count(domain.StatusCompleted),
		Subscriptions: agg.Subscriptions,

		TotalAmount:      agg.TotalAmount.StringFixed(domain.MoneyPrecision),
		TotalPlatformFee: agg.TotalPlatformFee.StringFixed(domain.MoneyPrecision),
		TotalReceivable:  agg.TotalReceivable.StringFixed(domain.MoneyPrecision),
		TotalGST:         agg.TotalGST.StringFixed(domain.MoneyPrecision),
		TotalHandlingFee: agg.TotalHandlingFee.StringFixed(domain.MoneyPrecision),
	}
}
