package get_booking_table

import (
	"time"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// Request запрос табличного представления бронирований вендора
type Request struct {
	VendorID string

	From   *time.Time             // Начало периода включительно (опционально)
	To     *time.Time             // Конец периода включительно (опционально)
	Status *domain.StatusCategory // Фильтр по категории (опционально)

	SortBy domain.SortKey
	Order  domain.SortOrder
}

// RowResponse строка таблицы бронирований
type RowResponse struct {
	ID            string `json:"id"`
	BookingDate   string `json:"bookingDate"`
	ParkingTime   string `json:"parkingTime"`
	ExitDate      string `json:"exitDate,omitempty"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	Amount        string `json:"amount"`
	PlatformFee   string `json:"platformFee"`
	GST           string `json:"gst"`
	HandlingFee   string `json:"handlingFee"`
	Receivable    string `json:"receivable"`
	Status        string `json:"status"`
	Subscription  bool   `json:"subscription"`
}

// Response табличное представление бронирований
type Response struct {
	VendorID string        `json:"vendorId"`
	Total    int           `json:"total"`
	Rows     []RowResponse `json:"rows"`
}

// ToResponse конвертирует записи в табличный ответ
func ToResponse(vendorID string, records []domain.BookingRecord) *Response {
	rows := make([]RowResponse, 0, len(records))
	for i := range records {
		rows = append(rows, toRow(&records[i]))
	}

	return &Response{
		VendorID: vendorID,
		Total:    len(rows),
		Rows:     rows,
	}
}

func toRow(r *domain.BookingRecord) RowResponse {
	status := string(r.Status)
	if r.Status == domain.StatusUnknown {
		// Нераспознанный статус показываем как есть, не теряя данные
		status = r.RawStatus
	}

	return RowResponse{
		ID:            r.ID,
		BookingDate:   r.BookingDate,
		ParkingTime:   r.ParkingTime.String(),
		ExitDate:      r.ExitDate,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   string(r.VehicleType),
		Amount:        r.Amount.StringFixed(domain.MoneyPrecision),
		PlatformFee:   r.PlatformFee.StringFixed(domain.MoneyPrecision),
		GST:           r.GST.StringFixed(domain.MoneyPrecision),
		HandlingFee:   r.HandlingFee.StringFixed(domain.MoneyPrecision),
		Receivable:    r.Receivable.StringFixed(domain.MoneyPrecision),
		Status:        status,
		Subscription:  r.Subscription,
	}
}
