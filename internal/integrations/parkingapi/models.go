package parkingapi

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// RawBooking запись бронирования, как её отдаёт backend
// Формы записей различаются между ручками: у пользовательских транзакций есть
// GST и сервисный сбор, у внешних - нет; поле receivable встречается в двух
// написаниях (включая опечатку backend "recievableamount"). Все денежные и
// строковые поля декодируются толерантно: нераспознанное значение не роняет
// декодирование всей коллекции, а помечается для нормализатора.
type RawBooking struct {
	ID        LooseString `json:"_id"`
	BookingID LooseString `json:"bookingId"`

	BookingDate LooseString `json:"bookingDate"`
	Date        LooseString `json:"date"`
	ParkingTime LooseString `json:"parkingTime"`
	ExitTime    LooseString `json:"exittime"`
	CreatedAt   LooseString `json:"createdAt"`

	Amount           LooseMoney `json:"amount"`
	BookingAmount    LooseMoney `json:"bookingamount"`
	PlatformFee      LooseMoney `json:"platformfee"`
	Receivable       LooseMoney `json:"receivable"`
	ReceivableAmount LooseMoney `json:"recievableamount"` // sic: написание backend
	GST              LooseMoney `json:"gst"`
	HandlingFee      LooseMoney `json:"handlingfee"`

	VehicleNumber LooseString `json:"vehicleNumber"`
	VehicleNo     LooseString `json:"vehicleno"`
	VehicleType   LooseString `json:"vehicleType"`

	Status      LooseString `json:"status"`
	BookingType LooseString `json:"sts"`
}

// ErrorResponse модель ошибки backend
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Конверты ответов backend различаются между ручками

// bookingsEnvelope ответ /vendor/fetchbookingsbyvendorid/{id}
type bookingsEnvelope struct {
	Bookings json.RawMessage `json:"bookings"`
}

// transactionsEnvelope ответ /vendor/fetchbookingtransaction/{id}
type transactionsEnvelope struct {
	Data struct {
		Bookings json.RawMessage `json:"bookings"`
	} `json:"data"`
}

// dataEnvelope ответ /vendor/userbookingtrans/{id} и /vendor/nonuserbookings/{id}
type dataEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// LooseString строка, толерантная к типу в JSON
// Принимает строку, число, bool и null; ID у backend приходят то строкой, то числом
type LooseString string

// UnmarshalJSON реализует json.Unmarshaler
func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			*s = ""
			return nil
		}
		*s = LooseString(v)
		return nil
	}

	// Число, bool и прочие скаляры - храним как есть
	*s = LooseString(b)
	return nil
}

// String возвращает строковое значение
func (s LooseString) String() string {
	return string(s)
}

// LooseMoney денежное значение, толерантное к типу в JSON
// Принимает число, строку с числом, null и пустую строку.
// Нераспознанное значение не считается нулём молча: Valid=false, исходный
// текст сохраняется, нормализатор фиксирует расхождение.
type LooseMoney struct {
	Value decimal.Decimal
	Set   bool   // поле присутствовало и распарсилось
	Raw   string // исходный текст при неудачном парсинге
}

// UnmarshalJSON реализует json.Unmarshaler
func (m *LooseMoney) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	text := string(b)
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			m.Raw = text
			return nil
		}
		if v == "" {
			return nil
		}
		text = v
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		// Не роняем коллекцию из-за одного кривого поля
		m.Raw = strconv.Quote(text)
		return nil
	}

	m.Value = d
	m.Set = true
	return nil
}

// Decimal возвращает значение и признак его валидности
func (m LooseMoney) Decimal() (decimal.Decimal, bool) {
	return m.Value, m.Set
}

// Malformed возвращает true, если поле присутствовало, но не распарсилось
func (m LooseMoney) Malformed() bool {
	return !m.Set && m.Raw != ""
}
