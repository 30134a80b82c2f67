package records

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
	"github.com/m04kA/SMC-VendorDashboard/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-VendorDashboard/pkg/types"
)

// Issue зафиксированное расхождение сырой записи с ожидаемой формой
// Нормализация не падает из-за кривого поля: значение получает дефолт,
// а расхождение фиксируется, чтобы дрейф схемы backend был виден в логах
type Issue struct {
	RecordID string
	Field    string
	Detail   string
}

// String возвращает строковое представление для логов
func (i Issue) String() string {
	return fmt.Sprintf("record=%s field=%s: %s", i.RecordID, i.Field, i.Detail)
}

// Normalize приводит сырые записи backend к каноническим BookingRecord
// Гарантии для потребителей:
//   - результат никогда не nil, по записи на каждый вход
//   - отсутствующие поля получают пустую строку или ноль, downstream код
//     не ветвится по "значение не задано"
//   - каждая запись классифицируется по статусу и признаку подписки
func Normalize(raws []parkingapi.RawBooking) ([]domain.BookingRecord, []Issue) {
	out := make([]domain.BookingRecord, 0, len(raws))
	var issues []Issue

	for i, raw := range raws {
		record, recordIssues := normalizeOne(i, raw)
		out = append(out, record)
		issues = append(issues, recordIssues...)
	}

	return out, issues
}

func normalizeOne(index int, raw parkingapi.RawBooking) (domain.BookingRecord, []Issue) {
	var issues []Issue

	id := firstNonEmpty(raw.ID.String(), raw.BookingID.String())
	if id == "" {
		id = fmt.Sprintf("row-%d", index)
		issues = append(issues, Issue{RecordID: id, Field: "_id", Detail: "missing record identifier"})
	}

	flag := func(field, detail string) {
		issues = append(issues, Issue{RecordID: id, Field: field, Detail: detail})
	}

	record := domain.BookingRecord{
		ID:          id,
		BookingDate: firstNonEmpty(raw.BookingDate.String(), raw.Date.String()),
		ExitDate:    raw.ExitTime.String(),
		CreatedAt:   raw.CreatedAt.String(),

		Amount:      moneyOrZero(raw.Amount, raw.BookingAmount, "amount", flag),
		PlatformFee: moneyOrZero(raw.PlatformFee, parkingapi.LooseMoney{}, "platformfee", flag),
		GST:         moneyOrZero(raw.GST, parkingapi.LooseMoney{}, "gst", flag),
		HandlingFee: moneyOrZero(raw.HandlingFee, parkingapi.LooseMoney{}, "handlingfee", flag),

		VehicleNumber: firstNonEmpty(raw.VehicleNumber.String(), raw.VehicleNo.String()),
		VehicleType:   domain.ClassifyVehicleType(raw.VehicleType.String()),

		RawStatus:    raw.Status.String(),
		Subscription: domain.IsSubscriptionType(raw.BookingType.String()),
	}

	record.Receivable = normalizeReceivable(raw, flag)

	// Нераспознанный статус - не ошибка: запись просто не попадает
	// в категории счётчиков
	record.Status, _ = domain.ClassifyStatus(raw.Status.String())

	if rawTime := raw.ParkingTime.String(); rawTime != "" {
		parkingTime, err := types.NewTimeStringFromString(rawTime)
		if err != nil {
			flag("parkingTime", fmt.Sprintf("unparseable time %q", rawTime))
		} else {
			record.ParkingTime = parkingTime
		}
	}

	return record, issues
}

// normalizeReceivable сводит два написания поля receivable к каноническому
// Backend присылает "receivable" в одних ручках и "recievableamount" (sic)
// в других. Когда присутствуют оба и значения расходятся, выигрывает
// "recievableamount" (форма транзакций) и фиксируется расхождение.
func normalizeReceivable(raw parkingapi.RawBooking, flag func(field, detail string)) decimal.Decimal {
	primary, primaryOK := raw.ReceivableAmount.Decimal()
	secondary, secondaryOK := raw.Receivable.Decimal()

	if raw.ReceivableAmount.Malformed() {
		flag("recievableamount", fmt.Sprintf("unparseable money value %s", raw.ReceivableAmount.Raw))
	}
	if raw.Receivable.Malformed() {
		flag("receivable", fmt.Sprintf("unparseable money value %s", raw.Receivable.Raw))
	}

	switch {
	case primaryOK && secondaryOK:
		if !primary.Equal(secondary) {
			flag("receivable", fmt.Sprintf("receivable=%s disagrees with recievableamount=%s", secondary, primary))
		}
		return primary
	case primaryOK:
		return primary
	case secondaryOK:
		return secondary
	default:
		return decimal.Zero
	}
}

// moneyOrZero извлекает денежное значение с дефолтом в ноль
// fallback используется для полей с двумя именами (amount/bookingamount)
func moneyOrZero(primary, fallback parkingapi.LooseMoney, field string, flag func(field, detail string)) decimal.Decimal {
	if primary.Malformed() {
		flag(field, fmt.Sprintf("unparseable money value %s", primary.Raw))
	}

	if v, ok := primary.Decimal(); ok {
		return v
	}
	if v, ok := fallback.Decimal(); ok {
		return v
	}
	return decimal.Zero
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
