package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VendorDashboard/pkg/types"
)

// VehicleType тип транспортного средства
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleTwoWheeler VehicleType = "two-wheeler"
	VehicleOther      VehicleType = "other"
)

// BookingRecord каноническая строка бронирования парковки
// Единственная модель, с которой работают агрегация, фильтрация и экспорт.
// Backend отдаёт разные формы записей (обычные бронирования, пользовательские
// и внешние транзакции) - нормализатор приводит их все к этой форме.
//
// Статус и признак подписки - два НЕЗАВИСИМЫХ поля: запись со статусом
// "completed" и типом "Subscription" учитывается и там, и там.
type BookingRecord struct {
	ID          string
	BookingDate string           // дата бронирования, как отдал backend (формат не гарантирован)
	ParkingTime types.TimeString // время заезда "HH:MM"
	ExitDate    string           // дата/время выезда (опционально, формат не гарантирован)
	CreatedAt   string           // момент создания записи на стороне backend

	Amount      decimal.Decimal // полная сумма бронирования
	PlatformFee decimal.Decimal // комиссия платформы
	Receivable  decimal.Decimal // сумма к выплате вендору
	GST         decimal.Decimal // налог (только пользовательские бронирования)
	HandlingFee decimal.Decimal // сервисный сбор (только пользовательские бронирования)

	VehicleNumber string
	VehicleType   VehicleType

	RawStatus    string         // статус, как отдал backend
	Status       StatusCategory // каноническая категория; StatusUnknown, если статус не распознан
	Subscription bool           // признак подписочного бронирования (ортогонален статусу)
}

// BookingDay возвращает дату бронирования, усечённую до полуночи
// ok=false, если дата не распознана ни одним из поддерживаемых форматов
func (r *BookingRecord) BookingDay() (time.Time, bool) {
	t, ok := ParseDate(r.BookingDate)
	if !ok {
		return time.Time{}, false
	}
	return TruncateToDay(t), true
}

// ExitDay возвращает дату выезда, усечённую до полуночи
func (r *BookingRecord) ExitDay() (time.Time, bool) {
	t, ok := ParseDate(r.ExitDate)
	if !ok {
		return time.Time{}, false
	}
	return TruncateToDay(t), true
}

// CreatedAtTime возвращает момент создания записи
func (r *BookingRecord) CreatedAtTime() (time.Time, bool) {
	return ParseDate(r.CreatedAt)
}

// VendorBookingsFilter фильтр табличного представления бронирований вендора
type VendorBookingsFilter struct {
	From   *time.Time      // Начало периода включительно (nil - без нижней границы)
	To     *time.Time      // Конец периода включительно (nil - без верхней границы)
	Status *StatusCategory // Фильтр по канонической категории (опционально)
}

// Bounded возвращает true, если задана хотя бы одна граница периода
func (f VendorBookingsFilter) Bounded() bool {
	return f.From != nil || f.To != nil
}

// SortKey ключ сортировки таблицы бронирований
type SortKey string

const (
	SortByCreatedAt   SortKey = "createdAt"
	SortByParkingDate SortKey = "parkingDate"
	SortByExitDate    SortKey = "exitDate"
)

// SortOrder направление сортировки
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
