package domain

import "strings"

// StatusCategory каноническая категория статуса бронирования
type StatusCategory string

const (
	StatusPending   StatusCategory = "pending"
	StatusApproved  StatusCategory = "approved"
	StatusCancelled StatusCategory = "cancelled"
	StatusParked    StatusCategory = "parked"
	StatusCompleted StatusCategory = "completed"

	// StatusUnknown backend прислал статус вне канонического набора
	// Такие записи не попадают ни в одну категорию счётчиков, но участвуют в общих суммах
	StatusUnknown StatusCategory = ""
)

// StatusCategories канонический набор категорий в порядке отображения
var StatusCategories = []StatusCategory{
	StatusPending,
	StatusApproved,
	StatusCancelled,
	StatusParked,
	StatusCompleted,
}

// SubscriptionType значение поля типа, помечающее подписочное бронирование
const SubscriptionType = "subscription"

// ClassifyStatus приводит свободный текст статуса к канонической категории
// Регистр и пробелы по краям игнорируются - backend отдаёт статусы в разном регистре.
// Нераспознанный статус возвращает (StatusUnknown, false), это не ошибка.
func ClassifyStatus(raw string) (StatusCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "cancelled":
		return StatusCancelled, true
	case "parked":
		return StatusParked, true
	case "completed":
		return StatusCompleted, true
	default:
		return StatusUnknown, false
	}
}

// IsSubscriptionType проверяет поле типа записи на признак подписки
// Классификация ортогональна статусу: запись может быть одновременно
// "completed" и подписочной.
func IsSubscriptionType(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == SubscriptionType
}

// ClassifyVehicleType приводит свободный текст типа транспорта к enum
func ClassifyVehicleType(raw string) VehicleType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "car", "4-wheeler", "four-wheeler":
		return VehicleCar
	case "bike", "two-wheeler", "2-wheeler", "scooter", "motorcycle":
		return VehicleTwoWheeler
	default:
		return VehicleOther
	}
}

// ParseStatusCategory валидирует категорию из пользовательского ввода (query параметры)
func ParseStatusCategory(s string) (StatusCategory, bool) {
	return ClassifyStatus(s)
}

// ParseSortKey валидирует ключ сортировки из пользовательского ввода
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.TrimSpace(s)) {
	case SortByCreatedAt:
		return SortByCreatedAt, true
	case SortByParkingDate:
		return SortByParkingDate, true
	case SortByExitDate:
		return SortByExitDate, true
	default:
		return "", false
	}
}

// ParseSortOrder валидирует направление сортировки из пользовательского ввода
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, true
	case SortDesc:
		return SortDesc, true
	default:
		return "", false
	}
}
