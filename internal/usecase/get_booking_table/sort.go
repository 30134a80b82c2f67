package get_booking_table

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VendorDashboard/internal/domain"
)

// sortRecords сортирует записи по ключу и направлению
// Сортировка стабильная: равные по компаратору записи сохраняют исходный
// относительный порядок. Направление desc инвертирует только строгие
// сравнения, равенство остаётся равенством - вторая сортировка desc+asc
// возвращает исходный asc-порядок.
func sortRecords(records []domain.BookingRecord, key domain.SortKey, order domain.SortOrder) {
	cmp := comparatorFor(key)

	sort.SliceStable(records, func(i, j int) bool {
		c := cmp(&records[i], &records[j])
		if order == domain.SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// comparatorFor возвращает компаратор для ключа сортировки
// Возвращаемый компаратор отдаёт отрицательное/ноль/положительное значение
func comparatorFor(key domain.SortKey) func(a, b *domain.BookingRecord) int {
	switch key {
	case domain.SortByParkingDate:
		return compareParkingDate
	case domain.SortByExitDate:
		return compareExitDate
	default:
		return compareCreatedAt
	}
}

// compareCreatedAt компаратор по моменту создания с трёхступенчатым fallback
// 1) момент создания, если оба распознаны и различаются
// 2) иначе дата бронирования, если обе распознаны и различаются
// 3) иначе дата выезда
// Полное совпадение или нераспознанные значения дают равенство
func compareCreatedAt(a, b *domain.BookingRecord) int {
	if ta, ok1 := a.CreatedAtTime(); ok1 {
		if tb, ok2 := b.CreatedAtTime(); ok2 && !ta.Equal(tb) {
			return compareTimes(ta, tb)
		}
	}

	if da, ok1 := a.BookingDay(); ok1 {
		if db, ok2 := b.BookingDay(); ok2 && !da.Equal(db) {
			return compareTimes(da, db)
		}
	}

	return compareExitDate(a, b)
}

// compareParkingDate компаратор по дате бронирования
// Нераспознанная дата с любой стороны даёт равенство - порядок пары не меняется
func compareParkingDate(a, b *domain.BookingRecord) int {
	da, ok1 := a.BookingDay()
	db, ok2 := b.BookingDay()
	if !ok1 || !ok2 {
		return 0
	}
	return compareTimes(da, db)
}

// compareExitDate компаратор по дате выезда
func compareExitDate(a, b *domain.BookingRecord) int {
	da, ok1 := a.ExitDay()
	db, ok2 := b.ExitDay()
	if !ok1 || !ok2 {
		return 0
	}
	return compareTimes(da, db)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
