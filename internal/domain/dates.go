package domain

import (
	"strings"
	"time"
)

// DateFormats поддерживаемые форматы дат backend, в порядке перебора
// Backend не гарантирует единый формат: даты приходят как ISO-8601 (с зоной и
// без), "dd-MM-yyyy", "yyyy-MM-dd" и "MM/dd/yyyy" в зависимости от ручки.
// Выигрывает первый формат, который успешно распарсился.
var DateFormats = []string{
	time.RFC3339,          // 2024-06-15T10:30:00Z
	"2006-01-02T15:04:05", // ISO-8601 без зоны
	"02-01-2006",          // dd-MM-yyyy
	"2006-01-02",          // yyyy-MM-dd
	"01/02/2006",          // MM/dd/yyyy
}

// DisplayDateFormat формат дат в отчетах
const DisplayDateFormat = "2006-01-02"

// ParseDate парсит дату backend перебором поддерживаемых форматов
// ok=false, если строка пуста или не подошёл ни один формат
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range DateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// TruncateToDay обнуляет время, оставляя только календарную дату
// Все сравнения границ периода выполняются по усечённым датам, поэтому
// конечная дата периода включается целиком
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
