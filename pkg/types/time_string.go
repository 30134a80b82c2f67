package types

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat формат времени суток HH:MM
const TimeFormat = "15:04"

// TimeString время суток в формате "HH:MM"
// Хранится строкой, т.к. backend отдаёт время парковки без даты
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Принимает "HH:MM" и "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("types: empty time string")
	}

	// "HH:MM:SS" -> "HH:MM"
	if len(s) > len(TimeFormat) {
		s = s[:len(TimeFormat)]
	}

	if _, err := time.Parse(TimeFormat, s); err != nil {
		return "", fmt.Errorf("types: invalid time %q: %w", s, err)
	}

	return TimeString(s), nil
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return fmt.Errorf("types: invalid time %q: %w", string(t), err)
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore возвращает true, если t раньше other
// Невалидные значения считаются равными (порядок не меняется)
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := time.Parse(TimeFormat, string(t))
	b, err2 := time.Parse(TimeFormat, string(other))
	if err1 != nil || err2 != nil {
		return false
	}
	return a.Before(b)
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}
