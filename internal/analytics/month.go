package analytics

import (
	"fmt"
	"time"
)

// ParseMonth разбирает строгий формат YYYY-MM и возвращает первое число месяца.
// Любое отклонение формата — ошибка, до обращения к БД дело не доходит.
func ParseMonth(month string) (time.Time, error) {
	if month == "" {
		return time.Time{}, fmt.Errorf("month is required")
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, fmt.Errorf("month must be in YYYY-MM format")
	}
	return t, nil
}
