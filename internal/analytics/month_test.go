package analytics

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	monthStart, err := ParseMonth("2025-08")
	if err != nil {
		t.Fatalf("корректный месяц не разобрался: %v", err)
	}
	want := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !monthStart.Equal(want) {
		t.Errorf("начало месяца: получили %v, хотели %v", monthStart, want)
	}
}

func TestParseMonthInvalid(t *testing.T) {
	cases := []string{"", "2025-8", "08-2025", "2025-13", "2025-00", "2025-08-01", "август"}
	for _, month := range cases {
		if _, err := ParseMonth(month); err == nil {
			t.Errorf("месяц %q должен был отклониться", month)
		}
	}
}
