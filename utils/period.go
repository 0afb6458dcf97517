package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// PeriodRange is a half-open [Start, End) reporting window plus the
// immediately preceding window of equal length, used for growth figures.
type PeriodRange struct {
	Start     time.Time
	End       time.Time
	PrevStart time.Time
	PrevEnd   time.Time
}

var ErrInvalidPeriod = errors.New("invalid period")

func IsValidMMYYYY(dateStr string) bool {
	if len(dateStr) != 7 {
		return false
	}
	parts := strings.Split(dateStr, "-")
	if len(parts) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1900 || year > 9999 {
		return false
	}
	_, err = time.Parse("01-2006", dateStr)
	return err == nil
}

// ParsePeriod resolves "today", "week", "month" or an explicit "MM-YYYY"
// against now. Weeks start on Monday.
func ParsePeriod(period string, now time.Time) (PeriodRange, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case "today":
		return PeriodRange{
			Start:     dayStart,
			End:       dayStart.AddDate(0, 0, 1),
			PrevStart: dayStart.AddDate(0, 0, -1),
			PrevEnd:   dayStart,
		}, nil
	case "week":
		offset := (int(now.Weekday()) + 6) % 7 // Monday = 0
		weekStart := dayStart.AddDate(0, 0, -offset)
		return PeriodRange{
			Start:     weekStart,
			End:       weekStart.AddDate(0, 0, 7),
			PrevStart: weekStart.AddDate(0, 0, -7),
			PrevEnd:   weekStart,
		}, nil
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return PeriodRange{
			Start:     monthStart,
			End:       monthStart.AddDate(0, 1, 0),
			PrevStart: monthStart.AddDate(0, -1, 0),
			PrevEnd:   monthStart,
		}, nil
	}

	if IsValidMMYYYY(period) {
		t, _ := time.Parse("01-2006", period)
		monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, now.Location())
		return PeriodRange{
			Start:     monthStart,
			End:       monthStart.AddDate(0, 1, 0),
			PrevStart: monthStart.AddDate(0, -1, 0),
			PrevEnd:   monthStart,
		}, nil
	}

	return PeriodRange{}, ErrInvalidPeriod
}
