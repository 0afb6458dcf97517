package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParsePeriodToday(t *testing.T) {
	now := time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)

	rng, err := ParsePeriod("today", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", rng.Start, wantStart)
	}
	if !rng.End.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("End = %v, want %v", rng.End, wantStart.AddDate(0, 0, 1))
	}
	if !rng.PrevEnd.Equal(rng.Start) {
		t.Errorf("previous window should end where current starts")
	}
	if !rng.PrevStart.Equal(wantStart.AddDate(0, 0, -1)) {
		t.Errorf("PrevStart = %v, want yesterday", rng.PrevStart)
	}
}

func TestParsePeriodWeekStartsMonday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	rng, err := ParsePeriod("week", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want Monday %v", rng.Start, wantStart)
	}
	if !rng.End.Equal(wantStart.AddDate(0, 0, 7)) {
		t.Errorf("End = %v, want next Monday", rng.End)
	}

	// A Sunday belongs to the week that began the previous Monday.
	sunday := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	rng, _ = ParsePeriod("week", sunday)
	if !rng.Start.Equal(wantStart) {
		t.Errorf("Sunday week Start = %v, want %v", rng.Start, wantStart)
	}
}

func TestParsePeriodMonth(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	rng, err := ParsePeriod("month", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", rng.Start, wantStart)
	}
	if !rng.End.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("End = %v, want April 1st", rng.End)
	}
	if !rng.PrevStart.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PrevStart = %v, want February 1st", rng.PrevStart)
	}
}

func TestParsePeriodExplicitMonth(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	rng, err := ParsePeriod("01-2025", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rng.Start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v, want January 1st 2025", rng.Start)
	}
	if !rng.PrevStart.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PrevStart = %v, want December 1st 2024", rng.PrevStart)
	}
}

func TestParsePeriodInvalid(t *testing.T) {
	now := time.Now()

	for _, period := range []string{"", "yesterday", "13-2025", "2025-01", "1-2025x"} {
		if _, err := ParsePeriod(period, now); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("ParsePeriod(%q) error = %v, want ErrInvalidPeriod", period, err)
		}
	}
}

func TestIsValidMMYYYY(t *testing.T) {
	valid := []string{"01-2025", "12-1999"}
	for _, s := range valid {
		if !IsValidMMYYYY(s) {
			t.Errorf("IsValidMMYYYY(%q) = false, want true", s)
		}
	}

	invalid := []string{"13-2025", "00-2025", "1-2025", "01-25", "2025-01", "abc"}
	for _, s := range invalid {
		if IsValidMMYYYY(s) {
			t.Errorf("IsValidMMYYYY(%q) = true, want false", s)
		}
	}
}

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		current  float64
		previous float64
		want     float64
	}{
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{0, 0, 0},
		{10, 0, 100},
	}

	for _, tc := range cases {
		if got := CalculateGrowth(tc.current, tc.previous); got != tc.want {
			t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}
