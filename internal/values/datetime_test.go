package values_test

import (
	"testing"

	"github.com/spietras/timon-interpreter/internal/values"
)

func mustDate(t *testing.T, day, month, year int) values.Date {
	t.Helper()
	d, err := values.NewDate(day, month, year)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d): %v", day, month, year, err)
	}
	return d
}

func TestDateTimeAddTimedeltaMonthClamping(t *testing.T) {
	tests := []struct {
		name     string
		start    values.Date
		td       values.Timedelta
		expected values.Date
	}{
		{"31 Jan + 1 month clamps to 29 Feb in a leap year", mustDate(t, 31, 1, 2024), values.Timedelta{Months: 1}, mustDate(t, 29, 2, 2024)},
		{"31 Jan + 1 month clamps to 28 Feb in a non-leap year", mustDate(t, 31, 1, 2023), values.Timedelta{Months: 1}, mustDate(t, 28, 2, 2023)},
		{"29 Feb + 1 year falls back to 28 Feb", mustDate(t, 29, 2, 2024), values.Timedelta{Years: 1}, mustDate(t, 28, 2, 2025)},
		{"31 Mar - 1 month clamps to 28 Feb", mustDate(t, 31, 3, 2023), values.Timedelta{Months: -1}, mustDate(t, 28, 2, 2023)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := tt.start.AtMidnight().AddTimedelta(tt.td)
			if err != nil {
				t.Fatalf("AddTimedelta: %v", err)
			}
			if !dt.Date.Equal(tt.expected) {
				t.Errorf("got %s, want %s", dt.Date, tt.expected)
			}
		})
	}
}

func TestDateTimeSubDateTimeRoundTrip(t *testing.T) {
	left := mustDate(t, 1, 3, 2024).AtMidnight()
	right := mustDate(t, 31, 1, 2024).AtMidnight()

	diff := left.SubDateTime(right)
	back, err := right.AddTimedelta(diff)
	if err != nil {
		t.Fatalf("AddTimedelta: %v", err)
	}
	if !back.Equal(left) {
		t.Errorf("right + (left - right) = %s, want %s", back, left)
	}
}

func TestDateTimeAddTimedeltaOverflowBelowYearOne(t *testing.T) {
	start := mustDate(t, 1, 1, 1).AtMidnight()
	if _, err := start.AddTimedelta(values.Timedelta{Days: -1}); err == nil {
		t.Fatal("expected an overflow error")
	}
}
