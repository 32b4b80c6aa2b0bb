package values_test

import (
	"testing"

	"github.com/spietras/timon-interpreter/internal/values"
)

func TestTimedeltaEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     values.Timedelta
		expected bool
	}{
		{"identical", values.Timedelta{Days: 1}, values.Timedelta{Days: 1}, true},
		{"hours rolled into days are equal", values.Timedelta{Hours: 24}, values.Timedelta{Days: 1}, true},
		{"months never equal days", values.Timedelta{Months: 1}, values.Timedelta{Days: 30}, false},
		{"weeks vs days", values.Timedelta{Weeks: 1}, values.Timedelta{Days: 7}, true},
		{"years vs months", values.Timedelta{Years: 1}, values.Timedelta{Months: 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestTimedeltaLess(t *testing.T) {
	tests := []struct {
		name     string
		a, b     values.Timedelta
		expected bool
	}{
		{"1 day < 2 days", values.Timedelta{Days: 1}, values.Timedelta{Days: 2}, true},
		{"1 month < 32 days", values.Timedelta{Months: 1}, values.Timedelta{Days: 32}, true},
		{"1 month > 28 days", values.Timedelta{Months: 1}, values.Timedelta{Days: 28}, false},
		{"equal durations are not less", values.Timedelta{Weeks: 1}, values.Timedelta{Days: 7}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.expected {
				t.Errorf("Less(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestTimedeltaMulAndFloorDiv(t *testing.T) {
	td := values.Timedelta{Days: 3, Hours: -1}
	doubled := td.MulInt(2)
	if doubled.Days != 6 || doubled.Hours != -2 {
		t.Fatalf("MulInt(2) = %+v", doubled)
	}

	half, err := doubled.FloorDivInt(2)
	if err != nil {
		t.Fatalf("FloorDivInt: %v", err)
	}
	if half != td {
		t.Fatalf("FloorDivInt(2) = %+v, want %+v", half, td)
	}

	if _, err := td.FloorDivInt(0); err == nil {
		t.Fatal("expected division by zero error")
	}
}
