package expiry

import (
	"testing"
	"time"
)

func TestMonthYear(t *testing.T) {
	issue := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	mm, yy := MonthYear(issue, 3)
	if mm != "06" || yy != "29" {
		t.Fatalf("MonthYear got %s/%s want 06/29", mm, yy)
	}
}

func TestMonthYear_CenturyRollover(t *testing.T) {
	issue := time.Date(2098, time.December, 1, 0, 0, 0, 0, time.UTC)
	mm, yy := MonthYear(issue, 3)
	if mm != "12" || yy != "01" {
		t.Fatalf("MonthYear got %s/%s want 12/01", mm, yy)
	}
}

func TestValidMonth(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"01", true}, {"12", true}, {"06", true},
		{"00", false}, {"13", false}, {"1", false}, {"1a", false}, {"", false},
	}
	for _, c := range cases {
		if got := ValidMonth(c.in); got != c.ok {
			t.Fatalf("ValidMonth(%q) got %v want %v", c.in, got, c.ok)
		}
	}
}
