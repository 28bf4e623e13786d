// Package expiry computes the expiry fields stamped onto fabricated
// cards.
package expiry

import (
	"fmt"
	"time"
)

// MonthYear returns the expiry month and two-digit year for a card
// issued at issue and valid for the given number of years. The month is
// kept from the issue date, matching how real cards expire at the end
// of their issue month.
func MonthYear(issue time.Time, years int) (month, year string) {
	t := issue.UTC()
	return fmt.Sprintf("%02d", int(t.Month())), fmt.Sprintf("%02d", (t.Year()+years)%100)
}

// ValidMonth reports whether a two-digit expiry month is in 01..12.
func ValidMonth(mm string) bool {
	if len(mm) != 2 || mm[0] < '0' || mm[0] > '9' || mm[1] < '0' || mm[1] > '9' {
		return false
	}
	m := int(mm[0]-'0')*10 + int(mm[1]-'0')
	return m >= 1 && m <= 12
}
