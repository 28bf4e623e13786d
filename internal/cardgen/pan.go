// Package cardgen generates and inspects the synthetic primary account
// numbers used by the simulator. Numbers are Luhn-valid so client-side
// checkout validation accepts them, but they are minted from reserved
// test prefixes and never correspond to a real card.
package cardgen

import (
	"fmt"
	"math/rand"
)

// GeneratePAN returns a Luhn-valid number of totalLen digits starting
// with prefix. The filler digits come from rnd so callers control
// determinism.
func GeneratePAN(rnd *rand.Rand, prefix string, totalLen int) (string, error) {
	if !IsDigits(prefix) || prefix == "" {
		return "", fmt.Errorf("prefix must be numeric")
	}
	if totalLen < 13 || totalLen > 19 {
		return "", fmt.Errorf("total length must be 13..19")
	}
	fill := totalLen - 1 - len(prefix)
	if fill < 0 {
		return "", fmt.Errorf("prefix too long: %s", prefix)
	}
	b := make([]byte, fill)
	for i := range b {
		b[i] = byte('0' + rnd.Intn(10))
	}
	body := prefix + string(b)
	return body + luhnCheckDigit(body), nil
}

// Valid reports whether pan is all digits, 13-19 long, with a correct
// Luhn check digit.
func Valid(pan string) bool {
	if !IsDigits(pan) {
		return false
	}
	if l := len(pan); l < 13 || l > 19 {
		return false
	}
	body := pan[:len(pan)-1]
	return pan[len(pan)-1] == luhnCheckDigit(body)[0]
}

func luhnCheckDigit(body string) string {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	cd := (10 - (sum % 10)) % 10
	return string('0' + byte(cd))
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LastN returns the trailing n characters of s, or all of s when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
