package internal

import (
	"math"
	"strconv"
	"strings"
)

// IsDigit reports whether the character is a digit
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsIntegerText reports whether s is an optionally signed run of digits
func IsIntegerText(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FormatReal renders f in its shortest round-trip form. A trailing ".0" is
// added when the text would otherwise read back as an integer.
func FormatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// FormatInteger renders i in base 10
func FormatInteger(i int64) string {
	return strconv.FormatInt(i, 10)
}
