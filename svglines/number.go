package svglines

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// parseNumber reads the longest prefix of `s` (after leading spaces)
// forming a decimal number, and ignores the rest:
// "12.5px" is 12.5, "1e" is 1, ".5" is 0.5.
// NaN is returned when no digit can be read.
// "Infinity" (optionally signed) is accepted; overflows saturate to ±Inf.
func parseNumber(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	if rest := s[end:]; strings.HasPrefix(rest, "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	// the exponent is only consumed if complete
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		expDigits := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > expDigits {
			end = exp
		}
	}

	// the prefix is well formed, so the only possible error is ErrRange,
	// for which ParseFloat returns ±Inf or 0, as wanted
	f, _ := strconv.ParseFloat(s[:end], 64)
	return f
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
