package engine

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MaxCreditValue bounds a parsed credit's magnitude so that the exact sums
// and the rounding stay inside int64.
const MaxCreditValue = math.MaxInt32

// ParseCredit reads a credit the way a lenient integer parse does: leading
// whitespace (Unicode spaces and BOM included) is skipped, an optional sign
// is read, then either a "0x" prefix and hex digits or a run of decimal
// digits. Anything after the digits is ignored ("3abc" is 3, "2.5" is 2,
// "0x5" is 5). ok is false when no digits follow, or when the magnitude
// exceeds MaxCreditValue.
func ParseCredit(input string) (credit int, ok bool) {
	s := strings.TrimLeftFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil || n > MaxCreditValue || n < -MaxCreditValue {
		return 0, false
	}
	return int(n), true
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ParseSubject splits a "GRADE:CREDIT" argument into a row. Either side may be
// empty; an argument without a colon is taken as a grade with no credit.
// No validation happens here.
func ParseSubject(arg string) Subject {
	grade, credit, _ := strings.Cut(arg, ":")
	return Subject{
		Grade:  strings.TrimSpace(grade),
		Credit: strings.TrimSpace(credit),
	}
}

// CreditOptions returns the selector values for the credit column, without the unset entry.
func CreditOptions() []string {
	out := make([]string, 0, MaxCredit-MinCredit+1)
	for c := MinCredit; c <= MaxCredit; c++ {
		out = append(out, strconv.Itoa(c))
	}
	return out
}
