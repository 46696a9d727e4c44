package engine

import (
	"fmt"
	"strconv"
)

// PlaceholderText is shown in place of a value when there is no result.
const PlaceholderText = "SGPA  0.00"

// Result is an SGPA held in hundredths. The zero Result means "no result",
// which is distinct from a computed 0.00.
type Result struct {
	hundredths int64
	ok         bool
}

// NoResult is returned when no row carries both a valid grade and a valid credit.
var NoResult = Result{}

func (r Result) Valid() bool { return r.ok }


func (r Result) Float64() (float64, bool) {
	if !r.ok {
		return 0, false
	}
	return float64(r.hundredths) / 100, true
}

// String formats the value with exactly two fractional digits, or "" when there is no result.
func (r Result) String() string {
	if !r.ok {
		return ""
	}
	v := r.hundredths
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Display renders the result line the way the form shows it.
func (r Result) Display() string {
	if !r.ok {
		return PlaceholderText
	}
	return "SGPA " + r.String()
}

// MarshalJSON encodes the value as a two-decimal string, or null.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(r.String())), nil
}

// RowTally is one row's contribution.
type RowTally struct {
	Index    int
	Subject  Subject
	Credit   int
	Point    int
	Included bool
}

// Tally holds the exact sums over every complete row.
type Tally struct {
	TotalCredits int64
	TotalPoints  int64
	Rows         []RowTally
}

// TallyOf visits every row once and sums credits and credit-weighted points
// over the complete rows. Other rows are skipped without error. Credits are
// bounded by MaxCreditValue, so the sums cannot overflow for any realistic
// number of rows.
func TallyOf(rows []Subject) Tally {
	t := Tally{Rows: make([]RowTally, 0, len(rows))}
	for i, s := range rows {
		rt := RowTally{Index: i, Subject: s}
		if credit, point, ok := s.weight(); ok {
			rt.Credit = credit
			rt.Point = point
			rt.Included = true
			t.TotalCredits += int64(credit)
			t.TotalPoints += int64(credit) * int64(point)
		}
		t.Rows = append(t.Rows, rt)
	}
	return t
}

// Result divides total points by total credits, rounded to two decimals
// half away from zero on the exact quotient. No positive credit total means NoResult.
func (t Tally) Result() Result {
	if t.TotalCredits <= 0 {
		return NoResult
	}
	return Result{hundredths: roundHundredths(t.TotalPoints, t.TotalCredits), ok: true}
}

// Calculate is the SGPA of rows. It is a pure function of its input.
func Calculate(rows []Subject) Result {
	return TallyOf(rows).Result()
}

// roundHundredths returns round(100*num/den) with ties away from zero. den must be positive.
// The integer part is split off first so only the remainder is scaled by 100.
func roundHundredths(num, den int64) int64 {
	whole := num / den
	frac := (num % den) * 100
	q := frac / den
	r := frac % den
	if r < 0 {
		r = -r
	}
	h := whole*100 + q
	if 2*r >= den {
		if num < 0 {
			h--
		} else {
			h++
		}
	}
	return h
}
