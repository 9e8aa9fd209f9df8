// Package period resolves calendar month selectors into inclusive date
// ranges. Everything here is pure: same inputs always yield the same range
// and nothing is read from the clock.
package period

import (
	"fmt"
	"time"

	"github.com/pruthagwin123/expense-tracker/internal"
)

// DateRange is an inclusive [Start, End] pair of calendar days. Only
// Resolve constructs it, so Start <= End always holds.
type DateRange struct {
	Start time.Time
	End   time.Time
}

const (
	minYear = 1
	maxYear = 9999
)

// Resolve turns a (year, month) selector into the inclusive range covering
// that calendar month. End is computed as the day before the first of the
// following month, which yields 28/29/30/31 without hard-coding month
// lengths; December rolls over into January of the next year. A month
// outside 1..12 or a year outside 1..9999 fails with InvalidPeriod, never a
// silently clamped range.
func Resolve(year, month int) (DateRange, error) {
	if month < 1 || month > 12 || year < minYear || year > maxYear {
		return DateRange{}, internal.ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var firstOfNext time.Time
	if month == 12 {
		firstOfNext = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		firstOfNext = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	end := firstOfNext.AddDate(0, 0, -1)

	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether t falls within the range, inclusive on both ends.
// Only the calendar day of t is considered.
func (r DateRange) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Label renders the range's month as "2024-03", the form used in report
// file names and PDF titles.
func (r DateRange) Label() string {
	return fmt.Sprintf("%04d-%02d", r.Start.Year(), int(r.Start.Month()))
}

// MonthName renders the range's month as "March 2024", used in email
// subjects and bodies.
func (r DateRange) MonthName() string {
	return r.Start.Format("January 2006")
}
