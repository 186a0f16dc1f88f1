// File: simpledate.go
// Title: SimpleDate Value Type
// Description: Year/month/day triple with day-granularity arithmetic that is
//              independent of the time of day.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// SimpleDate is a calendar date. Fields are stored as given; Month is clamped
// to [1,12] and Day to [1,31] only when the date is realized as an instant,
// and an out-of-month day rolls forward (April 31 is May 1).
type SimpleDate struct {
	Year  int
	Month int
	Day   int
}

// NewSimpleDate returns the date without validating it.
func NewSimpleDate(year, month, day int) SimpleDate {
	return SimpleDate{Year: year, Month: month, Day: day}
}

// ParseSimpleDate parses a YYYY-MM-DD string. Only the shape is checked;
// out-of-range month or day values are kept as-is.
func ParseSimpleDate(s string) (SimpleDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return SimpleDate{}, mdwerror.New("date must be YYYY-MM-DD").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.ParseSimpleDate").
			WithDetail("input", s)
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return SimpleDate{}, mdwerror.Wrap(err, "date must be YYYY-MM-DD").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("timex.ParseSimpleDate").
				WithDetail("input", s)
		}
		fields[i] = n
	}
	return SimpleDate{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d SimpleDate) timeIn(loc *time.Location) time.Time {
	month := clamp(d.Month, 1, 12)
	day := clamp(d.Day, 1, 31)
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// ToInstant realizes the date at midnight in the host zone.
func (d SimpleDate) ToInstant() Instant {
	return std.DateInstant(d)
}

// DaysUntil returns the day-of-year difference between d and other, positive
// when other is earlier in its year. It carries the same year-boundary
// limitation as DayDifference.
func (d SimpleDate) DaysUntil(other SimpleDate) int {
	return d.timeIn(time.UTC).YearDay() - other.timeIn(time.UTC).YearDay()
}

// PlusDays returns the date n days later (earlier for negative n), rolling
// over months and years.
func (d SimpleDate) PlusDays(n int) SimpleDate {
	t := d.timeIn(time.UTC).AddDate(0, 0, n)
	return SimpleDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// String formats the stored fields as YYYY-MM-DD.
func (d SimpleDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
