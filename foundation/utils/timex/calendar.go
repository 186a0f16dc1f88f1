// File: calendar.go
// Title: Calendar Arithmetic
// Description: Calendar carries the time zone and clock every zone-dependent
//              operation needs (midnight truncation, five-minute rounding,
//              day-of-year difference, first midnight of the month). The
//              package-level functions use a default calendar on the host
//              zone and the system clock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StartOfDay, StartOfMonth and truncation helpers
// - 2026-10-19 v0.2.0: Calendar with injectable location and clock; millisecond
//                      instants; day-of-year difference

package timex

import (
	"time"
)

// DefaultPattern is the pattern FormatInstant uses when none is given.
const DefaultPattern = "d/MM/yy h:m:s:SSS a z"

// ReadableEpochPattern is the pattern used by ReadableEpoch.
const ReadableEpochPattern = "dd MMM yyyy HH:mm:ss:SSS"

// Calendar evaluates instants in a fixed location and reads "now" from a
// Clock. A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	loc     *time.Location
	clock   Clock
	pattern string
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithLocation sets the time zone. A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithClock sets the clock used by Now, Today and ThisMonthFirstMidnight.
func WithClock(clock Clock) Option {
	return func(c *Calendar) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPattern sets the pattern FormatInstant falls back to for an empty
// pattern argument.
func WithPattern(pattern string) Option {
	return func(c *Calendar) {
		if pattern != "" {
			c.pattern = pattern
		}
	}
}

// New creates a Calendar on the host zone and system clock, adjusted by opts.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		loc:     time.Local,
		clock:   SystemClock{},
		pattern: DefaultPattern,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the calendar's time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Pattern returns the calendar's default format pattern.
func (c *Calendar) Pattern() string {
	return c.pattern
}

// Now returns the current instant from the calendar's clock.
func (c *Calendar) Now() Instant {
	return FromTime(c.clock.Now())
}

// Midnight truncates instant to 00:00:00.000 of its day in the calendar's zone.
func (c *Calendar) Midnight(instant Instant) Instant {
	t := instant.Time(c.loc)
	return FromTime(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc))
}

// RoundDownTo5Minutes truncates the minute to a multiple of five and zeroes
// seconds and milliseconds. Hour and day are unchanged. The remainder is
// subtracted from the instant, so a repeated wall-clock hour at a daylight
// saving fall-back keeps its offset.
func (c *Calendar) RoundDownTo5Minutes(instant Instant) Instant {
	t := instant.Time(c.loc)
	remainder := int64(t.Minute()%5)*Minute.Millis() +
		int64(t.Second())*Second.Millis() +
		int64(t.Nanosecond()/int(time.Millisecond))
	return instant - Instant(remainder)
}

// DayDifference returns dayOfYear(a) - dayOfYear(b). The year is ignored, so
// the result is not the elapsed day count when a and b fall in different
// years: Jan 1 against the preceding Dec 31 gives -364 (or -365 after a leap
// year), not 1.
func (c *Calendar) DayDifference(a, b Instant) int {
	return a.Time(c.loc).YearDay() - b.Time(c.loc).YearDay()
}

// AddOffset adds amount units to instant. Negative amounts subtract. The
// arithmetic is on milliseconds, so a Day is always 24 hours regardless of
// daylight saving transitions.
func (c *Calendar) AddOffset(instant Instant, unit TimeUnit, amount int64) Instant {
	return instant + Instant(amount*unit.Millis())
}

// ThisMonthFirstMidnight returns midnight of day 1 of the current month.
func (c *Calendar) ThisMonthFirstMidnight() Instant {
	now := c.clock.Now().In(c.loc)
	return FromTime(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, c.loc))
}

// WeekDayOf returns the day of the week of instant.
func (c *Calendar) WeekDayOf(instant Instant) WeekDay {
	return WeekDayFrom(instant.Time(c.loc).Weekday())
}

// Today returns the current date in the calendar's zone.
func (c *Calendar) Today() SimpleDate {
	now := c.clock.Now().In(c.loc)
	return SimpleDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// DateInstant realizes d at local midnight in the calendar's zone.
func (c *Calendar) DateInstant(d SimpleDate) Instant {
	return FromTime(d.timeIn(c.loc))
}

// DateOf returns the calendar date of instant.
func (c *Calendar) DateOf(instant Instant) SimpleDate {
	t := instant.Time(c.loc)
	return SimpleDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

var std = New()

// Default returns the calendar used by the package-level functions: host
// zone, system clock, DefaultPattern.
func Default() *Calendar {
	return std
}

// Now returns the current wall-clock instant.
func Now() Instant {
	return std.Now()
}

// Midnight truncates instant to the start of its day in the host zone.
func Midnight(instant Instant) Instant {
	return std.Midnight(instant)
}

// RoundDownTo5Minutes truncates instant to the previous five-minute mark in
// the host zone.
func RoundDownTo5Minutes(instant Instant) Instant {
	return std.RoundDownTo5Minutes(instant)
}

// DayDifference returns the day-of-year difference of a and b in the host zone.
func DayDifference(a, b Instant) int {
	return std.DayDifference(a, b)
}

// AddOffset adds amount units to instant.
func AddOffset(instant Instant, unit TimeUnit, amount int64) Instant {
	return std.AddOffset(instant, unit, amount)
}

// ThisMonthFirstMidnight returns midnight of the first day of the current
// month in the host zone.
func ThisMonthFirstMidnight() Instant {
	return std.ThisMonthFirstMidnight()
}

// Today returns the current date in the host zone.
func Today() SimpleDate {
	return std.Today()
}
