// File: instant.go
// Title: Instant and Value Types
// Description: Millisecond instants, the clock abstraction, and the small value
//              types (Epoch, TimeUnit, WeekDay) shared by the formatting and
//              calendar functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: UnixMilli/ToUnixMilli helpers and Weekday mapping
// - 2026-10-19 v0.2.0: Instant type, injectable Clock, Epoch, TimeUnit, WeekDay

package timex

import (
	"time"
)

// Instant is a point in time as milliseconds since the Unix epoch (UTC).
// Negative values are accepted; calendar behavior before 1970 is whatever the
// time package computes and is not otherwise specified.
type Instant int64

// FromTime converts a time.Time to an Instant, dropping sub-millisecond precision.
func FromTime(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// Time returns the instant as a time.Time in loc. A nil loc means UTC.
func (i Instant) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(int64(i)).In(loc)
}

// Millis returns the raw millisecond count.
func (i Instant) Millis() int64 {
	return int64(i)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same time. Useful for deterministic output.
type FixedClock time.Time

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

var (
	_ Clock = SystemClock{}
	_ Clock = FixedClock{}
)

// Epoch is a starting/ending pair. No ordering is enforced; Starting may be
// after Ending.
type Epoch struct {
	Starting Instant
	Ending   Instant
}

// Span returns Ending - Starting in milliseconds. Negative when the pair is
// reversed.
func (e Epoch) Span() int64 {
	return int64(e.Ending - e.Starting)
}

// Contains reports whether i lies within the epoch, bounds inclusive.
// A reversed epoch contains nothing.
func (e Epoch) Contains(i Instant) bool {
	return i >= e.Starting && i <= e.Ending
}

// TimeUnit selects the unit for AddOffset.
type TimeUnit int

const (
	Day TimeUnit = iota
	Hour
	Minute
	Second
	Millisecond
)

// Millis returns the number of milliseconds in one unit.
func (u TimeUnit) Millis() int64 {
	switch u {
	case Day:
		return 24 * 60 * 60 * 1000
	case Hour:
		return 60 * 60 * 1000
	case Minute:
		return 60 * 1000
	case Second:
		return 1000
	default:
		return 1
	}
}

// String returns the lower-case unit name.
func (u TimeUnit) String() string {
	switch u {
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	default:
		return "unknown"
	}
}

// ParseTimeUnit parses a unit name as produced by TimeUnit.String, plus the
// short forms d, h, m, s and ms.
func ParseTimeUnit(s string) (TimeUnit, bool) {
	switch s {
	case "day", "days", "d":
		return Day, true
	case "hour", "hours", "h":
		return Hour, true
	case "minute", "minutes", "min", "m":
		return Minute, true
	case "second", "seconds", "sec", "s":
		return Second, true
	case "millisecond", "milliseconds", "ms":
		return Millisecond, true
	default:
		return Millisecond, false
	}
}

// WeekDay tags the days of the week. The order starts at Saturday; use
// Weekday for the time package value.
type WeekDay int

const (
	SAT WeekDay = iota
	SUN
	MON
	TUE
	WED
	THU
	FRI
)

var weekDayValues = [...]time.Weekday{
	SAT: time.Saturday,
	SUN: time.Sunday,
	MON: time.Monday,
	TUE: time.Tuesday,
	WED: time.Wednesday,
	THU: time.Thursday,
	FRI: time.Friday,
}

var weekDayNames = [...]string{"SAT", "SUN", "MON", "TUE", "WED", "THU", "FRI"}

// Weekday returns the matching time.Weekday.
func (w WeekDay) Weekday() time.Weekday {
	if w < SAT || w > FRI {
		return time.Saturday
	}
	return weekDayValues[w]
}

// String returns the three-letter tag.
func (w WeekDay) String() string {
	if w < SAT || w > FRI {
		return "???"
	}
	return weekDayNames[w]
}

// WeekDayFrom maps a time.Weekday back to its tag.
func WeekDayFrom(d time.Weekday) WeekDay {
	for tag, v := range weekDayValues {
		if v == d {
			return WeekDay(tag)
		}
	}
	return SAT
}
