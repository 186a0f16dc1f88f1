// File: format.go
// Title: Duration and Instant Formatting
// Description: Month name lookup, readable durations ("1h:01m:01s"), relative
//              phrases ("3 days ago", "after a week") and pattern formatting
//              of instants.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: FormatDuration and HumanizeDuration
// - 2026-10-19 v0.2.0: Unit decomposition shared by ReadableDuration and
//                      RelativeTime; pattern formatting with fail-soft wrapper

package timex

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var shortMonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the English month name for a zero-based index.
// Indices outside 0..11 return "January".
func MonthName(i int) string {
	if i < 0 || i >= len(monthNames) {
		return monthNames[0]
	}
	return monthNames[i]
}

// ShortMonthName returns the three-letter month name for a zero-based index.
// Indices outside 0..11 return "Jan".
func ShortMonthName(i int) string {
	if i < 0 || i >= len(shortMonthNames) {
		return shortMonthNames[0]
	}
	return shortMonthNames[i]
}

// MonthNameOf returns the month name of instant in the calendar's zone.
func (c *Calendar) MonthNameOf(instant Instant) string {
	return MonthName(int(instant.Time(c.loc).Month()) - 1)
}

// ShortMonthNameOf returns the short month name of instant in the calendar's zone.
func (c *Calendar) ShortMonthNameOf(instant Instant) string {
	return ShortMonthName(int(instant.Time(c.loc).Month()) - 1)
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// units is a whole-second count split into calendar-free units.
type units struct {
	weeks, days, hours, minutes, seconds int64
}

func decompose(seconds int64) units {
	return units{
		weeks:   seconds / secondsPerWeek,
		days:    seconds % secondsPerWeek / secondsPerDay,
		hours:   seconds % secondsPerDay / secondsPerHour,
		minutes: seconds % secondsPerHour / secondsPerMinute,
		seconds: seconds % secondsPerMinute,
	}
}

// ReadableDuration renders a millisecond duration as colon-joined units,
// starting at the highest non-zero unit and keeping every unit below it.
// Minutes and seconds are padded to two digits. Sub-second remainders are
// dropped, a duration under one second is "0s" and a negative one is "".
//
//	ReadableDuration(90_000)      // "01m:30s"
//	ReadableDuration(3_661_000)   // "1h:01m:01s"
//	ReadableDuration(694_861_000) // "1w:1d:1h:01m:01s"
func ReadableDuration(ms int64) string {
	if ms < 0 {
		return ""
	}
	total := ms / 1000
	if total == 0 {
		return "0s"
	}
	u := decompose(total)

	var parts []string
	started := false
	emit := func(n int64, suffix string, width int) {
		if !started && n == 0 {
			return
		}
		started = true
		parts = append(parts, pad(int(n), width)+suffix)
	}
	emit(u.weeks, "w", 1)
	emit(u.days, "d", 1)
	emit(u.hours, "h", 1)
	emit(u.minutes, "m", 2)
	emit(u.seconds, "s", 2)
	return strings.Join(parts, ":")
}

// RelativeTime phrases the distance between from and to, the way a feed
// labels a post: "just now", "5 hours ago", "after 3 days". The result is
// future ("after ...") when from is earlier than to.
//
// Only the largest unit is named; seconds are ignored. Anything within
// roughly 90 seconds, in either direction, is "just now". The singular hour
// is "a hour".
func RelativeTime(from, to Instant) string {
	delta := int64(from - to)
	future := delta < 0
	if future {
		delta = -delta
	}
	if delta/60000 <= 1 {
		return "just now"
	}

	u := decompose(delta / 1000)
	var text string
	switch {
	case u.weeks > 1:
		text = strconv.FormatInt(u.weeks, 10) + " weeks"
	case u.weeks == 1:
		text = "a week"
	case u.days > 1:
		text = strconv.FormatInt(u.days, 10) + " days"
	case u.days == 1:
		text = "a day"
	case u.hours > 1:
		text = strconv.FormatInt(u.hours, 10) + " hours"
	case u.hours == 1:
		text = "a hour"
	case u.minutes > 10:
		text = strconv.FormatInt(u.minutes, 10) + " minutes"
	case u.minutes > 1:
		text = "a moment"
	}

	if future {
		return "after " + text
	}
	return text + " ago"
}

// TryFormatInstant renders instant in the calendar's zone with a date
// pattern. An empty pattern selects the calendar's default pattern. The
// error carries CodeInvalidFormat for an unknown letter or an unterminated
// quote.
func (c *Calendar) TryFormatInstant(instant Instant, pattern string) (string, error) {
	if pattern == "" {
		pattern = c.pattern
	}
	tokens, err := compilePattern(pattern)
	if err != nil {
		return "", mdwerror.Wrap(err, "format instant").
			WithOperation("timex.TryFormatInstant")
	}
	return renderPattern(instant.Time(c.loc), tokens), nil
}

// FormatInstant is TryFormatInstant with the error mapped to "".
func (c *Calendar) FormatInstant(instant Instant, pattern string) string {
	s, err := c.TryFormatInstant(instant, pattern)
	if err != nil {
		return ""
	}
	return s
}

// ReadableEpoch formats instant as "dd MMM yyyy HH:mm:ss:SSS".
func (c *Calendar) ReadableEpoch(instant Instant) string {
	return c.FormatInstant(instant, ReadableEpochPattern)
}

// ParseReadableEpoch reads back a ReadableEpoch string in the calendar's zone.
func (c *Calendar) ParseReadableEpoch(s string) (Instant, error) {
	// "02 Jan 2006 15:04:05" followed by ":mmm"
	const layout = "02 Jan 2006 15:04:05"
	s = strings.TrimSpace(s)
	if len(s) != len(layout)+4 || s[len(layout)] != ':' {
		return 0, readableEpochError(s, nil)
	}
	t, err := time.ParseInLocation(layout, s[:len(layout)], c.loc)
	if err != nil {
		return 0, readableEpochError(s, err)
	}
	ms, err := strconv.Atoi(s[len(layout)+1:])
	if err != nil || ms < 0 {
		return 0, readableEpochError(s, err)
	}
	return FromTime(t) + Instant(ms), nil
}

func readableEpochError(input string, cause error) error {
	var e *mdwerror.Error
	if cause != nil {
		e = mdwerror.Wrap(cause, "not a readable epoch")
	} else {
		e = mdwerror.New("not a readable epoch")
	}
	return e.WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("timex.ParseReadableEpoch").
		WithDetail("input", input)
}

// CurrentReadableTimeWithMillis is ReadableEpoch of the clock's now.
func (c *Calendar) CurrentReadableTimeWithMillis() string {
	return c.ReadableEpoch(c.Now())
}

// TryFormatInstant formats instant in the host zone.
func TryFormatInstant(instant Instant, pattern string) (string, error) {
	return std.TryFormatInstant(instant, pattern)
}

// FormatInstant formats instant in the host zone, returning "" for a bad
// pattern.
func FormatInstant(instant Instant, pattern string) string {
	return std.FormatInstant(instant, pattern)
}

// ReadableEpoch formats instant in the host zone as "dd MMM yyyy HH:mm:ss:SSS".
func ReadableEpoch(instant Instant) string {
	return std.ReadableEpoch(instant)
}

// CurrentReadableTimeWithMillis formats the current time with ReadableEpoch.
func CurrentReadableTimeWithMillis() string {
	return std.CurrentReadableTimeWithMillis()
}

// ParseReadableEpoch reads back a ReadableEpoch string in the host zone.
func ParseReadableEpoch(s string) (Instant, error) {
	return std.ParseReadableEpoch(s)
}

// MonthNameOf returns the month name of instant in the host zone.
func MonthNameOf(instant Instant) string {
	return std.MonthNameOf(instant)
}

// ShortMonthNameOf returns the short month name of instant in the host zone.
func ShortMonthNameOf(instant Instant) string {
	return std.ShortMonthNameOf(instant)
}
