// Package timex implements the date and time text helpers of timetext.
//
// Package: timex
// Title: Time Text Utilities
// Description: Readable durations, relative-time phrases, pattern formatting
//              of millisecond instants, midnight and five-minute rounding,
//              day-of-year differences and the SimpleDate value type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with general time operations
// - 2026-10-19 v0.2.0: Reworked around millisecond instants and an injectable
//                      Calendar; readable and relative formatting
//
// Package Overview:
//
// Instants are int64 milliseconds since the Unix epoch. Durations are plain
// millisecond counts. Every function is pure apart from reading the clock,
// and the clock and time zone both come from a Calendar:
//
//	cal := timex.New(
//		timex.WithLocation(time.UTC),
//		timex.WithClock(timex.FixedClock(someTime)),
//	)
//	cal.Midnight(cal.Now())
//
// The package-level functions use Default(), a Calendar on the host zone and
// the system clock.
//
// # Duration Formatting
//
//	timex.ReadableDuration(90_000)    // "01m:30s"
//	timex.ReadableDuration(3_661_000) // "1h:01m:01s"
//	timex.ReadableDuration(0)         // "0s"
//
// # Relative Time
//
//	now := timex.Now()
//	timex.RelativeTime(now, now)                                  // "just now"
//	timex.RelativeTime(now, timex.AddOffset(now, timex.Day, -8))  // "a week ago"
//	timex.RelativeTime(now, timex.AddOffset(now, timex.Day, 3))   // "after 3 days"
//
// # Pattern Formatting
//
// FormatInstant accepts letter patterns such as "dd MMM yyyy HH:mm:ss:SSS".
// A malformed pattern produces "" from FormatInstant and an error with
// CodeInvalidFormat from TryFormatInstant.
//
// # Calendar Arithmetic
//
// DayDifference and SimpleDate.DaysUntil compare day-of-year numbers only, so
// they are wrong across a year boundary. AddOffset works on milliseconds and
// treats a day as exactly 24 hours.
//
// # Thread Safety
//
// A Calendar is immutable after New and safe for concurrent use. The
// package keeps no mutable global state.
package timex
