// File: pattern.go
// Title: Date Pattern Rendering
// Description: Compiles and renders letter-based date patterns of the
//              "dd MMM yyyy HH:mm:ss:SSS" family. A run of the same letter is
//              one field and its length selects padding or text width; text
//              in single quotes is literal and '' is a quote.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// Supported pattern letters:
//
//	G  era (AD/BC)
//	y  year; yy is the two-digit year
//	Y  ISO week-numbering year
//	M  month; MMM is Jan, MMMM is January (L is the same)
//	d  day of month
//	D  day of year
//	E  weekday; EEEE is Monday, shorter runs give Mon
//	u  weekday number, Monday = 1
//	F  occurrence of the weekday within the month
//	w  ISO week of year
//	W  week of month, weeks starting on Sunday
//	a  AM/PM marker
//	H  hour 0-23, k hour 1-24, K hour 0-11, h hour 1-12
//	m  minute
//	s  second
//	S  millisecond
//	z  zone abbreviation
//	Z  offset as -0800
//	X  offset as -08, -0800 or -08:00 by width, Z for UTC
const patternLetters = "GyYMLdDEuFwWaHkKhmsSzZX"

type patternToken struct {
	letter  byte
	count   int
	literal string
}

func compilePattern(pattern string) ([]patternToken, error) {
	var tokens []patternToken
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, patternToken{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		ch := pattern[i]
		switch {
		case ch == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			closed := false
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteByte(pattern[j])
				j++
			}
			if !closed {
				return nil, mdwerror.New("unterminated quote in pattern").
					WithCode(mdwerror.CodeInvalidFormat).
					WithOperation("timex.compilePattern").
					WithDetail("pattern", pattern)
			}
			i = j + 1

		case isASCIILetter(ch):
			if strings.IndexByte(patternLetters, ch) < 0 {
				return nil, mdwerror.Newf("illegal pattern character '%c'", ch).
					WithCode(mdwerror.CodeInvalidFormat).
					WithOperation("timex.compilePattern").
					WithDetail("pattern", pattern)
			}
			j := i
			for j < len(pattern) && pattern[j] == ch {
				j++
			}
			if ch == 'X' && j-i > 3 {
				return nil, mdwerror.New("invalid ISO 8601 zone width").
					WithCode(mdwerror.CodeInvalidFormat).
					WithOperation("timex.compilePattern").
					WithDetail("pattern", pattern)
			}
			flush()
			tokens = append(tokens, patternToken{letter: ch, count: j - i})
			i = j

		default:
			lit.WriteByte(ch)
			i++
		}
	}
	flush()
	return tokens, nil
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func renderPattern(t time.Time, tokens []patternToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.letter == 0 {
			b.WriteString(tok.literal)
			continue
		}
		b.WriteString(renderField(t, tok.letter, tok.count))
	}
	return b.String()
}

func renderField(t time.Time, letter byte, count int) string {
	switch letter {
	case 'G':
		if t.Year() > 0 {
			return "AD"
		}
		return "BC"
	case 'y':
		return renderYear(t.Year(), count)
	case 'Y':
		year, _ := t.ISOWeek()
		return renderYear(year, count)
	case 'M', 'L':
		switch {
		case count >= 4:
			return MonthName(int(t.Month()) - 1)
		case count == 3:
			return ShortMonthName(int(t.Month()) - 1)
		default:
			return pad(int(t.Month()), count)
		}
	case 'd':
		return pad(t.Day(), count)
	case 'D':
		return pad(t.YearDay(), count)
	case 'E':
		name := t.Weekday().String()
		if count >= 4 {
			return name
		}
		return name[:3]
	case 'u':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return pad(wd, count)
	case 'F':
		return pad((t.Day()-1)/7+1, count)
	case 'w':
		_, week := t.ISOWeek()
		return pad(week, count)
	case 'W':
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return pad((t.Day()-1+int(first.Weekday()))/7+1, count)
	case 'a':
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case 'H':
		return pad(t.Hour(), count)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, count)
	case 'K':
		return pad(t.Hour()%12, count)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, count)
	case 'm':
		return pad(t.Minute(), count)
	case 's':
		return pad(t.Second(), count)
	case 'S':
		return pad(t.Nanosecond()/int(time.Millisecond), count)
	case 'z':
		name, _ := t.Zone()
		return name
	case 'Z':
		_, offset := t.Zone()
		return renderOffset(offset, false)
	case 'X':
		_, offset := t.Zone()
		if offset == 0 {
			return "Z"
		}
		switch count {
		case 1:
			return renderOffset(offset, false)[:3]
		case 2:
			return renderOffset(offset, false)
		default:
			return renderOffset(offset, true)
		}
	}
	return ""
}

func renderYear(year, count int) string {
	if count == 2 {
		y := year % 100
		if y < 0 {
			y = -y
		}
		return pad(y, 2)
	}
	return pad(year, count)
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if neg {
		return "-" + s
	}
	return s
}

func renderOffset(seconds int, colon bool) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	if colon {
		return sign + pad(hours, 2) + ":" + pad(minutes, 2)
	}
	return sign + pad(hours, 2) + pad(minutes, 2)
}
