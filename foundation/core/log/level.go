// File: level.go
// Title: Log Level Definitions
// Description: Log levels for filtering output, with the short tags used by
//              the text formatters and the mapping onto local log files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Audit level removed; parse errors use core/error

package log

import (
	"strings"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug is used by --verbose and by LocalLogger.LogDebug mirrors
	LevelDebug

	// LevelInfo is the default
	LevelInfo

	// LevelWarn indicates a recoverable problem
	LevelWarn

	// LevelError represents failed operations
	LevelError

	// LevelFatal terminates the program after logging
	LevelFatal
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}

var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "FTL"}

var levelColors = [...]string{
	"\033[37m", // white
	"\033[36m", // cyan
	"\033[32m", // green
	"\033[33m", // yellow
	"\033[31m", // red
	"\033[35m", // magenta
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the string representation of the log level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns the three-letter tag of the level
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelTags[l]
}

// Color returns the ANSI color code for the log level
func (l Level) Color() string {
	if !l.valid() {
		return "\033[0m"
	}
	return levelColors[l]
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level. Unknown input yields
// LevelInfo and an error with CodeInvalidConfig.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, parseError("level", level)
	}
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}

func parseError(kind, input string) *mdwerror.Error {
	return mdwerror.Newf("invalid %s: %s", kind, input).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("log.Parse").
		WithDetail(kind, input)
}
