// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with formatter tests
// - 2026-10-19 v0.2.0: Sorted fields, timex timestamps, session IDs

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/utils/timex"
)

var entryTime = time.Date(2024, time.March, 9, 14, 7, 5, 123_000_000, time.UTC)

func sampleEntry() *Entry {
	entry := NewEntry(LevelInfo, "test message")
	entry.Timestamp = entryTime
	entry.Logger = "timetext"
	entry.SessionID = "sess-1"
	entry.Fields = Fields{"key": "value", "count": 42}
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{" logfmt ", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !tt.wantErr && got.String() != strings.ToLower(strings.TrimSpace(tt.input)) {
			t.Errorf("String() = %q, want %q", got.String(), tt.input)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := sampleEntry()
	entry.Error = errors.New("disk full")
	entry.Duration = 1500 * time.Millisecond

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]interface{}{
		"level":       "info",
		"message":     "test message",
		"logger":      "timetext",
		"session_id":  "sess-1",
		"key":         "value",
		"count":       float64(42),
		"error":       "disk full",
		"duration_ms": float64(1500),
	}
	for key, expected := range want {
		if result[key] != expected {
			t.Errorf("field %s = %v, want %v", key, result[key], expected)
		}
	}
}

func TestJSONFormatterStructuredError(t *testing.T) {
	entry := sampleEntry()
	entry.Error = mdwerror.New("bad pattern").WithCode(mdwerror.CodeInvalidFormat)

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	details, ok := result["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing in %s", data)
	}
	if details["code"] != "INVALID_FORMAT" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{Pattern: "HH:mm:ss", Calendar: timex.New(timex.WithLocation(time.UTC))}
	entry := sampleEntry()
	entry.Duration = 61 * time.Second

	data, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "14:07:05 [INF] {timetext} (session=sess-1) test message [count=42 key=value] duration=01m:01s\n"
	if string(data) != want {
		t.Errorf("Format() = %q\nwant       %q", data, want)
	}
}

func TestTextFormatterTimestampModes(t *testing.T) {
	entry := NewEntry(LevelWarn, "careful")
	entry.Timestamp = entryTime

	full := &TextFormatter{FullTimestamp: true, Calendar: timex.New(timex.WithLocation(time.UTC))}
	data, _ := full.Format(entry)
	if !strings.HasPrefix(string(data), "09 Mar 2024 14:07:05:123 [WRN]") {
		t.Errorf("full timestamp output = %q", data)
	}

	bare := &TextFormatter{DisableTimestamp: true}
	data, _ = bare.Format(entry)
	if string(data) != "[WRN] careful\n" {
		t.Errorf("disabled timestamp output = %q", data)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	entry := NewEntry(LevelError, "boom")

	data, _ := f.Format(entry)
	if string(data) != "\033[31m[ERR] boom\033[0m\n" {
		t.Errorf("colored output = %q", data)
	}

	f.DisableColors = true
	data, _ = f.Format(entry)
	if string(data) != "[ERR] boom\n" {
		t.Errorf("plain output = %q", data)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := sampleEntry()
	entry.Fields["cause"] = errors.New("io")

	data, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "timestamp=2024-03-09T14:07:05Z level=info message=\"test message\" logger=timetext session_id=sess-1 cause=\"io\" count=42 key=\"value\"\n"
	if string(data) != want {
		t.Errorf("Format() = %q\nwant       %q", data, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		check  func(Formatter) bool
	}{
		{FormatJSON, func(f Formatter) bool { _, ok := f.(*JSONFormatter); return ok }},
		{FormatText, func(f Formatter) bool { _, ok := f.(*TextFormatter); return ok }},
		{FormatConsole, func(f Formatter) bool { _, ok := f.(*ConsoleFormatter); return ok }},
		{FormatLogfmt, func(f Formatter) bool { _, ok := f.(*LogfmtFormatter); return ok }},
		{Format(99), func(f Formatter) bool { _, ok := f.(*JSONFormatter); return ok }},
	}
	for _, tt := range tests {
		if !tt.check(GetFormatter(tt.format)) {
			t.Errorf("GetFormatter(%v) returned the wrong type", tt.format)
		}
	}
}
