// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, clones, level filtering,
//              structured error logging and the async worker.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Session IDs, async drain on Close

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// syncBuffer is a bytes.Buffer safe for the async worker
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func decodeLines(t *testing.T, out string) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("name = %v, want test-logger", logger.name)
	}
	if _, ok := logger.formatter.(*TextFormatter); !ok {
		t.Errorf("formatter = %T, want *TextFormatter", logger.formatter)
	}
	if New().GetLevel() != DefaultLevel() {
		t.Error("New() should use DefaultLevel()")
	}
}

func TestLoggerClonesAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	base := New().WithOutput(&buf)
	child := base.WithField("component", "cli").WithSessionID("s-1").WithName("timetext")

	if len(base.contextFields) != 0 {
		t.Error("WithField() must not modify the original logger")
	}
	if base.sessionID != "" || base.name != "" {
		t.Error("WithSessionID()/WithName() must not modify the original logger")
	}

	child.Info("hello", Field("n", 1))
	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["component"] != "cli" || e["session_id"] != "s-1" || e["logger"] != "timetext" || e["n"] != float64(1) {
		t.Errorf("unexpected entry: %v", e)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelWarn)

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	entries := decodeLines(t, buf.String())
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %s", len(entries), buf.String())
	}
	if entries[0]["message"] != "warn" || entries[1]["message"] != "error" {
		t.Errorf("unexpected messages: %v, %v", entries[0]["message"], entries[1]["message"])
	}
	if logger.IsLevelEnabled(LevelInfo) || !logger.IsLevelEnabled(LevelError) {
		t.Error("IsLevelEnabled() disagrees with the configured level")
	}

	logger.SetLevel(LevelDebug)
	if !logger.IsLevelEnabled(LevelDebug) {
		t.Error("SetLevel() should lower the threshold")
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.ErrorWithErr("write failed", errors.New("disk full"))
	logger.WarnWithErr("retrying", errors.New("busy"))

	entries := decodeLines(t, buf.String())
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "error" || entries[0]["error"] != "disk full" {
		t.Errorf("unexpected error entry: %v", entries[0])
	}
	if entries[1]["level"] != "warn" || entries[1]["error"] != "busy" {
		t.Errorf("unexpected warn entry: %v", entries[1])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{"low severity", mdwerror.New("bad pattern").WithCode(mdwerror.CodeInvalidFormat), "info", "INVALID_FORMAT"},
		{"medium severity", mdwerror.New("odd"), "warn", "UNKNOWN"},
		{"high severity", mdwerror.New("io").WithCode(mdwerror.CodeIO).WithDetail("path", "/x"), "error", "IO_ERROR"},
		{"wrapped", fmt.Errorf("outer: %w", mdwerror.New("cfg").WithCode(mdwerror.CodeConfigError)), "error", "CONFIG_ERROR"},
		{"plain", errors.New("plain"), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New().WithOutput(&buf).WithLevel(LevelTrace).LogError(tt.err)

			entries := decodeLines(t, buf.String())
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.wantLevel)
			}
			if entries[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tt.wantCode)
			}
		})
	}

	var buf bytes.Buffer
	New().WithOutput(&buf).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestLoggerWithCaller(t *testing.T) {
	var buf bytes.Buffer
	New().WithOutput(&buf).WithCaller(0).Info("where")

	entries := decodeLines(t, buf.String())
	caller, _ := entries[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestLoggerAsyncDrainsOnClose(t *testing.T) {
	out := &syncBuffer{}
	logger := NewWithConfig(Config{
		Level:           LevelInfo,
		Format:          FormatJSON,
		Output:          out,
		AsyncEnabled:    true,
		AsyncBufferSize: 1000,
	})

	for i := 0; i < 100; i++ {
		logger.Info("queued", Int64("i", int64(i)))
	}
	logger.Close()
	logger.Close()

	if got := len(decodeLines(t, out.String())); got != 100 {
		t.Errorf("got %d entries after Close, want 100", got)
	}

	logger.Info("after close")
	if got := len(decodeLines(t, out.String())); got != 101 {
		t.Errorf("logging after Close should write synchronously, got %d entries", got)
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelDebug)

	timer := logger.StartTimer("format").WithField("pattern", "yyyy")
	time.Sleep(5 * time.Millisecond)
	if !timer.IsRunning() {
		t.Error("timer should be running before Stop")
	}
	if timer.Stop() < 5*time.Millisecond {
		t.Error("Stop() returned less than the sleep")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "format completed" || e["operation"] != "format" || e["pattern"] != "yyyy" || e["duration"] != "0s" {
		t.Errorf("unexpected timer entry: %v", e)
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.StartTimer("load").StopWithError(errors.New("missing"))
	cancelled := logger.StartTimer("skip")
	cancelled.Cancel()
	if cancelled.Stop() != 0 {
		t.Error("Stop() after Cancel() should not log")
	}

	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["message"] != "load failed" || entries[0]["error"] != "missing" || entries[0]["level"] != "error" {
		t.Errorf("unexpected entry: %v", entries[0])
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := GetDefault()
	SetDefault(New().WithOutput(&buf).WithLevel(LevelDebug))
	defer SetDefault(previous)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	if got := len(decodeLines(t, buf.String())); got != 4 {
		t.Errorf("got %d entries from package functions, want 4", got)
	}
}
