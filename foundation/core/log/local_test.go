// File: local_test.go
// Title: Local File Logger Tests
// Description: Tests for monthly file naming, record layout, caller prefixes,
//              usage records and worker shutdown.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/utils/timex"
)

const wantHeader = "09 Mar 2024 14:07:05:123 --->"

func fixedCalendar() *timex.Calendar {
	return timex.New(
		timex.WithLocation(time.UTC),
		timex.WithClock(timex.FixedClock(entryTime)),
	)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

func TestLocalLoggerMonthFiles(t *testing.T) {
	dir := t.TempDir()
	l := NewLocalLogger(dir, WithCalendar(fixedCalendar()))
	defer l.Close()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindInfo, "2024-03-01.inf"},
		{KindError, "2024-03-01.err"},
		{KindDebug, "2024-03-01.deb"},
	}
	for _, tt := range tests {
		if got := l.MonthFile(tt.kind); got != tt.want {
			t.Errorf("MonthFile(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if l.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", l.Dir(), dir)
	}
	if l.DirErr() != nil {
		t.Errorf("DirErr() = %v", l.DirErr())
	}
}

func TestLocalLoggerWritesRecords(t *testing.T) {
	dir := t.TempDir()
	l := NewLocalLogger(dir, WithCalendar(fixedCalendar()))

	l.LogInfo("started")
	l.LogInfo("second")
	l.LogTest("startup", "ok")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := wantHeader + "\nstarted\n" + wantHeader + "\nsecond\n"
	if got := readFile(t, filepath.Join(dir, "2024-03-01.inf")); got != want {
		t.Errorf("info file = %q, want %q", got, want)
	}
	if got := readFile(t, filepath.Join(dir, "startup.test")); got != wantHeader+"\nok\n" {
		t.Errorf("test file = %q", got)
	}
}

func TestLocalLoggerErrorPrefix(t *testing.T) {
	dir := t.TempDir()
	l := NewLocalLogger(dir, WithCalendar(fixedCalendar()))

	l.LogError("broken")
	l.LogDebug("detail")
	l.LogFullTrace("trace line 1\ntrace line 2")
	l.Close()

	errFile := readFile(t, filepath.Join(dir, "2024-03-01.err"))
	lines := strings.Split(errFile, "\n")
	if lines[0] != wantHeader {
		t.Fatalf("first line = %q, want header", lines[0])
	}
	prefix := "@github.com/msto63/timetext/foundation/core/log::TestLocalLoggerErrorPrefix("
	if !strings.HasPrefix(lines[1], "g") || !strings.Contains(lines[1], prefix) || !strings.HasSuffix(lines[1], "): broken") {
		t.Errorf("error line = %q, want g<id>%s<line>): broken", lines[1], prefix)
	}
	if !strings.Contains(errFile, wantHeader+"\ntrace line 1\ntrace line 2\n") {
		t.Errorf("full trace should be written without a prefix: %q", errFile)
	}

	debFile := readFile(t, filepath.Join(dir, "2024-03-01.deb"))
	if !strings.Contains(debFile, "::TestLocalLoggerErrorPrefix(") || !strings.HasSuffix(debFile, "): detail\n") {
		t.Errorf("debug file = %q", debFile)
	}
}

func TestLocalLoggerUsage(t *testing.T) {
	dir := t.TempDir()
	cal := fixedCalendar()
	l := NewLocalLogger(dir, WithCalendar(cal))

	start := cal.Now() - 90_000
	if l.LogAppUsage(start) != l {
		t.Error("LogAppUsage() should return the logger")
	}
	l.LogUsageOf("editor", cal.Now()-3_661_000)
	l.Close()

	want := wantHeader + "\napp used: 01m:30s\n" + UsageSeparator + "\n" +
		wantHeader + "\neditor used: 1h:01m:01s\n"
	if got := readFile(t, filepath.Join(dir, "2024-03-01.inf")); got != want {
		t.Errorf("usage records = %q\nwant %q", got, want)
	}
}

func TestLocalLoggerFlushAndConcurrency(t *testing.T) {
	dir := t.TempDir()
	l := NewLocalLogger(dir, WithCalendar(fixedCalendar()), WithBuffer(4))
	defer l.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				l.LogInfo("line")
			}
		}()
	}
	wg.Wait()
	l.Flush()

	got := strings.Count(readFile(t, filepath.Join(dir, "2024-03-01.inf")), wantHeader+"\nline\n")
	if got != 200 {
		t.Errorf("got %d complete records after Flush, want 200", got)
	}
}

func TestLocalLoggerAfterClose(t *testing.T) {
	dir := t.TempDir()
	l := NewLocalLogger(dir, WithCalendar(fixedCalendar()))
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	l.LogInfo("late")
	l.Flush()
	if got := readFile(t, filepath.Join(dir, "2024-03-01.inf")); got != wantHeader+"\nlate\n" {
		t.Errorf("record after Close = %q", got)
	}
}

func TestLocalLoggerDirectoryFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	mirror := New().WithOutput(&buf)
	l := NewLocalLogger(filepath.Join(blocker, "logs"), WithCalendar(fixedCalendar()), WithMirror(mirror))

	if l.DirErr() == nil {
		t.Fatal("DirErr() should report the failed directory")
	}
	l.LogInfo("lost")
	err := l.Close()
	if err == nil {
		t.Fatal("Close() should return the last write error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeIO) && !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("write error code = %v", mdwerror.GetCode(err))
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("mirror should receive the failure: %s", buf.String())
	}
}

func TestEnsureDirEmpty(t *testing.T) {
	err := EnsureDir("")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("EnsureDir(\"\") code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
}

func TestLocalLoggerMirror(t *testing.T) {
	var buf bytes.Buffer
	mirror := New().WithOutput(&buf)
	l := NewLocalLogger(t.TempDir(), WithCalendar(fixedCalendar()), WithMirror(mirror))

	l.LogInfo("first line\nsecond line")
	l.Close()

	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("got %d mirrored entries, want 1", len(entries))
	}
	if entries[0]["message"] != "first line" || entries[0]["file"] != "2024-03-01.inf" {
		t.Errorf("mirrored entry = %v", entries[0])
	}
}
