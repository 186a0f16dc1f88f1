// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for directory creation, appends, line reads and listings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Reduced to the log file helpers

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() unexpected error: %v", err)
	}
	if !IsDir(nested) {
		t.Error("EnsureDir() did not create the directory")
	}
	if err := EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir() on existing directory: %v", err)
	}
}

func TestEnsureDirOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := EnsureDir(path)
	if err == nil {
		t.Fatal("EnsureDir() over a regular file should fail")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeIO) {
		t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeIO)
	}
}

func TestAppendAndReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-03-01.inf")

	if err := AppendString(path, "first\n", DefaultFilePerm); err != nil {
		t.Fatalf("AppendString() unexpected error: %v", err)
	}
	if err := AppendString(path, "second\nthird\n", DefaultFilePerm); err != nil {
		t.Fatalf("AppendString() unexpected error: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() unexpected error: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("ReadLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesMissing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeNotFound)
	}
	if Exists(filepath.Join(t.TempDir(), "missing")) {
		t.Error("Exists() should be false for a missing path")
	}
}

func TestScanLines(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "a\n\nb\n", []string{"a", "", "b"}},
		{"line over scanner limit", "head\n" + long + "\ntail\n", []string{"head", long, "tail"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := ScanLines(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ScanLines() unexpected error: %v", err)
			}
			if len(lines) != len(tc.want) {
				t.Fatalf("ScanLines() returned %d lines, want %d", len(lines), len(tc.want))
			}
			for i := range tc.want {
				if lines[i] != tc.want[i] {
					t.Errorf("line %d has length %d, want %d", i, len(lines[i]), len(tc.want[i]))
				}
			}
		})
	}
}

func TestAppendStringIntoDirectory(t *testing.T) {
	err := AppendString(t.TempDir(), "lost\n", DefaultFilePerm)
	if err == nil {
		t.Fatal("AppendString() onto a directory should fail")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeIO) {
		t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeIO)
	}
}

func TestListFilesAndSort(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureDir(filepath.Join(dir, "sub")); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"2024-03-01.inf": "aa",
		"2024-03-01.err": "a",
		"startup.test":   "aaaa",
	}
	base := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	offset := 0
	for _, name := range []string{"2024-03-01.inf", "2024-03-01.err", "startup.test"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			t.Fatal(err)
		}
		mod := base.Add(time.Duration(offset) * time.Minute)
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
		offset++
	}

	list, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles() unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ListFiles() returned %d entries, want 3 (directories excluded)", len(list))
	}
	if list[0].Name != "2024-03-01.err" || list[0].Ext != "err" {
		t.Errorf("first entry = %+v, want 2024-03-01.err", list[0])
	}

	SortFiles(list, SortBySize, Descending)
	if list[0].Name != "startup.test" || list[2].Name != "2024-03-01.err" {
		t.Errorf("size order = %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}

	SortFiles(list, SortByModTime, Descending)
	if list[0].Name != "startup.test" || list[2].Name != "2024-03-01.inf" {
		t.Errorf("mod time order = %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}

	SortFiles(list, SortByName, Ascending)
	if list[0].Name != "2024-03-01.err" {
		t.Errorf("name order starts with %s", list[0].Name)
	}
}
