// File: filex.go
// Title: Core File Utilities
// Description: Directory creation, appends, line reads and listings used by
//              the local logger and the log viewer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Trimmed to log file helpers, errors from core/error;
//                      unbounded line reads, close errors on append

package filex

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

const (
	// DefaultDirPerm is used for directories created by EnsureDir.
	DefaultDirPerm os.FileMode = 0o755
	// DefaultFilePerm is used for files created by AppendString.
	DefaultFilePerm os.FileMode = 0o644
)

// FileInfo represents extended file information
type FileInfo struct {
	Name    string    // File name
	Path    string    // Full file path
	Size    int64     // File size in bytes
	ModTime time.Time // Last modification time
	Ext     string    // File extension without the dot
}

// ===============================
// File Existence
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ===============================
// Directory Operations
// ===============================

// EnsureDir creates path and any missing parents. An existing directory is
// not an error; an existing regular file at path is.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DefaultDirPerm); err != nil {
		return ioError(err, "failed to create directory", "filex.EnsureDir", path)
	}
	return nil
}

// ListFiles returns the regular files in a directory, sorted by name.
func ListFiles(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, ioError(err, "failed to read directory", "filex.ListFiles", path)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != "" {
			ext = ext[1:]
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(path, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Ext:     ext,
		})
	}
	return files, nil
}

// ===============================
// Reading and Writing
// ===============================

// ReadLines reads the file and returns its contents as a slice of lines.
// Lines are not length-limited.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError(err, "failed to open file", "filex.ReadLines", path)
	}
	defer file.Close()

	lines, err := ScanLines(file)
	if err != nil {
		return nil, ioError(err, "error reading lines", "filex.ReadLines", path)
	}
	return lines, nil
}

// ScanLines reads r to the end and splits it at "\n". A trailing "\r" is
// dropped from each line, and a final line without newline is kept.
func ScanLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// AppendString appends content to a file, creating it if necessary. A failed
// close is reported, since it can be the only sign of a lost write.
func AppendString(path, content string, perm os.FileMode) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
	if err != nil {
		return ioError(err, "failed to open file for append", "filex.AppendString", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = ioError(cerr, "failed to close file", "filex.AppendString", path)
		}
	}()

	if _, err := file.WriteString(content); err != nil {
		return ioError(err, "failed to append to file", "filex.AppendString", path)
	}
	return nil
}

// ===============================
// Sorting
// ===============================

// SortBy represents sorting criteria
type SortBy int

const (
	SortByName SortBy = iota
	SortBySize
	SortByModTime
)

// SortOrder represents sorting order
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// SortFiles sorts a slice of FileInfo based on criteria and order
func SortFiles(files []FileInfo, by SortBy, order SortOrder) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if order == Descending {
			a, b = b, a
		}
		switch by {
		case SortBySize:
			return a.Size < b.Size
		case SortByModTime:
			return a.ModTime.Before(b.ModTime)
		default:
			return a.Name < b.Name
		}
	})
}

func ioError(err error, message, operation, path string) *mdwerror.Error {
	code := mdwerror.CodeIO
	if errors.Is(err, fs.ErrNotExist) {
		code = mdwerror.CodeNotFound
	}
	return mdwerror.Wrap(err, message).
		WithCode(code).
		WithOperation(operation).
		WithDetail("path", path)
}
