// File: record.go
// Title: Local Log Records
// Description: Record kinds and the reader that parses local log files back
//              into records for the viewer and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package log

import (
	"io"
	"sort"
	"strings"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/utils/filex"
	"github.com/msto63/timetext/foundation/utils/timex"
)

// Kind is the file a local record belongs to.
type Kind int

const (
	KindInfo Kind = iota
	KindError
	KindDebug
	KindTest
)

var kindExts = [...]string{"inf", "err", "deb", "test"}

// Ext returns the file extension without the dot.
func (k Kind) Ext() string {
	if k < KindInfo || k > KindTest {
		return kindExts[KindInfo]
	}
	return kindExts[k]
}

// Tag returns the upper-case badge text, e.g. "INF".
func (k Kind) Tag() string {
	if k == KindTest {
		return "TST"
	}
	return strings.ToUpper(k.Ext())
}

// Level maps the kind onto the structured logger levels.
func (k Kind) Level() Level {
	switch k {
	case KindError:
		return LevelError
	case KindDebug:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// KindFromExt maps a file extension (with or without the dot) to a Kind.
func KindFromExt(ext string) (Kind, bool) {
	ext = strings.TrimPrefix(ext, ".")
	for i, e := range kindExts {
		if e == ext {
			return Kind(i), true
		}
	}
	return KindInfo, false
}

// Record is one parsed entry of a local log file.
type Record struct {
	Kind    Kind
	File    string
	Time    timex.Instant
	Message string
}

// ParseRecords reads records from r. A record starts at a line of the form
// "<ReadableEpoch> --->" and runs until the next such line. Lines before the
// first header are ignored.
func ParseRecords(r io.Reader, cal *timex.Calendar) ([]Record, error) {
	lines, err := filex.ScanLines(r)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read log records").
			WithCode(mdwerror.CodeIO).
			WithOperation("log.ParseRecords")
	}
	return parseLines(lines, cal), nil
}

func parseLines(lines []string, cal *timex.Calendar) []Record {
	if cal == nil {
		cal = timex.Default()
	}

	var (
		records []Record
		current *Record
		body    []string
	)
	finish := func() {
		if current != nil {
			current.Message = strings.Join(body, "\n")
			records = append(records, *current)
		}
		body = body[:0]
	}

	for _, line := range lines {
		if strings.HasSuffix(line, HeaderSuffix) {
			if at, err := cal.ParseReadableEpoch(strings.TrimSuffix(line, HeaderSuffix)); err == nil {
				finish()
				current = &Record{Time: at}
				continue
			}
		}
		if current != nil {
			body = append(body, line)
		}
	}
	finish()
	return records
}

// ReadRecords parses every local log file in dir, oldest record first.
// Files with other extensions are skipped.
func ReadRecords(dir string, cal *timex.Calendar) ([]Record, error) {
	files, err := filex.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	var all []Record
	for _, f := range files {
		kind, ok := KindFromExt(f.Ext)
		if !ok {
			continue
		}
		records, err := readRecordFile(f.Path, cal)
		if err != nil {
			return nil, err
		}
		for i := range records {
			records[i].Kind = kind
			records[i].File = f.Name
		}
		all = append(all, records...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time < all[j].Time
	})
	return all, nil
}

func readRecordFile(path string, cal *timex.Calendar) ([]Record, error) {
	lines, err := filex.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return parseLines(lines, cal), nil
}
