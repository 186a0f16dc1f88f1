// File: local.go
// Title: Local File Logger
// Description: LocalLogger appends timestamped records to monthly files in a
//              log directory, one file per kind (.inf, .err, .deb, .test).
//              A single background worker owns the file writes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package log

import (
	"path/filepath"
	"strings"
	"sync"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/utils/filex"
	"github.com/msto63/timetext/foundation/utils/timex"
)

const (
	// HeaderSuffix ends the timestamp line that opens every record.
	HeaderSuffix = " --->"

	// UsageSeparator closes the record written by LogAppUsage.
	UsageSeparator = "-------------------------------------------------"

	// MonthFilePattern names the monthly files after their first day.
	MonthFilePattern = "yyyy-MM-dd"

	defaultLocalBuffer = 256
)

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if dir == "" {
		return mdwerror.New("log directory is empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("log.EnsureDir")
	}
	if err := filex.EnsureDir(dir); err != nil {
		return mdwerror.Wrap(err, "cannot create log directory").
			WithOperation("log.EnsureDir")
	}
	return nil
}

// LocalOption configures a LocalLogger.
type LocalOption func(*LocalLogger)

// WithCalendar sets the calendar used for timestamps and file names.
func WithCalendar(cal *timex.Calendar) LocalOption {
	return func(l *LocalLogger) {
		if cal != nil {
			l.cal = cal
		}
	}
}

// WithMirror copies every record to logger as a structured entry.
func WithMirror(logger *Logger) LocalOption {
	return func(l *LocalLogger) {
		l.mirror = logger
	}
}

// WithBuffer sets how many records may be queued before producers block.
func WithBuffer(size int) LocalOption {
	return func(l *LocalLogger) {
		if size > 0 {
			l.bufferSize = size
		}
	}
}

type localJob struct {
	path string
	text string
	ack  chan struct{}
}

// LocalLogger writes log records into dir. Methods are safe for
// concurrent use; records from one goroutine are written in call order.
type LocalLogger struct {
	dir        string
	dirErr     error
	cal        *timex.Calendar
	mirror     *Logger
	bufferSize int

	jobs chan localJob
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	writeMu  sync.Mutex
	errMu    sync.Mutex
	writeErr error
}

// NewLocalLogger creates the directory if needed and starts the writer.
// The logger is returned even when the directory cannot be created; the
// failure is available from DirErr and write failures from LastWriteErr.
func NewLocalLogger(dir string, opts ...LocalOption) *LocalLogger {
	l := &LocalLogger{
		dir:        dir,
		cal:        timex.Default(),
		bufferSize: defaultLocalBuffer,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.dirErr = EnsureDir(dir)
	if l.dirErr != nil && l.mirror != nil {
		l.mirror.LogError(l.dirErr)
	}

	l.jobs = make(chan localJob, l.bufferSize)
	l.wg.Add(1)
	go l.run()
	return l
}

// Dir returns the log directory.
func (l *LocalLogger) Dir() string {
	return l.dir
}

// DirErr returns the error from creating the log directory, if any.
func (l *LocalLogger) DirErr() error {
	return l.dirErr
}

// LastWriteErr returns the most recent file write error.
func (l *LocalLogger) LastWriteErr() error {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	return l.writeErr
}

// MonthFile returns the name of this month's file for kind.
func (l *LocalLogger) MonthFile(kind Kind) string {
	return l.cal.FormatInstant(l.cal.ThisMonthFirstMidnight(), MonthFilePattern) + "." + kind.Ext()
}

// LogInfo appends msg to this month's .inf file.
func (l *LocalLogger) LogInfo(msg string) {
	l.submit(KindInfo, l.MonthFile(KindInfo), msg)
}

// LogError appends msg to this month's .err file, prefixed with the
// caller's goroutine, package, function and line.
func (l *LocalLogger) LogError(msg string) {
	l.submit(KindError, l.MonthFile(KindError), tracePrefix(0)+msg)
}

// LogFullTrace appends trace to this month's .err file as-is.
func (l *LocalLogger) LogFullTrace(trace string) {
	l.submit(KindError, l.MonthFile(KindError), trace)
}

// LogDebug appends msg to this month's .deb file with the caller prefix.
func (l *LocalLogger) LogDebug(msg string) {
	l.submit(KindDebug, l.MonthFile(KindDebug), tracePrefix(0)+msg)
}

// LogTest appends msg to "<name>.test".
func (l *LocalLogger) LogTest(name, msg string) {
	l.submit(KindTest, name+"."+KindTest.Ext(), msg)
}

// LogAppUsage records the time elapsed since start, followed by a
// separator line.
func (l *LocalLogger) LogAppUsage(start timex.Instant) *LocalLogger {
	elapsed := int64(l.cal.Now() - start)
	l.LogInfo("app used: " + timex.ReadableDuration(elapsed) + "\n" + UsageSeparator)
	return l
}

// LogUsageOf records the time name was in use since start.
func (l *LocalLogger) LogUsageOf(name string, start timex.Instant) *LocalLogger {
	elapsed := int64(l.cal.Now() - start)
	l.LogInfo(name + " used: " + timex.ReadableDuration(elapsed))
	return l
}

// Flush blocks until every record submitted before the call is written.
func (l *LocalLogger) Flush() {
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return
	}
	ack := make(chan struct{})
	l.jobs <- localJob{ack: ack}
	l.mu.RUnlock()
	<-ack
}

// Close writes the queued records and stops the worker. Records logged
// after Close are written synchronously. Close is idempotent.
func (l *LocalLogger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.jobs)
	l.mu.Unlock()

	l.wg.Wait()
	return l.LastWriteErr()
}

func (l *LocalLogger) submit(kind Kind, name, msg string) {
	header := l.cal.CurrentReadableTimeWithMillis() + HeaderSuffix
	job := localJob{
		path: filepath.Join(l.dir, name),
		text: header + "\n" + msg + "\n",
	}

	if l.mirror != nil {
		l.mirror.log(kind.Level(), firstLine(msg), nil, Fields{"file": name})
	}

	l.mu.RLock()
	if !l.closed {
		l.jobs <- job
		l.mu.RUnlock()
		return
	}
	l.mu.RUnlock()
	l.write(job)
}

func (l *LocalLogger) run() {
	defer l.wg.Done()
	for job := range l.jobs {
		if job.ack != nil {
			close(job.ack)
			continue
		}
		l.write(job)
	}
}

func (l *LocalLogger) write(job localJob) {
	l.writeMu.Lock()
	err := filex.AppendString(job.path, job.text, filex.DefaultFilePerm)
	l.writeMu.Unlock()
	if err == nil {
		return
	}

	l.errMu.Lock()
	l.writeErr = err
	l.errMu.Unlock()
	if l.mirror != nil {
		l.mirror.LogError(err)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
