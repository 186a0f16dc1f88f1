// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration in the readable
//              "1h:01m:01s" form when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Readable durations via timex; checkpoints removed

package log

import (
	"sync"
	"time"

	"github.com/msto63/timetext/foundation/utils/timex"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level

	mu      sync.Mutex
	stopped bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first
// Stop or StopWithError logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	elapsed, ok := t.finish()
	if !ok {
		return 0
	}
	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.timingFields(elapsed))
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	elapsed, ok := t.finish()
	if !ok {
		return 0
	}
	if t.logger != nil {
		t.logger.log(LevelError, t.operation+" failed", err, t.timingFields(elapsed))
	}
	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.finish()
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped
}

func (t *Timer) finish() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return 0, false
	}
	t.stopped = true
	return t.Elapsed(), true
}

func (t *Timer) timingFields(elapsed time.Duration) Fields {
	return t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration":    timex.ReadableDuration(elapsed.Milliseconds()),
		"duration_ms": elapsed.Milliseconds(),
	})
}
