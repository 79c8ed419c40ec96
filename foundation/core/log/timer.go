// File: timer.go
// Title: Performance Timer
// Description: Timer measures an operation and reports its duration to a sink
//              when stopped. Stop is idempotent.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-13 v0.2.0: Report through Sink, dropped result and checkpoint variants

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	sink      Sink
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation. The completion
// entry is logged at debug level unless changed with WithLevel.
func NewTimer(sink Sink, operation string) *Timer {
	return &Timer{
		sink:      sink,
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

// Stop stops the timer and logs "<operation> completed"
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError stops the timer and logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["duration"] = elapsed.String()
	if err != nil {
		fields["error"] = err.Error()
		fields["success"] = false
	}

	if t.sink != nil {
		t.sink.Log(level, message, fields)
	}
	return elapsed
}
