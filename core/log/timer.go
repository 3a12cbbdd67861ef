// File: timer.go
// Title: Operation Timing
// Description: Timer measures an operation and logs its duration when it
//              stops, together with the fields collected along the way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with checkpoints and results
// - 2026-10-15 v0.2.0: Reduced to start, fields and stop

package log

import (
	"sync"
	"time"
)

// Timer logs "<operation> completed" or "<operation> failed" with the
// elapsed time. Only the first Stop or StopWithError logs.
type Timer struct {
	logger    *Logger
	operation string
	level     Level
	start     time.Time

	mu      sync.Mutex
	fields  Fields
	stopped bool
}

// NewTimer starts timing operation. Completion is logged at debug level.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		level:     LevelDebug,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithLevel sets the level used for successful completion.
func (t *Timer) WithLevel(level Level) *Timer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = level
	return t
}

// WithField adds a field to the completion entry.
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fields[key] = value
	return t
}

// WithFields adds fields to the completion entry.
func (t *Timer) WithFields(fields Fields) *Timer {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs completion and returns the elapsed time.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs completion, or failure at error level when err is
// not nil, and returns the elapsed time.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	elapsed := t.Elapsed()

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return elapsed
	}
	t.stopped = true
	fields := t.fields.Merge(nil)
	level := t.level
	t.mu.Unlock()

	if err != nil {
		t.logger.log(LevelError, t.operation+" failed", err, elapsed, []Fields{fields})
		return elapsed
	}
	t.logger.log(level, t.operation+" completed", nil, elapsed, []Fields{fields})
	return elapsed
}
