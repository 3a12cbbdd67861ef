// File: entry.go
// Title: Log Entry Structure
// Description: A single log record with its fields, error, duration and
//              optional caller, plus helpers for building field sets.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-15 v0.2.0: Dropped request and user context, caller formatting

package log

import (
	"fmt"
	"time"
)

// Entry is one log record as handed to a Formatter.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
	Duration  time.Duration
	Caller    *CallerInfo
}

// CallerInfo locates the code that emitted an entry.
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

func (c *CallerInfo) String() string {
	return fmt.Sprintf("%s:%d(%s)", c.File, c.Line, c.Function)
}

// Fields are key-value pairs attached to an entry.
type Fields map[string]interface{}

// Field returns a single-entry field set.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err returns a field set holding err under "error".
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration returns a field set holding d under key.
func Duration(key string, d time.Duration) Fields {
	return Fields{key: d}
}

// Merge returns a new set with the entries of f and other. Keys in other
// win.
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
