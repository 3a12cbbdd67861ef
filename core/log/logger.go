// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled, structured output with
//              persistent fields, optional caller information and a process
//              wide default logger used by the utility packages.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-13 v0.2.0: Default logger writes to stderr and is swapped atomically,
//                       error IDs in LogError
// - 2026-10-15 v0.3.0: Synchronous writes only, request context removed

package log

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	mdwerror "github.com/msto63/extx/core/error"
)

// Logger writes structured entries. The With methods return modified
// copies, so a logger can be shared freely.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields

	enableCaller bool
	callerSkip   int

	// guards output; copies share it
	writeMu *sync.Mutex
}

// Config sets up a logger in one step.
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer // default: os.Stderr
	Name         string
	EnableCaller bool
	CallerSkip   int
}

// New creates a JSON logger at DefaultLevel writing to stderr, so command
// output on stdout stays clean.
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger from config.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:        config.Level,
		formatter:    GetFormatter(config.Format),
		output:       output,
		name:         config.Name,
		fields:       make(Fields),
		enableCaller: config.EnableCaller,
		callerSkip:   config.CallerSkip,
		writeMu:      &sync.Mutex{},
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = l.fields.Merge(nil)
	return &c
}

// WithLevel returns a copy with a new minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy that renders in format.
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a copy that renders with f.
func (l *Logger) WithFormatter(f Formatter) *Logger {
	c := l.clone()
	c.formatter = f
	return c
}

// WithOutput returns a copy writing to w.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	c.writeMu = &sync.Mutex{}
	return c
}

// WithName returns a copy whose entries carry name.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key to every entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy that adds fields to every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.fields = c.fields.Merge(fields)
	return c
}

// WithCaller returns a copy that records the calling function. skip drops
// additional frames for wrappers.
func (l *Logger) WithCaller(skip int) *Logger {
	c := l.clone()
	c.enableCaller = true
	c.callerSkip = skip
	return c
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, 0, fields) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, 0, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, 0, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, 0, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, 0, fields) }

// Audit entries are written at any minimum level.
func (l *Logger) Audit(message string, fields ...Fields) { l.log(LevelAudit, message, nil, 0, fields) }

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, 0, fields)
	os.Exit(1)
}

// ErrorWithErr logs message at error level with err attached.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, 0, fields)
}

// WarnWithErr logs message at warn level with err attached.
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, 0, fields)
}

// LogError logs err. extx errors pick the level from their severity and
// add their ID, code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err, 0, nil)
		return
	}

	fields := Fields{
		"error_id":       mdwErr.ID(),
		"error_code":     mdwErr.Code(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, 0, []Fields{fields})
}

// StartTimer starts a Timer that reports through l.
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether entries at level would be written.
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the minimum level.
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, d time.Duration, fields []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	entry.Duration = d
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}
	if l.enableCaller {
		entry.Caller = callerInfo(3 + l.callerSkip)
	}

	out, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(out)
}

// callerInfo is called from log, which is called from an exported method.
func callerInfo(skip int) *CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}
	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndex(function, "."); i >= 0 {
			function = function[i+1:]
		}
	}
	return &CallerInfo{Function: function, File: filepath.Base(file), Line: line}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the process-wide logger.
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// Debug logs through the default logger.
func Debug(message string, fields ...Fields) { GetDefault().log(LevelDebug, message, nil, 0, fields) }

// Info logs through the default logger.
func Info(message string, fields ...Fields) { GetDefault().log(LevelInfo, message, nil, 0, fields) }

// Warn logs through the default logger.
func Warn(message string, fields ...Fields) { GetDefault().log(LevelWarn, message, nil, 0, fields) }

// Error logs through the default logger.
func Error(message string, fields ...Fields) { GetDefault().log(LevelError, message, nil, 0, fields) }
