// File: level.go
// Title: Log Level Definitions
// Description: Log levels for filtering output, with names, short codes and
//              console colors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-15 v0.2.0: Table-driven names, parse errors as extx errors

package log

import (
	"strings"

	mdwerror "github.com/msto63/extx/core/error"
)

// Level is the importance of a log message. Higher is more important.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit entries are written whatever the minimum level is.
	LevelAudit
)

var levelNames = [...]struct {
	name, short, color string
}{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

const colorReset = "\033[0m"

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

// String returns the lower-case level name.
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three-letter code used by text output.
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color returns the ANSI color sequence for console output.
func (l Level) Color() string {
	if !l.valid() {
		return colorReset
	}
	return levelNames[l].color
}

// ShouldLog reports whether an entry at l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel resolves a level name or its short code, ignoring case.
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "warning" {
		return LevelWarn, nil
	}
	for l := range levelNames {
		if key == levelNames[l].name || key == strings.ToLower(levelNames[l].short) {
			return Level(l), nil
		}
	}
	return LevelInfo, parseError("log.ParseLevel", "level", s)
}

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	levels := make([]Level, len(levelNames))
	for i := range levelNames {
		levels[i] = Level(i)
	}
	return levels
}

// DefaultLevel is the minimum level of a new logger.
func DefaultLevel() Level {
	return LevelInfo
}

func parseError(operation, kind, input string) *mdwerror.Error {
	return mdwerror.New("invalid log "+kind+": "+input).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(operation).
		WithDetail(kind, input)
}
