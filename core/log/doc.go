// Package log provides structured logging for the extx utilities and tools.
//
// Package: log
// Title: extx Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats and log levels,
//              integrated with the extx error handling system. Utility packages
//              log through the default logger; tools configure it at startup.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-13 v0.2.0: Default logger on stderr, error IDs in LogError
// - 2026-10-15 v0.3.0: Synchronous output, sorted fields, smaller timer
//
// Features:
// - JSON, text, console and logfmt output with fields in key order
// - Leveled output; audit entries are always written
// - Persistent fields and logger names on immutable logger copies
// - LogError maps extx error severity to a level and adds the error ID
// - Timers that log the duration of an operation
//
// Usage:
//   import mdwlog "github.com/msto63/extx/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatConsole).
//     WithField("component", "enumx")
//
//   logger.Debug("enum cache built", mdwlog.Fields{
//     "type":    "main.Permission",
//     "members": 4,
//   })
//   logger.LogError(err)
//
//   // Install it for all packages
//   mdwlog.SetDefault(logger)
//
//   timer := logger.StartTimer("catalog load")
//   // ... load the catalog
//   timer.StopWithError(err)
package log
