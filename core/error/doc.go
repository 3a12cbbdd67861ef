// Package error provides structured error handling for the extx utilities.
//
// Package: error
// Title: extx Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces and unique error IDs. It is the
//              foundation for consistent error handling across all extx packages and
//              maps its codes onto HTTP and gRPC status codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-13 v0.2.0: Error IDs and gRPC status mapping
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent API responses
// - Stack trace capture for debugging
// - Unique error IDs kept across wrapping
// - Error severity levels and categorization
// - gRPC status conversion via status.FromError
//
// Usage:
//   import mdwerror "github.com/msto63/extx/core/error"
//
//   // Create a new error with context
//   err := mdwerror.New("catalog file could not be read").
//     WithCode(mdwerror.CodeIOError).
//     WithDetail("path", "enums.toml").
//     WithSeverity(mdwerror.SeverityHigh)
//
//   // Wrap an existing error with context
//   wrapped := mdwerror.Wrap(err, "failed to load enum catalog").
//     WithCode(mdwerror.CodeConfigError)
//
//   // Check error type and code
//   if mdwerror.HasCode(err, mdwerror.CodeIOError) {
//     // Handle I/O errors specifically
//   }
//
//   // Return across a gRPC boundary
//   return nil, mdwerror.ToGRPC(err)
package error
