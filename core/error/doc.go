// Package error provides structured error handling for the scopelog library.
//
// Package: error
// Title: scopelog Error Handling
// Description: This package implements a structured error type with error
//              codes, severities, stack traces, and contextual details. It is
//              the error vocabulary shared by the log and config packages,
//              covering invalid level names, level registration conflicts,
//              and configuration failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels derived from codes
//
// Usage:
//   import slerror "github.com/msto63/scopelog/core/error"
//
//   // Create a new error with context
//   err := slerror.New("unknown log level").
//     WithCode(slerror.CodeInvalidLevel).
//     WithDetail("input", "verbose")
//
//   // Wrap an existing error with context
//   wrapped := slerror.Wrap(err, "failed to apply logging config").
//     WithCode(slerror.CodeInvalidConfig)
//
//   // Check error code
//   if slerror.HasCode(err, slerror.CodeInvalidLevel) {
//     // Handle invalid level input specifically
//   }
package error
