// Package log provides scope-aware leveled logging for the scopelog library.
//
// Package: log
// Title: scopelog Scoped Logging Framework
// Description: This package implements a logging system built around a tree
//              of named scopes. Every scope carries a severity threshold or
//              inherits the effective one from its nearest configured
//              ancestor; the root scope anchors the tree with an explicit
//              threshold resolved from flags, environment variables, or
//              registered defaults. Messages route to stdout or stderr by
//              level and can be formatted as tagged lines, text, or JSON.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with scopes, levels, and handlers
//
// Features:
// - Ordered severity levels from test (most verbose) to silent, with a
//   runtime registry for custom application levels
// - Named scope tree with effective-level inheritance
// - Root level resolution from explicit values, environment variables,
//   and registered defaults
// - Dual-stream output: informational levels to stdout, diagnostics to stderr
// - Tagged, text, and JSON formatters with ANSI color auto-detection
// - Correlation IDs, performance timers, and emergency logging helpers
//
// Usage:
//   import "github.com/msto63/scopelog/core/log"
//
//   // Configure the root threshold
//   if err := log.SetRootLevelName("debug"); err != nil {
//     // unknown level name
//   }
//
//   // Read back explicit and effective thresholds
//   explicit := log.RootLevel()         // log.LevelDebug
//   effective := log.EffectiveRootLevel() // equals explicit at the root
//
//   // Scoped loggers inherit until pinned
//   db := log.GetLogger("app.db")
//   db.Debug("connection pool sized", log.Int("size", 10))
//   _ = log.GetScope("app.db").SetLevelName("warning")
//
//   // Timers
//   timer := db.StartTimer("schema migration")
//   // ... perform operation
//   timer.Stop()
package log
