// File: safelog.go
// Title: Emergency and Diagnostic Logging
// Description: Implements last-resort logging helpers that bypass the
//              normal pipeline: SafeLog never fails and writes directly to
//              stderr, SafeTrace emits timestamped diagnostics gated by the
//              SAFE_TRACE environment variable.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with safe logging helpers

package log

import (
	"fmt"
	"os"
	"time"

	"github.com/msto63/scopelog/utils/stringx"
)

// processStart anchors the monotonic timestamps of SafeTrace
var processStart = time.Now()

// SafeLog writes a message straight to stderr and never fails. Used when
// the logging pipeline itself is broken and during crash reporting.
func SafeLog(msg string) {
	defer func() {
		// Never crash while reporting a crash
		_ = recover()
	}()
	fmt.Fprintln(os.Stderr, msg)
}

// SafeTraceEnabled reports whether SAFE_TRACE diagnostics are switched on
func SafeTraceEnabled() bool {
	switch stringx.Normalize(os.Getenv("SAFE_TRACE")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// SafeTrace emits a flush-safe diagnostic line with a monotonic timestamp
// when the SAFE_TRACE environment variable is set. Used to debug the
// library's own initialization and registration order.
func SafeTrace(label string, args ...interface{}) {
	if !SafeTraceEnabled() {
		return
	}

	elapsed := time.Since(processStart).Seconds()
	line := fmt.Sprintf("[SAFE TRACE %.6f] %s", elapsed, label)
	for _, arg := range args {
		line += fmt.Sprintf(" %v", arg)
	}
	SafeLog(line)
}
