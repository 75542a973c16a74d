// File: handler.go
// Title: Output Handlers
// Description: Implements the handler that routes formatted entries to the
//              process streams: informational levels go to stdout as normal
//              program output, diagnostic and error levels go to stderr.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with dual-stream routing

package log

import (
	"io"
	"os"
	"sync"
)

// Handler writes formatted log entries to their destination
type Handler interface {
	Emit(entry *Entry) error
}

// DualStreamHandler routes entries by level: Detail, Info, and Minimal go
// to stdout; Test, Trace, Debug and Warning, Error, Critical go to stderr.
// With no explicit streams configured, the current os.Stdout and os.Stderr
// are used at emit time, so redirecting them takes effect immediately.
type DualStreamHandler struct {
	mu        sync.Mutex
	formatter Formatter
	stdout    io.Writer
	stderr    io.Writer
}

// NewDualStreamHandler creates a handler with the tag formatter and the
// process streams
func NewDualStreamHandler() *DualStreamHandler {
	return &DualStreamHandler{formatter: NewTagFormatter()}
}

// WithFormatter sets the formatter used for all entries
func (h *DualStreamHandler) WithFormatter(formatter Formatter) *DualStreamHandler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.formatter = formatter
	return h
}

// WithStreams pins the output streams, mainly for tests. Passing nil for a
// stream restores the live process stream.
func (h *DualStreamHandler) WithStreams(stdout, stderr io.Writer) *DualStreamHandler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stdout = stdout
	h.stderr = stderr
	return h
}

// Emit formats the entry and writes it to the stream for its level
func (h *DualStreamHandler) Emit(entry *Entry) error {
	h.mu.Lock()
	formatter := h.formatter
	target := h.target(entry.Level)
	h.mu.Unlock()

	formatted, err := formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = target.Write(formatted)
	return err
}

// target selects the stream for a level. Callers hold h.mu.
func (h *DualStreamHandler) target(level Level) io.Writer {
	stdout, stderr := h.stdout, h.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	switch {
	case level >= LevelWarning:
		// Warnings and errors are diagnostics
		return stderr
	case level <= LevelDebug:
		// Test, trace, and debug output must not pollute program output
		return stderr
	default:
		// Detail, info, minimal: normal program output
		return stdout
	}
}
