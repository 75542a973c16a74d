// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that emits messages through a
//              scope's effective threshold. Loggers are cheap immutable
//              views: the With* methods clone, so a logger can be shared
//              and specialized without synchronizing callers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with scope-bound loggers

package log

import (
	"runtime"
	"strings"
	"sync"

	"github.com/msto63/scopelog/utils/stringx"
)

// Logger emits log entries filtered by the effective level of its scope
type Logger struct {
	scope   *Scope
	handler Handler

	// Context carried into every entry
	fields        Fields
	correlationID string

	// Options
	enableCaller     bool
	callerSkipFrames int

	mutex sync.RWMutex
}

// New creates a logger bound to the root scope of the default set
func New() *Logger {
	return NewLogger(Root())
}

// NewLogger creates a logger bound to the given scope
func NewLogger(scope *Scope) *Logger {
	return &Logger{
		scope:   scope,
		handler: NewDualStreamHandler(),
		fields:  make(Fields),
	}
}

// GetLogger returns a logger for the named scope of the default set. A
// blank name falls back to the registered scope name, then to the root.
func GetLogger(name string) *Logger {
	if stringx.IsBlank(name) {
		name = RegisteredScopeName()
	}
	return NewLogger(GetScope(name))
}

// Scope returns the scope this logger is bound to
func (l *Logger) Scope() *Scope {
	return l.scope
}

// WithHandler sets the output handler
func (l *Logger) WithHandler(handler Handler) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.handler = handler
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.fields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	for k, v := range fields {
		clone.fields[k] = v
	}
	return clone
}

// WithCorrelationID sets the correlation ID carried by all entries
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// WithNewCorrelationID sets a freshly generated correlation ID
func (l *Logger) WithNewCorrelationID() *Logger {
	return l.WithCorrelationID(NewCorrelationID())
}

// WithCaller enables caller information in log entries
func (l *Logger) WithCaller(skip int) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.enableCaller = true
	clone.callerSkipFrames = skip
	return clone
}

// Test logs a test level message (most verbose)
func (l *Logger) Test(message string, fields ...Fields) {
	l.log(LevelTest, message, nil, fields...)
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Detail logs a detail level message (more detailed than info)
func (l *Logger) Detail(message string, fields ...Fields) {
	l.log(LevelDetail, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Minimal logs a minimal level message (less detailed than info)
func (l *Logger) Minimal(message string, fields ...Fields) {
	l.log(LevelMinimal, message, nil, fields...)
}

// Warning logs a warning level message
func (l *Logger) Warning(message string, fields ...Fields) {
	l.log(LevelWarning, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Critical logs a critical level message
func (l *Logger) Critical(message string, fields ...Fields) {
	l.log(LevelCritical, message, nil, fields...)
}

// ErrorWithErr logs an error level message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarningWithErr logs a warning level message with an error object
func (l *Logger) WarningWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarning, message, err, fields...)
}

// Log logs a message with a dynamically provided level
func (l *Logger) Log(level Level, message string, fields ...Fields) {
	l.log(level, message, nil, fields...)
}

// LogNamed logs a message with a dynamically provided level name. An
// unknown name is reported as an error entry instead of being dropped.
func (l *Logger) LogNamed(levelName string, message string, fields ...Fields) {
	level, err := ParseLevel(levelName)
	if err != nil {
		l.log(LevelError, "unknown log level: "+levelName, err)
		return
	}
	l.log(level, message, nil, fields...)
}

// ErrorIfNotDebug logs an error; the error object with full detail is
// attached only when debug output is enabled for the scope
func (l *Logger) ErrorIfNotDebug(message string, err error, fields ...Fields) {
	if l.IsEnabled(LevelDebug) {
		l.log(LevelError, message, err, fields...)
		return
	}
	l.log(LevelError, message, nil, fields...)
}

// CriticalIfNotDebug logs a critical message; the error object with full
// detail is attached only when debug output is enabled for the scope
func (l *Logger) CriticalIfNotDebug(message string, err error, fields ...Fields) {
	if l.IsEnabled(LevelDebug) {
		l.log(LevelCritical, message, err, fields...)
		return
	}
	l.log(LevelCritical, message, nil, fields...)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsEnabled returns true if the given level passes the scope's effective
// threshold
func (l *Logger) IsEnabled(level Level) bool {
	return l.scope.IsEnabled(level)
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.scope.IsEnabled(level) {
		return
	}

	l.mutex.RLock()

	entry := NewEntry(level, message)
	entry.Scope = l.scope.Name()
	entry.CorrelationID = l.correlationID
	entry.Error = err

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	handler := l.handler
	l.mutex.RUnlock()

	if emitErr := handler.Emit(entry); emitErr != nil {
		SafeLog("scopelog: failed to emit log entry: " + emitErr.Error())
	}
}

// getCaller returns caller information
func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	// Skip frames: getCaller, log, public method, user code
	skip := 3 + l.callerSkipFrames

	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}

	return function, file, line, true
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	clone := &Logger{
		scope:            l.scope,
		handler:          l.handler,
		correlationID:    l.correlationID,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		fields:           make(Fields),
	}

	for k, v := range l.fields {
		clone.fields[k] = v
	}

	return clone
}

// --- Package-level convenience functions using the root logger --------------

var (
	rootLoggerMu sync.RWMutex
	rootLogger   *Logger
)

// GetDefault returns the logger bound to the root scope of the default set
func GetDefault() *Logger {
	rootLoggerMu.RLock()
	logger := rootLogger
	rootLoggerMu.RUnlock()
	if logger != nil {
		return logger
	}

	rootLoggerMu.Lock()
	defer rootLoggerMu.Unlock()
	if rootLogger == nil {
		rootLogger = New()
	}
	return rootLogger
}

// SetDefaultLogger replaces the package-level logger. Passing nil resets
// it, the next GetDefault call rebuilds from the default scope set.
func SetDefaultLogger(logger *Logger) {
	rootLoggerMu.Lock()
	defer rootLoggerMu.Unlock()
	rootLogger = logger
}

// Test logs a test message using the default logger
func Test(message string, fields ...Fields) {
	GetDefault().Test(message, fields...)
}

// Trace logs a trace message using the default logger
func Trace(message string, fields ...Fields) {
	GetDefault().Trace(message, fields...)
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Detail logs a detail message using the default logger
func Detail(message string, fields ...Fields) {
	GetDefault().Detail(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Minimal logs a minimal message using the default logger
func Minimal(message string, fields ...Fields) {
	GetDefault().Minimal(message, fields...)
}

// Warning logs a warning message using the default logger
func Warning(message string, fields ...Fields) {
	GetDefault().Warning(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}

// Critical logs a critical message using the default logger
func Critical(message string, fields ...Fields) {
	GetDefault().Critical(message, fields...)
}
