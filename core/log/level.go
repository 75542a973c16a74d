// File: level.go
// Title: Log Level Definitions and Registry
// Description: Defines the ordered severity levels used to filter log
//              output, the parsing of level names, and the runtime registry
//              for custom application-defined levels.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with built-in levels and registry

package log

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	slerror "github.com/msto63/scopelog/core/error"
	"github.com/msto63/scopelog/utils/stringx"
)

// Level represents the severity threshold of a log message or scope.
// Higher values are less verbose. The zero value NotSet means a scope
// inherits its threshold from its parent.
type Level int

const (
	// LevelNotSet marks a scope without an explicit threshold.
	// Such scopes inherit their effective level from an ancestor.
	LevelNotSet Level = 0

	// LevelTest is the most verbose level, used to debug test runs
	LevelTest Level = 2

	// LevelTrace provides very detailed diagnostics, more verbose than debug
	LevelTrace Level = 5

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug Level = 10

	// LevelDetail provides more detailed output than info
	LevelDetail Level = 15

	// LevelInfo represents general informational messages
	LevelInfo Level = 20

	// LevelMinimal provides less detailed output than info
	LevelMinimal Level = 25

	// LevelWarning indicates potentially harmful situations
	LevelWarning Level = 30

	// LevelError represents error conditions that need attention
	LevelError Level = 40

	// LevelCritical represents errors after which the program cannot continue
	LevelCritical Level = 50

	// LevelSilent disables all output, one above the highest real level
	LevelSilent Level = 51
)

// builtinLevels maps the built-in level names to their values, ordered
// from most to least verbose in AllLevels
var builtinLevels = map[string]Level{
	"test":     LevelTest,
	"trace":    LevelTrace,
	"debug":    LevelDebug,
	"detail":   LevelDetail,
	"info":     LevelInfo,
	"minimal":  LevelMinimal,
	"warning":  LevelWarning,
	"error":    LevelError,
	"critical": LevelCritical,
	"silent":   LevelSilent,
}

// builtinAliases are accepted alternate spellings for built-in levels
var builtinAliases = map[string]Level{
	"warn": LevelWarning,
	"err":  LevelError,
	"crit": LevelCritical,
}

// customLevels holds application-registered levels, guarded by levelMu
var (
	levelMu      sync.RWMutex
	customLevels = map[string]Level{}
)

// String returns the symbolic name of the level, or "Level N" for values
// without a registered name
func (l Level) String() string {
	if name, ok := levelNameFor(l); ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(l))
}

// ShortString returns a three-letter tag for the built-in levels
func (l Level) ShortString() string {
	switch l {
	case LevelTest:
		return "TST"
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelDetail:
		return "DTL"
	case LevelInfo:
		return "INF"
	case LevelMinimal:
		return "MIN"
	case LevelWarning:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelCritical:
		return "CRT"
	case LevelSilent:
		return "SIL"
	default:
		return "???"
	}
}

// Color returns the ANSI color code for the log level (for console output)
func (l Level) Color() string {
	switch l {
	case LevelTest, LevelTrace:
		return ansiGray
	case LevelDebug:
		return ansiCyan
	case LevelDetail, LevelInfo, LevelMinimal:
		return ansiGreen
	case LevelWarning:
		return ansiYellow
	case LevelError, LevelCritical:
		return ansiRed
	default:
		return ansiReset
	}
}

// ShouldLog returns true if a message at this level passes the given
// minimum threshold. NotSet messages never log; a Silent threshold blocks
// everything.
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelNotSet {
		return false
	}
	return l >= minLevel
}

// IsEnabled returns true if the level is enabled for the given minimum level
func (l Level) IsEnabled(minLevel Level) bool {
	return l.ShouldLog(minLevel)
}

// AllLevels returns the built-in levels ordered from most to least verbose
func AllLevels() []Level {
	return []Level{
		LevelTest,
		LevelTrace,
		LevelDebug,
		LevelDetail,
		LevelInfo,
		LevelMinimal,
		LevelWarning,
		LevelError,
		LevelCritical,
		LevelSilent,
	}
}

// DefaultLevel returns the built-in fallback threshold
func DefaultLevel() Level {
	return LevelDetail
}

// DefaultLevelName is the name of the built-in fallback threshold
const DefaultLevelName = "detail"

// ParseLevel parses a level name or decimal value into a Level.
// Names are case-insensitive and include built-in names, their aliases,
// and any levels registered via RegisterLevel. Unknown input fails with
// an error carrying CodeInvalidLevel.
func ParseLevel(input string) (Level, error) {
	name := stringx.Normalize(input)
	if stringx.IsBlank(name) {
		return LevelNotSet, slerror.New("log level cannot be empty").
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.ParseLevel")
	}

	if level, ok := builtinLevels[name]; ok {
		return level, nil
	}
	if level, ok := builtinAliases[name]; ok {
		return level, nil
	}

	levelMu.RLock()
	level, ok := customLevels[name]
	levelMu.RUnlock()
	if ok {
		return level, nil
	}

	// Numeric form, e.g. "10" for debug
	if value, err := strconv.Atoi(name); err == nil {
		if value <= 0 {
			return LevelNotSet, slerror.Newf("log level value %d must be positive", value).
				WithCode(slerror.CodeInvalidLevel).
				WithOperation("log.ParseLevel").
				WithDetail("input", input)
		}
		return Level(value), nil
	}

	return LevelNotSet, slerror.Newf("unknown log level: %q", input).
		WithCode(slerror.CodeInvalidLevel).
		WithOperation("log.ParseLevel").
		WithDetail("input", input)
}

// MustParseLevel is like ParseLevel but panics on invalid input.
// Intended for package-level defaults and tests.
func MustParseLevel(input string) Level {
	level, err := ParseLevel(input)
	if err != nil {
		panic(err)
	}
	return level
}

// RegisterLevel registers a custom level name. Values must be positive,
// zero would collide with NotSet inheritance. Re-registering the same name
// with the same value is idempotent; a different value fails with
// CodeLevelConflict.
func RegisterLevel(name string, value Level) error {
	normalized := stringx.Normalize(name)
	if stringx.IsBlank(normalized) {
		return slerror.New("level name cannot be empty").
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.RegisterLevel")
	}
	if value <= 0 {
		return slerror.Newf("level %q has value %d, levels must be positive", name, int(value)).
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.RegisterLevel")
	}

	if existing, ok := builtinLevels[normalized]; ok {
		if existing == value {
			return nil
		}
		return slerror.Newf("level %q is built in with value %d", name, int(existing)).
			WithCode(slerror.CodeLevelConflict).
			WithOperation("log.RegisterLevel").
			WithDetail("requested", int(value))
	}
	if existing, ok := builtinAliases[normalized]; ok {
		if existing == value {
			return nil
		}
		return slerror.Newf("level %q is a built-in alias with value %d", name, int(existing)).
			WithCode(slerror.CodeLevelConflict).
			WithOperation("log.RegisterLevel").
			WithDetail("requested", int(value))
	}

	levelMu.Lock()
	defer levelMu.Unlock()

	if existing, ok := customLevels[normalized]; ok {
		if existing == value {
			return nil
		}
		return slerror.Newf("level %q already registered with value %d", name, int(existing)).
			WithCode(slerror.CodeLevelConflict).
			WithOperation("log.RegisterLevel").
			WithDetail("requested", int(value))
	}

	customLevels[normalized] = value
	return nil
}

// RegisteredLevels returns a copy of the custom level registry
func RegisteredLevels() map[string]Level {
	levelMu.RLock()
	defer levelMu.RUnlock()

	result := make(map[string]Level, len(customLevels))
	for name, value := range customLevels {
		result[name] = value
	}
	return result
}

// LevelName returns the symbolic name for a level value, or "Level N"
// when the value has no registered name
func LevelName(level Level) string {
	return level.String()
}

// LevelNameStrict returns the symbolic name for a level value, failing
// with CodeInvalidLevel when the value has no registered name
func LevelNameStrict(level Level) (string, error) {
	if name, ok := levelNameFor(level); ok {
		return name, nil
	}
	return "", slerror.Newf("unknown log level: %d", int(level)).
		WithCode(slerror.CodeInvalidLevel).
		WithOperation("log.LevelNameStrict")
}

// levelNameFor resolves a value to its canonical name. Built-in names win
// over custom registrations; custom lookups are deterministic by sorting.
func levelNameFor(level Level) (string, bool) {
	switch level {
	case LevelTest:
		return "test", true
	case LevelTrace:
		return "trace", true
	case LevelDebug:
		return "debug", true
	case LevelDetail:
		return "detail", true
	case LevelInfo:
		return "info", true
	case LevelMinimal:
		return "minimal", true
	case LevelWarning:
		return "warning", true
	case LevelError:
		return "error", true
	case LevelCritical:
		return "critical", true
	case LevelSilent:
		return "silent", true
	}

	levelMu.RLock()
	defer levelMu.RUnlock()

	var names []string
	for name, value := range customLevels {
		if value == level {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// resetLevelRegistry clears custom levels, used by tests
func resetLevelRegistry() {
	levelMu.Lock()
	defer levelMu.Unlock()
	customLevels = map[string]Level{}
}
