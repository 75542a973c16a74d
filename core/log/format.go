// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages. The tag format
//              prefixes messages with a per-level tag and optional ANSI
//              color; JSON and text formats serve structured pipelines and
//              plain files. Color support is auto-detected from the
//              environment and the terminal.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with tag, text, and JSON formats

package log

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	slerror "github.com/msto63/scopelog/core/error"
	"github.com/msto63/scopelog/utils/stringx"
)

// ANSI color codes used by the tag formatter and Level.Color
const (
	ansiReset  = "\033[0m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[93m"
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiGray   = "\033[90m"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatTag outputs tagged human-readable messages (default)
	FormatTag Format = iota

	// FormatText outputs timestamped text logs
	FormatText

	// FormatJSON outputs structured JSON logs
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTag:
		return "tag"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch stringx.Normalize(format) {
	case "tag":
		return FormatTag, nil
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatTag, slerror.Newf("unknown log format: %q", format).
			WithCode(slerror.CodeInvalidFormat).
			WithOperation("log.ParseFormat")
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTagFormatter()
	}
}

// DetermineColorEnabled returns true if colored output should be enabled.
// NO_COLOR disables color unconditionally, FORCE_COLOR enables it, and
// otherwise color is used when stdout is a terminal.
func DetermineColorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	switch stringx.Normalize(os.Getenv("FORCE_COLOR")) {
	case "1", "true", "yes":
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// tagStyle pairs the tag text for a level with its color code
type tagStyle struct {
	color string
	tag   string
}

// tagStyles maps levels to their message prefix. Info, detail, and minimal
// messages stay untagged, they are normal program output.
var tagStyles = map[Level]tagStyle{
	LevelTest:     {ansiGray, "[TEST]"},
	LevelTrace:    {ansiGray, "[TRACE]"},
	LevelDebug:    {ansiCyan, "[DEBUG]"},
	LevelWarning:  {"", "⚠️"},
	LevelError:    {"", "❌"},
	LevelCritical: {"", "💥"},
}

// TagFormatter formats entries as tagged single-line messages
type TagFormatter struct {
	// EnableColor applies ANSI color codes to the level tags
	EnableColor bool
}

// NewTagFormatter creates a tag formatter with auto-detected color support
func NewTagFormatter() *TagFormatter {
	return &TagFormatter{EnableColor: DetermineColorEnabled()}
}

// Format formats a log entry as a tagged message line
func (f *TagFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if style, ok := tagStyles[entry.Level]; ok {
		if f.EnableColor && style.color != "" {
			b.WriteString(style.color)
			b.WriteString(style.tag)
			b.WriteString(ansiReset)
		} else {
			b.WriteString(style.tag)
		}
		b.WriteString(" ")
	}

	b.WriteString(entry.Message)

	for _, k := range sortedFieldKeys(entry.Fields) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// TextFormatter formats log entries as timestamped human-readable text
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string

	// FullTimestamp enables full timestamps instead of just time
	FullTimestamp bool

	// DisableTimestamp disables timestamp output
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "15:04:05",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if f.FullTimestamp {
			timestampFormat = time.RFC3339
		}
		parts = append(parts, entry.Timestamp.Format(timestampFormat))
	}

	parts = append(parts, fmt.Sprintf("[%s]", entry.Level.ShortString()))

	if entry.Scope != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Scope))
	}

	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("(cid=%s)", entry.CorrelationID))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range sortedFieldKeys(entry.Fields) {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration=%s", entry.Duration))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Scope != "" {
		data["scope"] = entry.Scope
	}

	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	for k, v := range entry.Fields {
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		// Structured errors contribute their own JSON representation
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if errData, err := marshaler.MarshalJSON(); err == nil {
				var errorObj map[string]interface{}
				if json.Unmarshal(errData, &errorObj) == nil {
					data["error_details"] = errorObj
				}
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1000000
	}

	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d %s", entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}

	if f.PrettyPrint {
		return json.MarshalIndent(data, "", "  ")
	}

	return json.Marshal(data)
}

// sortedFieldKeys returns field keys in deterministic order
func sortedFieldKeys(fields Fields) []string {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
