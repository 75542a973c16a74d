// File: format_test.go
// Title: Log Format Tests
// Description: Tests for format parsing and the tag, text, and JSON
//              formatters including color handling and field ordering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with formatter tests

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	slerror "github.com/msto63/scopelog/core/error"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"tag", FormatTag, false},
		{"TEXT", FormatText, false},
		{" json ", FormatJSON, false},
		{"xml", FormatTag, true},
		{"", FormatTag, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !slerror.HasCode(err, slerror.CodeInvalidFormat) {
					t.Errorf("error code = %v, want %v", slerror.GetCode(err), slerror.CodeInvalidFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagFormatterTags(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTest, "[TEST] message\n"},
		{LevelTrace, "[TRACE] message\n"},
		{LevelDebug, "[DEBUG] message\n"},
		{LevelDetail, "message\n"},
		{LevelInfo, "message\n"},
		{LevelMinimal, "message\n"},
		{LevelWarning, "⚠️ message\n"},
		{LevelError, "❌ message\n"},
		{LevelCritical, "💥 message\n"},
	}

	formatter := &TagFormatter{EnableColor: false}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got, err := formatter.Format(NewEntry(tt.level, "message"))
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagFormatterColor(t *testing.T) {
	formatter := &TagFormatter{EnableColor: true}

	got, err := formatter.Format(NewEntry(LevelDebug, "message"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := ansiCyan + "[DEBUG]" + ansiReset + " message\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTagFormatterColorlessEmojiTags(t *testing.T) {
	// Emoji tags carry no color code, enabling color must not change them
	formatter := &TagFormatter{EnableColor: true}

	got, err := formatter.Format(NewEntry(LevelWarning, "message"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(got) != "⚠️ message\n" {
		t.Errorf("Format() = %q, want %q", got, "⚠️ message\n")
	}
}

func TestTagFormatterFieldsAndError(t *testing.T) {
	formatter := &TagFormatter{EnableColor: false}

	entry := NewEntry(LevelError, "load failed").
		WithField("path", "/etc/app.toml").
		WithField("attempt", 2).
		WithError(errors.New("permission denied"))

	got, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Field keys are emitted in sorted order
	want := "❌ load failed attempt=2 path=/etc/app.toml error=\"permission denied\"\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "service started").WithScope("app.api")
	got, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] {app.api} service started\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatterTimestamp(t *testing.T) {
	formatter := NewTextFormatter()

	entry := NewEntry(LevelInfo, "hello")
	entry.Timestamp = time.Date(2025, 3, 18, 9, 30, 5, 0, time.UTC)

	got, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(got), "09:30:05 ") {
		t.Errorf("Format() = %q, want 09:30:05 prefix", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelWarning, "disk almost full").
		WithScope("app.storage").
		WithField("free_mb", 120).
		WithCorrelationID("cid-123")
	entry.Duration = 42 * time.Millisecond

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded["level"] != "warning" {
		t.Errorf("level = %v, want warning", decoded["level"])
	}
	if decoded["message"] != "disk almost full" {
		t.Errorf("message = %v, want disk almost full", decoded["message"])
	}
	if decoded["scope"] != "app.storage" {
		t.Errorf("scope = %v, want app.storage", decoded["scope"])
	}
	if decoded["correlation_id"] != "cid-123" {
		t.Errorf("correlation_id = %v, want cid-123", decoded["correlation_id"])
	}
	if decoded["free_mb"] != float64(120) {
		t.Errorf("free_mb = %v, want 120", decoded["free_mb"])
	}
	if decoded["duration_ms"] != float64(42) {
		t.Errorf("duration_ms = %v, want 42", decoded["duration_ms"])
	}
}

func TestJSONFormatterStructuredError(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelError, "cannot apply config").
		WithError(slerror.New("unknown log level").WithCode(slerror.CodeInvalidLevel))

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing or wrong type: %v", decoded["error_details"])
	}
	if details["code"] != "INVALID_LEVEL" {
		t.Errorf("error_details.code = %v, want INVALID_LEVEL", details["code"])
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTag, "*log.TagFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatJSON, "*log.JSONFormatter"},
		{Format(999), "*log.TagFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			formatter := GetFormatter(tt.format)
			if got := typeName(formatter); got != tt.want {
				t.Errorf("GetFormatter(%v) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *TagFormatter:
		return "*log.TagFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *JSONFormatter:
		return "*log.JSONFormatter"
	default:
		return "unknown"
	}
}

func TestDetermineColorEnabled(t *testing.T) {
	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("FORCE_COLOR", "1")
		if DetermineColorEnabled() {
			t.Error("DetermineColorEnabled() = true with NO_COLOR set, want false")
		}
	})

	t.Run("FORCE_COLOR enables", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "yes")
		if !DetermineColorEnabled() {
			t.Error("DetermineColorEnabled() = false with FORCE_COLOR set, want true")
		}
	})
}
