// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for string helpers including blankness checks,
//              normalization, truncation, and scope path splitting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with string helper tests

package stringx

import (
	"reflect"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"word", "info", false},
		{"word with spaces", "  info  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DEBUG", "debug"},
		{"  Warning ", "warning"},
		{"trace", "trace"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first wins", []string{"a", "b"}, "a"},
		{"skips blank", []string{"", "  ", "c"}, "c"},
		{"all blank", []string{"", " "}, ""},
		{"no values", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonBlank(tt.values...); got != tt.want {
				t.Errorf("FirstNonBlank(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestFromBlankDefault(t *testing.T) {
	if got := FromBlankDefault("", "detail"); got != "detail" {
		t.Errorf("FromBlankDefault(blank) = %q, want detail", got)
	}
	if got := FromBlankDefault("info", "detail"); got != "info" {
		t.Errorf("FromBlankDefault(info) = %q, want info", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"exact length", "12345", 5, "...", "12345"},
		{"truncated with ellipsis", "this is a long message", 10, "...", "this is..."},
		{"zero max", "anything", 0, "...", ""},
		{"unicode aware", "ログレベルの設定", 5, "…", "ログレベ…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestSplitScope(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"root", "", nil},
		{"blank", "  ", nil},
		{"single segment", "app", []string{"app"}},
		{"nested", "app.db.pool", []string{"app", "db", "pool"}},
		{"surrounding dots trimmed", ".app.db.", []string{"app", "db"}},
		{"doubled dots collapse", "app..db", []string{"app", "db"}},
		{"only dots", "...", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitScope(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitScope(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTopSegment(t *testing.T) {
	if got := TopSegment("app.db.pool"); got != "app" {
		t.Errorf("TopSegment() = %q, want app", got)
	}
	if got := TopSegment(""); got != "" {
		t.Errorf("TopSegment(root) = %q, want empty", got)
	}
}
