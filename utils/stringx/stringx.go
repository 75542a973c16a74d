// File: stringx.go
// Title: String Utility Functions
// Description: Implements string helpers shared by the log and config
//              packages: emptiness checks, defaults, truncation, and
//              case-insensitive matching for level and scope names.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with core string helpers

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	return strings.TrimSpace(s) == ""
}

// IsNotEmpty returns true if the string is not empty
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Normalize trims surrounding whitespace and lowercases the string.
// Level and scope names are compared in this form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EqualsIgnoreCase compares two strings case-insensitively
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// FirstNonBlank returns the first string that is not blank, or ""
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// FromBlankDefault returns the default value if the string is blank
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Truncate shortens a string to maxLen runes, appending the ellipsis when
// truncation happens. The ellipsis counts against maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// SplitScope splits a dot-separated scope path into its segments.
// Blank input yields nil (the root scope has no segments); empty segments
// from leading, trailing, or doubled dots are dropped, so "a..b" and
// "a.b" address the same scope.
func SplitScope(name string) []string {
	if IsBlank(name) {
		return nil
	}

	var segments []string
	for _, segment := range strings.Split(name, ".") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// TopSegment returns the first segment of a dot-separated scope path
func TopSegment(name string) string {
	segments := SplitScope(name)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}
