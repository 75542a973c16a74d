// File: safelog_test.go
// Title: Emergency Logging Tests
// Description: Tests for the SAFE_TRACE gate and the crash-safe logging
//              helper.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with safe logging tests

package log

import "testing"

func TestSafeTraceEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run("SAFE_TRACE="+tt.value, func(t *testing.T) {
			t.Setenv("SAFE_TRACE", tt.value)
			if got := SafeTraceEnabled(); got != tt.want {
				t.Errorf("SafeTraceEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSafeLogNeverPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("SafeLog panicked: %v", r)
		}
	}()
	SafeLog("diagnostic message")
	SafeLog("")
}
