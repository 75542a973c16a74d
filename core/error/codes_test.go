// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code classification helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with code tests

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeInvalidLevel, "INVALID_LEVEL"},
		{CodeLevelConflict, "LEVEL_CONFLICT"},
		{CodeInvalidConfig, "INVALID_CONFIG"},
		{CodeWatchError, "WATCH_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeInvalidLevel, true},
		{"another known code", CodeValidationFailed, true},
		{"unknown code", Code("SOMETHING_ELSE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeClassification(t *testing.T) {
	if !CodeInvalidLevel.IsLevelCode() {
		t.Error("CodeInvalidLevel.IsLevelCode() = false, want true")
	}
	if CodeInvalidLevel.IsConfigCode() {
		t.Error("CodeInvalidLevel.IsConfigCode() = true, want false")
	}
	if !CodeMissingConfig.IsConfigCode() {
		t.Error("CodeMissingConfig.IsConfigCode() = false, want true")
	}
	if CodeMissingConfig.IsLevelCode() {
		t.Error("CodeMissingConfig.IsLevelCode() = true, want false")
	}
}
