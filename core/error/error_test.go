// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the Error type including creation, wrapping, code
//              and severity handling, unwrapping, and JSON marshaling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with error tests

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %v, want %v", err.Error(), "something went wrong")
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() is empty, want captured frames")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unknown log level: %q", "verbose")

	want := `unknown log level: "verbose"`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		name         string
		code         Code
		wantSeverity Severity
	}{
		{"invalid level auto-derives low", CodeInvalidLevel, SeverityLow},
		{"config error auto-derives high", CodeConfigError, SeverityHigh},
		{"internal auto-derives critical", CodeInternal, SeverityCritical},
		{"level conflict stays medium", CodeLevelConflict, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test error").WithCode(tt.code)

			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.wantSeverity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.wantSeverity)
			}
		})
	}
}

func TestWithCodeExplicitSeverity(t *testing.T) {
	// Explicit severity must survive a later WithCode only when it differs
	// from the medium default
	err := New("test error").WithSeverity(SeverityCritical).WithCode(CodeInvalidLevel)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("unknown log level").
		WithCode(CodeInvalidLevel).
		WithDetail("input", "verbose").
		WithDetail("known", "trace, debug, info")

	details := err.Details()
	if details["input"] != "verbose" {
		t.Errorf("Details()[input] = %v, want verbose", details["input"])
	}
	if details["known"] != "trace, debug, info" {
		t.Errorf("Details()[known] = %v, want level list", details["known"])
	}
}

func TestWithOperation(t *testing.T) {
	err := New("test error").WithOperation("log.ParseLevel")

	if err.Operation() != "log.ParseLevel" {
		t.Errorf("Operation() = %v, want log.ParseLevel", err.Operation())
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("file not found")
	wrapped := Wrap(base, "failed to load logging config").
		WithCode(CodeMissingConfig)

	if !strings.Contains(wrapped.Error(), "failed to load logging config") {
		t.Errorf("Error() = %v, want wrapping message", wrapped.Error())
	}
	if !strings.Contains(wrapped.Error(), "file not found") {
		t.Errorf("Error() = %v, want cause message", wrapped.Error())
	}

	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false, want true")
	}
}

func TestWrapNil(t *testing.T) {
	if wrapped := Wrap(nil, "context"); wrapped != nil {
		t.Errorf("Wrap(nil) = %v, want nil", wrapped)
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New("unknown log level").WithCode(CodeInvalidLevel).
		WithDetail("input", "chatty")
	wrapped := Wrap(inner, "failed to set root level")

	if wrapped.Code() != CodeInvalidLevel {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeInvalidLevel)
	}
	if wrapped.Details()["input"] != "chatty" {
		t.Errorf("Details()[input] = %v, want chatty", wrapped.Details()["input"])
	}
}

func TestWrapChainTruncation(t *testing.T) {
	err := error(New("root"))
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, "layer")
	}

	slErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}

	if depth := getErrorChainDepth(slErr); depth > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", depth, MaxErrorChainDepth+1)
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("disk failure")
	wrapped := Wrap(Wrap(base, "read failed"), "config load failed")

	if got := wrapped.RootCause(); got != base {
		t.Errorf("RootCause() = %v, want %v", got, base)
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New("e").WithCode(CodeInvalidLevel), CodeInvalidLevel, true},
		{"different code", New("e").WithCode(CodeConfigError), CodeInvalidLevel, false},
		{"standard error", errors.New("e"), CodeInvalidLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New("e").WithCode(CodeWatchError)); got != CodeWatchError {
		t.Errorf("GetCode() = %v, want %v", got, CodeWatchError)
	}
	if got := GetCode(errors.New("e")); got != CodeUnknown {
		t.Errorf("GetCode(std error) = %v, want %v", got, CodeUnknown)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unknown log level").
		WithCode(CodeInvalidLevel).
		WithOperation("log.ParseLevel").
		WithDetail("input", "verbose")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if decoded["message"] != "unknown log level" {
		t.Errorf("message = %v, want unknown log level", decoded["message"])
	}
	if decoded["code"] != "INVALID_LEVEL" {
		t.Errorf("code = %v, want INVALID_LEVEL", decoded["code"])
	}
	if decoded["operation"] != "log.ParseLevel" {
		t.Errorf("operation = %v, want log.ParseLevel", decoded["operation"])
	}
}

func TestStringRepresentation(t *testing.T) {
	err := New("unknown log level").
		WithCode(CodeInvalidLevel).
		WithOperation("log.ParseLevel")

	s := err.String()
	for _, want := range []string{"Error: unknown log level", "Code: INVALID_LEVEL", "Operation: log.ParseLevel"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
