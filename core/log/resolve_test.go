// File: resolve_test.go
// Title: Level Resolution Tests
// Description: Tests for the level resolution chain and the registration
//              storage that feeds it: explicit values, environment
//              variables, registered defaults, and the built-in fallback.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with resolution chain tests

package log

import (
	"testing"
)

func freshRegistrations(t *testing.T) {
	t.Helper()
	ResetRegistrations()
	t.Cleanup(ResetRegistrations)
}

func TestDetermineLevelNameExplicitWins(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "warning")

	if got := DetermineLevelName("Trace"); got != "trace" {
		t.Errorf("DetermineLevelName(Trace) = %q, want trace", got)
	}
}

func TestDetermineLevelNameFromEnv(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "warning")

	if got := DetermineLevelName(""); got != "warning" {
		t.Errorf("DetermineLevelName() = %q, want warning", got)
	}
}

func TestDetermineLevelNameEnvOrder(t *testing.T) {
	freshRegistrations(t)
	RegisterLevelEnvVars([]string{"MYAPP_LOG_LEVEL", "LOG_LEVEL"})
	t.Setenv("MYAPP_LOG_LEVEL", "trace")
	t.Setenv("LOG_LEVEL", "error")

	if got := DetermineLevelName(""); got != "trace" {
		t.Errorf("DetermineLevelName() = %q, want trace (first env var wins)", got)
	}
}

func TestDetermineLevelNameEnvSkipsEmpty(t *testing.T) {
	freshRegistrations(t)
	RegisterLevelEnvVars([]string{"MYAPP_LOG_LEVEL", "LOG_LEVEL"})
	t.Setenv("MYAPP_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "error")

	if got := DetermineLevelName(""); got != "error" {
		t.Errorf("DetermineLevelName() = %q, want error (empty env var skipped)", got)
	}
}

func TestDetermineLevelNameRegisteredDefault(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "")
	RegisterDefaultLevel("Warning")

	if got := DetermineLevelName(""); got != "warning" {
		t.Errorf("DetermineLevelName() = %q, want warning", got)
	}
}

func TestDetermineLevelNameBuiltInFallback(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "")

	if got := DetermineLevelName(""); got != DefaultLevelName {
		t.Errorf("DetermineLevelName() = %q, want %q", got, DefaultLevelName)
	}
}

func TestDetermineLevel(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "debug")

	if got := DetermineLevel(""); got != LevelDebug {
		t.Errorf("DetermineLevel() = %v, want %v", got, LevelDebug)
	}
}

func TestDetermineLevelInvalidEnvFallsBack(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "chatty")

	// An invalid environment value must not fail, the source is outside
	// the program's control
	if got := DetermineLevel(""); got != DefaultLevel() {
		t.Errorf("DetermineLevel() = %v, want %v", got, DefaultLevel())
	}
}

func TestNewScopeSetResolvesFromEnv(t *testing.T) {
	freshRegistrations(t)
	t.Setenv("LOG_LEVEL", "minimal")

	set := NewScopeSet()
	if got := set.Root().Level(); got != LevelMinimal {
		t.Errorf("root Level() = %v, want %v", got, LevelMinimal)
	}
	if got := set.Root().EffectiveLevel(); got != LevelMinimal {
		t.Errorf("root EffectiveLevel() = %v, want %v", got, LevelMinimal)
	}
}

func TestRegisterLevelEnvVarsReset(t *testing.T) {
	freshRegistrations(t)

	RegisterLevelEnvVars([]string{"MYAPP_LOG_LEVEL"})
	got := RegisteredLevelEnvVars()
	if len(got) != 1 || got[0] != "MYAPP_LOG_LEVEL" {
		t.Errorf("RegisteredLevelEnvVars() = %v, want [MYAPP_LOG_LEVEL]", got)
	}

	RegisterLevelEnvVars(nil)
	got = RegisteredLevelEnvVars()
	if len(got) != 1 || got[0] != "LOG_LEVEL" {
		t.Errorf("RegisteredLevelEnvVars() after reset = %v, want [LOG_LEVEL]", got)
	}
}

func TestRegisterScopeName(t *testing.T) {
	freshRegistrations(t)

	RegisterScopeName("MyApp")
	if got := RegisteredScopeName(); got != "myapp" {
		t.Errorf("RegisteredScopeName() = %q, want myapp", got)
	}
}
