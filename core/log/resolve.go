// File: resolve.go
// Title: Level Resolution Chain
// Description: Resolves the initial level for a root scope from the
//              available sources: an explicit value (typically a CLI flag),
//              the registered environment variables, the registered default,
//              and finally the built-in default.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with resolution chain

package log

import (
	"os"

	"github.com/msto63/scopelog/utils/stringx"
)

// DetermineLevelName resolves a level name from the first available source:
// the explicit value, the registered environment variables in order, the
// registered default, then the built-in default. The result is normalized
// but not validated; pass it to ParseLevel for validation.
func DetermineLevelName(explicit string) string {
	if stringx.IsNotBlank(explicit) {
		return stringx.Normalize(explicit)
	}

	for _, envVar := range RegisteredLevelEnvVars() {
		if value := os.Getenv(envVar); stringx.IsNotBlank(value) {
			return stringx.Normalize(value)
		}
	}

	if name := RegisteredDefaultLevel(); stringx.IsNotBlank(name) {
		return name
	}

	return DefaultLevelName
}

// DetermineLevel resolves the initial level through DetermineLevelName.
// An unparseable name from the environment falls back to the built-in
// default rather than failing, the source is out of the caller's control.
func DetermineLevel(explicit string) Level {
	name := DetermineLevelName(explicit)
	level, err := ParseLevel(name)
	if err != nil {
		SafeLog("scopelog: ignoring invalid log level " + name)
		return DefaultLevel()
	}
	return level
}
