// File: registry.go
// Title: Level Configuration Registry
// Description: Holds the process-wide registrations that steer level
//              resolution: the environment variables consulted for an
//              initial level, the fallback default level, and the scope
//              name used when loggers are requested without one.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with registration storage

package log

import (
	"sync"

	"github.com/msto63/scopelog/utils/stringx"
)

// defaultLevelEnvVars are consulted when no variables have been registered
var defaultLevelEnvVars = []string{"LOG_LEVEL"}

// registrations stores configurable settings shared by the whole process
type registrations struct {
	mu           sync.RWMutex
	envVars      []string
	defaultLevel string
	scopeName    string
}

var registered registrations

// RegisterLevelEnvVars registers environment variable names to consult for
// the initial level. Variables are checked in order, the first non-empty
// value wins. An empty slice restores the default ("LOG_LEVEL").
func RegisterLevelEnvVars(envVars []string) {
	registered.mu.Lock()
	defer registered.mu.Unlock()

	if len(envVars) == 0 {
		registered.envVars = nil
		return
	}
	registered.envVars = append([]string(nil), envVars...)
	SafeTrace("RegisterLevelEnvVars", envVars)
}

// RegisteredLevelEnvVars returns the variables consulted for the initial
// level, falling back to the default set when none are registered
func RegisteredLevelEnvVars() []string {
	registered.mu.RLock()
	defer registered.mu.RUnlock()

	if len(registered.envVars) == 0 {
		return append([]string(nil), defaultLevelEnvVars...)
	}
	return append([]string(nil), registered.envVars...)
}

// RegisterDefaultLevel registers the level name used when neither an
// explicit value nor an environment variable provides one
func RegisterDefaultLevel(name string) {
	registered.mu.Lock()
	defer registered.mu.Unlock()

	registered.defaultLevel = stringx.Normalize(name)
	SafeTrace("RegisterDefaultLevel", name)
}

// RegisteredDefaultLevel returns the registered default level name, or ""
func RegisteredDefaultLevel() string {
	registered.mu.RLock()
	defer registered.mu.RUnlock()
	return registered.defaultLevel
}

// RegisterScopeName registers the scope name handed out by GetLogger when
// the caller does not name one. Typically the application's top package.
func RegisterScopeName(name string) {
	registered.mu.Lock()
	defer registered.mu.Unlock()

	registered.scopeName = stringx.Normalize(name)
	SafeTrace("RegisterScopeName", name)
}

// RegisteredScopeName returns the registered scope name, or ""
func RegisteredScopeName() string {
	registered.mu.RLock()
	defer registered.mu.RUnlock()
	return registered.scopeName
}

// ResetRegistrations clears all registrations, restoring defaults.
// Primarily useful for tests that exercise the resolution chain.
func ResetRegistrations() {
	registered.mu.Lock()
	defer registered.mu.Unlock()

	registered.envVars = nil
	registered.defaultLevel = ""
	registered.scopeName = ""
}
