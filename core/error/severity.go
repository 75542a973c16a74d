// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization when errors are reported or logged. Severity is
//              usually derived from the error code but can be set explicitly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, unknown level names, missing optional fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a config file that fails validation, a conflicting level registration
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable configuration, watcher initialization failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	// Examples: internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical internal errors
	case CodeInternal:
		return SeverityCritical

	// High severity errors
	case CodeConfigError, CodeMissingConfig, CodeWatchError:
		return SeverityHigh

	// Medium severity errors
	case CodeLevelConflict, CodeInvalidConfig, CodeInvalidScope:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeInvalidLevel, CodeInvalidFormat,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
