// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the scopelog library. These codes enable
//              structured error handling and targeted recovery in callers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the scopelog library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Level handling
	CodeInvalidLevel  Code = "INVALID_LEVEL"
	CodeLevelConflict Code = "LEVEL_CONFLICT"
	CodeInvalidScope  Code = "INVALID_SCOPE"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeWatchError    Code = "WATCH_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidLevel, CodeLevelConflict, CodeInvalidScope, CodeInvalidFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeWatchError,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// IsLevelCode returns true if the code relates to level handling
func (c Code) IsLevelCode() bool {
	switch c {
	case CodeInvalidLevel, CodeLevelConflict:
		return true
	default:
		return false
	}
}

// IsConfigCode returns true if the code relates to configuration handling
func (c Code) IsConfigCode() bool {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeWatchError:
		return true
	default:
		return false
	}
}
