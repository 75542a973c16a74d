// File: validation.go
// Title: Configuration Validation
// Description: Validates logging configuration values: type checks,
//              required fields, patterns, and level and format name
//              checks against the level registry.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with logging-aware rules

package config

import (
	"fmt"
	"regexp"

	"github.com/msto63/scopelog/core/log"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the field is required
	Type     string      // Expected type: "string", "int", "bool", "[]string", "level", "format"
	Pattern  string      // Regex pattern for string validation
	Default  interface{} // Default applied when the field is absent
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// DefaultRules returns validation rules for the keys Apply recognizes
func DefaultRules() ValidationRules {
	return ValidationRules{
		KeyLevel:        {Type: "level"},
		KeyDefaultLevel: {Type: "level"},
		KeyFormat:       {Type: "format"},
		KeyColor:        {Type: "string", Pattern: `^(auto|always|never)$`},
		KeyEnvVars:      {Type: "[]string"},
		KeyScopeName:    {Type: "string"},
	}
}

// Validate validates the configuration against the provided rules
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true, Errors: make([]string, 0)}

	for key, rule := range rules {
		if err := c.validateField(key, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		if rule.Default != nil {
			c.Set(key, rule.Default)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

// validateType checks a configuration value against an expected type
func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}

	case "int":
		switch v := value.(type) {
		case int, int64:
			// Valid integer types
		case float64:
			// YAML numbers may decode as float64
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got a fraction", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}

	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}

	case "[]string":
		switch value.(type) {
		case []string, []interface{}, string:
			// A single string is accepted as a one-element list
		default:
			return fmt.Errorf("field '%s' must be a string list, got %T", key, value)
		}

	case "level":
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a level name string, got %T", key, value)
		}
		if _, err := log.ParseLevel(name); err != nil {
			return fmt.Errorf("field '%s' has an unknown level name %q", key, name)
		}

	case "format":
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a format name string, got %T", key, value)
		}
		if _, err := log.ParseFormat(name); err != nil {
			return fmt.Errorf("field '%s' has an unknown format name %q", key, name)
		}

	default:
		return fmt.Errorf("field '%s' has an unsupported validation type '%s'", key, expectedType)
	}

	return nil
}

// validatePattern checks a string value against a regex pattern
func validatePattern(key string, value interface{}, pattern string) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires a string, got %T", key, value)
	}

	matched, err := regexp.MatchString(pattern, str)
	if err != nil {
		return fmt.Errorf("field '%s' has an invalid validation pattern: %v", key, err)
	}
	if !matched {
		return fmt.Errorf("field '%s' value %q does not match pattern %s", key, str, pattern)
	}
	return nil
}
