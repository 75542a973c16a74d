// File: apply.go
// Title: Configuration Application
// Description: Pushes a loaded logging configuration into a scope set:
//              root level, per-scope levels, custom level definitions,
//              level environment variables, and output format. The whole
//              configuration is validated into a plan before anything is
//              mutated, so a broken file never changes logging behavior.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with scope set application
// - 2025-03-18 v0.1.1: Validate into a staged plan before mutating

package config

import (
	"sort"

	slerror "github.com/msto63/scopelog/core/error"
	"github.com/msto63/scopelog/core/log"
	"github.com/msto63/scopelog/utils/stringx"
)

// Configuration keys recognized by Apply
const (
	// KeyLevel sets the root scope level
	KeyLevel = "level"

	// KeyLevels is a table of scope name to level name
	KeyLevels = "levels"

	// KeyCustomLevels is a table of custom level name to numeric value
	KeyCustomLevels = "custom_levels"

	// KeyDefaultLevel registers the application default level
	KeyDefaultLevel = "default_level"

	// KeyEnvVars registers the level environment variables
	KeyEnvVars = "env_vars"

	// KeyScopeName registers the application scope name
	KeyScopeName = "scope_name"

	// KeyFormat selects the output format (tag, text, json)
	KeyFormat = "format"

	// KeyColor selects color mode (auto, always, never)
	KeyColor = "color"
)

// namedLevel pairs a name (custom level or scope) with a resolved level
type namedLevel struct {
	name  string
	level log.Level
}

// applyPlan is a fully validated configuration, ready to commit. Building
// the plan touches neither the scope set nor the process registries, so a
// plan that fails to build leaves logging behavior unchanged.
type applyPlan struct {
	customLevels []namedLevel
	defaultLevel string
	envVars      []string
	scopeName    string
	rootLevel    log.Level // NotSet when the file sets no root level
	scopeLevels  []namedLevel
}

// Apply pushes the configuration into the given scope set. The entire
// configuration is validated first; on any invalid entry nothing is
// applied and the set keeps its previous levels.
func (c *Config) Apply(set *log.ScopeSet) error {
	if set == nil {
		return slerror.New("scope set cannot be nil").
			WithCode(slerror.CodeValidationFailed).
			WithOperation("config.Apply")
	}

	plan, err := c.buildPlan()
	if err != nil {
		return err
	}
	return plan.commit(set)
}

// buildPlan validates the configuration into a plan without mutating any
// state. Custom levels are collected first so that level names defined in
// the file resolve for the root and scope entries.
func (c *Config) buildPlan() (*applyPlan, error) {
	plan := &applyPlan{}

	if err := c.planCustomLevels(plan); err != nil {
		return nil, err
	}

	plan.defaultLevel = c.GetString(KeyDefaultLevel)
	plan.envVars = c.GetStringSlice(KeyEnvVars)
	plan.scopeName = c.GetString(KeyScopeName)

	if levelName := c.GetString(KeyLevel); !stringx.IsBlank(levelName) {
		level, err := plan.resolveLevel(levelName)
		if err != nil {
			return nil, slerror.Wrap(err, "invalid root level in config").
				WithCode(slerror.CodeInvalidConfig).
				WithOperation("config.buildPlan").
				WithDetail(KeyLevel, levelName)
		}
		plan.rootLevel = level
	}

	return plan, c.planScopeLevels(plan)
}

// planCustomLevels validates the custom_levels table into the plan,
// checking name and value rules and conflicts with known levels
func (c *Config) planCustomLevels(plan *applyPlan) error {
	custom := c.GetStringMap(KeyCustomLevels)
	if len(custom) == 0 {
		return nil
	}

	// Deterministic order keeps conflict errors stable
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		normalized := stringx.Normalize(name)
		value := log.Level(c.GetInt(KeyCustomLevels + "." + name))

		invalid := func(message string) error {
			return slerror.New(message).
				WithCode(slerror.CodeInvalidConfig).
				WithOperation("config.planCustomLevels").
				WithDetail("name", name).
				WithDetail("value", int(value))
		}

		if stringx.IsBlank(normalized) {
			return invalid("custom level name cannot be empty")
		}
		if value <= 0 {
			return invalid("custom level values must be positive")
		}
		// A name that already resolves must resolve to the same value
		if existing, err := log.ParseLevel(normalized); err == nil && existing != value {
			return invalid("custom level conflicts with an existing level")
		}

		plan.customLevels = append(plan.customLevels, namedLevel{normalized, value})
	}
	return nil
}

// planScopeLevels validates the levels table into the plan
func (c *Config) planScopeLevels(plan *applyPlan) error {
	levels := c.GetStringMap(KeyLevels)
	if len(levels) == 0 {
		return nil
	}

	scopes := make([]string, 0, len(levels))
	for scope := range levels {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	for _, scope := range scopes {
		levelName := levels[scope]
		level, err := plan.resolveLevel(levelName)
		if err != nil {
			return slerror.Wrap(err, "invalid scope level in config").
				WithCode(slerror.CodeInvalidConfig).
				WithOperation("config.planScopeLevels").
				WithDetail("scope", scope).
				WithDetail("level", levelName)
		}
		plan.scopeLevels = append(plan.scopeLevels, namedLevel{scope, level})
	}
	return nil
}

// resolveLevel parses a level name against the registry plus the plan's
// not-yet-registered custom levels
func (p *applyPlan) resolveLevel(name string) (log.Level, error) {
	normalized := stringx.Normalize(name)
	for _, custom := range p.customLevels {
		if custom.name == normalized {
			return custom.level, nil
		}
	}
	return log.ParseLevel(name)
}

// commit applies a validated plan: custom levels and registrations first,
// then the root and scope levels. Scopes are only created here, so a
// failed Apply leaves no trace in the set.
func (p *applyPlan) commit(set *log.ScopeSet) error {
	for _, custom := range p.customLevels {
		if err := log.RegisterLevel(custom.name, custom.level); err != nil {
			return slerror.Wrap(err, "invalid custom level in config").
				WithCode(slerror.CodeInvalidConfig).
				WithOperation("config.Apply").
				WithDetail("name", custom.name).
				WithDetail("value", int(custom.level))
		}
	}

	if !stringx.IsBlank(p.defaultLevel) {
		log.RegisterDefaultLevel(p.defaultLevel)
	}
	if len(p.envVars) > 0 {
		log.RegisterLevelEnvVars(p.envVars)
	}
	if !stringx.IsBlank(p.scopeName) {
		log.RegisterScopeName(p.scopeName)
	}

	if p.rootLevel != log.LevelNotSet {
		if err := set.Root().SetLevel(p.rootLevel); err != nil {
			return err
		}
	}
	for _, scope := range p.scopeLevels {
		if err := set.Scope(scope.name).SetLevel(scope.level); err != nil {
			return err
		}
	}
	return nil
}

// BuildHandler creates an output handler from the format and color keys.
// Unset keys fall back to the tag format with auto-detected color.
func (c *Config) BuildHandler() (*log.DualStreamHandler, error) {
	handler := log.NewDualStreamHandler()

	formatName := c.GetString(KeyFormat)
	if stringx.IsBlank(formatName) {
		return handler, nil
	}

	format, err := log.ParseFormat(formatName)
	if err != nil {
		return nil, slerror.Wrap(err, "invalid output format in config").
			WithCode(slerror.CodeInvalidConfig).
			WithOperation("config.BuildHandler").
			WithDetail(KeyFormat, formatName)
	}

	if format == log.FormatTag {
		return handler.WithFormatter(&log.TagFormatter{EnableColor: c.colorEnabled()}), nil
	}
	return handler.WithFormatter(log.GetFormatter(format)), nil
}

// colorEnabled resolves the color key to a concrete color decision
func (c *Config) colorEnabled() bool {
	switch stringx.Normalize(c.GetString(KeyColor)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return log.DetermineColorEnabled()
	}
}
