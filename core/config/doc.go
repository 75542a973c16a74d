// File: doc.go
// Title: Configuration Package Documentation
// Description: Package-level documentation for the logging configuration
//              package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial documentation

// Package config loads logging configuration from TOML and YAML files and
// applies it to a scope set.
//
// A configuration file describes the root level, per-scope levels, custom
// level definitions, output format, and registration defaults:
//
//	level = "info"
//	format = "tag"
//	color = "auto"
//
//	[levels]
//	"app.db" = "debug"
//	"app.http" = "warning"
//
//	[custom_levels]
//	notice = 22
//
// Loading and applying:
//
//	cfg, err := config.Load("logging.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Apply(log.Default()); err != nil {
//	    return err
//	}
//
// StartWatching monitors the file through fsnotify and notifies change
// handlers on reload; WatchAndApply re-applies the levels automatically.
// Values can be overridden per deployment through environment variables
// when an EnvPrefix is configured.
package config
