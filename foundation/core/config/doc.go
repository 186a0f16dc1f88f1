// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads timetext configuration from TOML or YAML
//              files with environment variable overrides and resolves it into
//              typed Settings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed settings; hot-reloading removed

/*
Package config provides configuration management for timetext.

Key Features:
  - TOML and YAML files, detected by extension
  - Dotted key access ("log.dir") with typed getters and defaults
  - Environment overrides: with prefix "timetext" the key log.dir is read
    from TIMETEXT_LOG_DIR before the file is consulted
  - File discovery across the working directory and the user config dir
  - Rule based validation that reports every failing key
  - Structured errors from the error package

Basic Usage:

	cfg, err := config.Load("timetext.toml")
	if err != nil {
		return err
	}
	dir := cfg.GetString("log.dir", "log")
	refresh := cfg.GetDuration("viewer.refresh", 2*time.Second)

Settings:

LoadSettings combines discovery, validation and defaults:

	settings, _, err := config.LoadSettings("")
	cal := settings.Calendar()
	logger := log.New().WithLevel(settings.LogLevel()).WithFormat(settings.LogFormat())

Example file:

	[time]
	zone = "Europe/Berlin"
	pattern = "dd MMM yyyy HH:mm"

	[log]
	dir = "/var/log/timetext"
	level = "debug"
	format = "text"
	buffer = 512

	[viewer]
	refresh = "5s"
	max_records = 500

Validation:

	rules := config.ValidationRules{
		"log.buffer": {Type: "int", Min: config.Bound(1)},
		"log.level":  {Type: "string", OneOf: []string{"debug", "info"}},
	}
	if err := cfg.Validate(rules).Err(); err != nil {
		return err
	}

Thread Safety:

All Config methods are safe for concurrent use. Set changes the in-memory
data only; files are never written.
*/
package config
