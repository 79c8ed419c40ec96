// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and binds the quickx library settings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-13 v0.2.0: Library settings, dropped watching and discovery

/*
Package config provides configuration loading for quickx applications.

Load a file (the format follows the extension) and read values by dotted key:

	cfg, err := config.LoadWithOptions("quickx.toml", config.LoadOptions{EnvPrefix: "QUICKX"})
	if err != nil {
		return err
	}
	level := cfg.GetString("log.level", "info")

With EnvPrefix "QUICKX" the environment variable QUICKX_LOG_LEVEL overrides
log.level.

Library settings are bound from a Config and resolved into typed values:

	settings, err := config.SettingsFrom(cfg)
	resolved, err := settings.Resolve()
	resolved.Apply() // installs the culture into i18n

A settings file looks like:

	locale     = "de-DE"
	timezone   = "Europe/Berlin"
	week_start = "monday"
	newline    = "lf"

	[log]
	level  = "debug"
	format = "text"
*/
package config
