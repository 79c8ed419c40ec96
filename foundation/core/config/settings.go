// File: settings.go
// Title: Library Settings
// Description: Typed quickx settings bound from a Config, validated and
//              resolved into a culture, location, week start and newline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package config

import (
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/msto63/quickx/foundation/core/errors"
	"github.com/msto63/quickx/foundation/core/i18n"
	"github.com/msto63/quickx/foundation/core/log"
	"github.com/msto63/quickx/foundation/utils/stringx"
	"github.com/msto63/quickx/foundation/utils/timex"
)

// Settings keys
const (
	KeyLocale    = "locale"
	KeyTimezone  = "timezone"
	KeyWeekStart = "week_start"
	KeyNewline   = "newline"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// LogSettings configures the CLI logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Settings holds the library settings as written in a config file.
// An empty Locale keeps the culture taken from the environment.
type Settings struct {
	Locale    string      `toml:"locale" yaml:"locale"`
	Timezone  string      `toml:"timezone" yaml:"timezone"`
	WeekStart string      `toml:"week_start" yaml:"week_start"`
	Newline   string      `toml:"newline" yaml:"newline"`
	Log       LogSettings `toml:"log" yaml:"log"`
}

// Resolved is the typed form of Settings
type Resolved struct {
	Culture   language.Tag
	Location  *time.Location
	WeekStart time.Weekday
	Newline   string
	LogLevel  log.Level
	LogFormat log.Format
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Timezone:  "Local",
		WeekStart: "monday",
		Newline:   "native",
		Log: LogSettings{
			Level:  log.DefaultLevel().String(),
			Format: log.FormatText.String(),
		},
	}
}

// SettingsFrom reads Settings from cfg, falling back to DefaultSettings
// for absent keys. Environment overrides of cfg apply.
func SettingsFrom(cfg *Config) (Settings, error) {
	if cfg == nil {
		return Settings{}, errors.RequiredArgument(errors.ModuleConfig, "SettingsFrom", "cfg")
	}
	def := DefaultSettings()
	s := Settings{
		Locale:    cfg.GetString(KeyLocale, def.Locale),
		Timezone:  cfg.GetString(KeyTimezone, def.Timezone),
		WeekStart: cfg.GetString(KeyWeekStart, def.WeekStart),
		Newline:   cfg.GetString(KeyNewline, def.Newline),
		Log: LogSettings{
			Level:  cfg.GetString(KeyLogLevel, def.Log.Level),
			Format: cfg.GetString(KeyLogFormat, def.Log.Format),
		},
	}
	return s, s.Validate()
}

// Validate checks every setting without changing process state
func (s Settings) Validate() error {
	_, err := s.Resolve()
	return err
}

// Resolve converts the settings into typed values
func (s Settings) Resolve() (Resolved, error) {
	r := Resolved{Culture: i18n.Current()}

	if strings.TrimSpace(s.Locale) != "" {
		tag, err := i18n.ParseLocale(s.Locale)
		if err != nil {
			return Resolved{}, errors.ConfigInvalidValue(KeyLocale, s.Locale, "not a valid locale")
		}
		r.Culture = tag
	}

	tz := s.Timezone
	if tz == "" {
		tz = "Local"
	}
	loc, err := timex.LoadLocation(tz)
	if err != nil {
		return Resolved{}, errors.ConfigInvalidValue(KeyTimezone, s.Timezone, "unknown timezone")
	}
	r.Location = loc

	r.WeekStart = time.Monday
	if s.WeekStart != "" {
		wd, err := timex.ParseWeekday(s.WeekStart)
		if err != nil {
			return Resolved{}, errors.ConfigInvalidValue(KeyWeekStart, s.WeekStart, "not a weekday")
		}
		r.WeekStart = wd
	}

	nl, ok := newlines[strings.ToLower(strings.TrimSpace(s.Newline))]
	if !ok {
		return Resolved{}, errors.ConfigInvalidValue(KeyNewline, s.Newline, "expected lf, crlf, cr or native")
	}
	r.Newline = nl

	r.LogLevel = log.DefaultLevel()
	if s.Log.Level != "" {
		if r.LogLevel, err = log.ParseLevel(s.Log.Level); err != nil {
			return Resolved{}, errors.ConfigInvalidValue(KeyLogLevel, s.Log.Level, "unknown log level")
		}
	}
	r.LogFormat = log.FormatText
	if s.Log.Format != "" {
		if r.LogFormat, err = log.ParseFormat(s.Log.Format); err != nil {
			return Resolved{}, errors.ConfigInvalidValue(KeyLogFormat, s.Log.Format, "unknown log format")
		}
	}
	return r, nil
}

// newlines maps the newline setting to the sequence; "native" resolves to
// the platform line ending
var newlines = map[string]string{
	"":       stringx.DefaultNewline,
	"native": stringx.DefaultNewline,
	"lf":     "\n",
	"crlf":   "\r\n",
	"cr":     "\r",
}

// Apply resolves the settings and installs the culture as i18n's current culture
func (s Settings) Apply() (Resolved, error) {
	r, err := s.Resolve()
	if err != nil {
		return Resolved{}, err
	}
	i18n.SetCurrent(r.Culture)
	return r, nil
}

// NewLogger builds a logger writing to output with the resolved level and format
func (r Resolved) NewLogger(name string, output io.Writer) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  r.LogLevel,
		Format: r.LogFormat,
		Output: output,
		Name:   name,
	})
}
