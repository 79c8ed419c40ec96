// File: config.go
// Title: Configuration Loading
// Description: Config holds parsed TOML or YAML data with dotted-key access
//              and environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-13 v0.2.0: Simplified caching, structured errors via core/errors

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
	"github.com/msto63/quickx/foundation/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.RequiredArgument(errors.ModuleConfig, "LoadWithOptions", "filePath")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeMissingConfig
		}
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("LoadWithOptions").
			Code(code).
			Messagef("cannot read config file %s", filePath).
			Cause(err).
			Detail("file_path", filePath).
			Build()
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").WithDetail("file_path", filePath)
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}
	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration without values; only environment
// overrides and defaults passed to the getters apply.
func Empty(envPrefix string) *Config {
	return &Config{data: make(map[string]interface{}), envPrefix: envPrefix}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		return nil, errors.InvalidInput(errors.ModuleConfig, "parseContent", "format", format.String(), "unsupported format")
	}
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("parseContent").
			Code(mdwerror.CodeInvalidConfig).
			Messagef("%s parse error", strings.ToUpper(format.String())).
			Cause(err).
			Detail("format", format.String()).
			Build()
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if len(defaults) == 0 {
		return data
	}
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if value, ok := c.lookup(key); ok {
		return fmt.Sprint(value)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if value, ok := c.lookup(key); ok {
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return i
			}
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if value, ok := c.lookup(key); ok {
		switch v := value.(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a duration value; strings use time.ParseDuration
// syntax and numbers are seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if value, ok := c.lookup(key); ok {
		switch v := value.(type) {
		case string:
			if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
				return d
			}
		case int64:
			return time.Duration(v) * time.Second
		case int:
			return time.Duration(v) * time.Second
		case float64:
			return time.Duration(v * float64(time.Second))
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a list value; environment overrides are comma separated
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if value, ok := c.lookup(key); ok {
		switch v := value.(type) {
		case []interface{}:
			result := make([]string, len(v))
			for i, item := range v {
				result[i] = fmt.Sprint(item)
			}
			return result
		case []string:
			return append([]string(nil), v...)
		case string:
			parts := strings.Split(v, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return parts
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has checks if a configuration key exists in the data or the environment
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// Keys returns all leaf keys in dotted form, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(full, nested)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// FilePath returns the file the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration format
func (c *Config) Format() Format {
	return c.format
}

// lookup resolves key from the environment first, then from the data
func (c *Config) lookup(key string) (interface{}, bool) {
	if c.envPrefix != "" {
		if value, ok := os.LookupEnv(c.envKey(key)); ok {
			return value, true
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	current := c.data
	keys := strings.Split(key, ".")
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	value, ok := current[keys[len(keys)-1]]
	return value, ok && value != nil
}

// envKey maps log.level with prefix QUICKX to QUICKX_LOG_LEVEL
func (c *Config) envKey(key string) string {
	return strings.ToUpper(c.envPrefix) + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
