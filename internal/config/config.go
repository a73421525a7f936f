// Package config loads the settings of the sqlscan command from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/KimNorgaard/go-sqlscan/internal/logging"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched in order when no explicit file is given.
var DefaultPaths = []string{
	"sqlscan.yaml",
	".sqlscan.yaml",
	".config/sqlscan.yaml",
}

// Environment variables that override file settings.
const (
	EnvFormat   = "SQLSCAN_FORMAT"
	EnvLogLevel = "SQLSCAN_LOG_LEVEL"
)

// Config holds the command settings.
type Config struct {
	Format      string    `yaml:"format"`
	SkipInvalid bool      `yaml:"skip_invalid"`
	MaxTokens   int       `yaml:"max_tokens"`
	Workers     int       `yaml:"workers"`
	Color       bool      `yaml:"color"`
	History     string    `yaml:"history"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Default returns the settings used when no file is found.
func Default() *Config {
	return &Config{
		Format:  "text",
		Workers: runtime.GOMAXPROCS(0),
		Color:   true,
		Log: LogConfig{
			Level:  string(logging.LevelWarn),
			Format: "text",
		},
	}
}

// Load builds the configuration with the following precedence:
//  1. the explicit file at path, which must exist, or else the first of
//     DefaultPaths that exists;
//  2. environment variables;
//  3. defaults for anything left unset.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("specified config file not found: %s", path)
		}
	} else {
		path = findDefault()
	}

	cfg := Default()
	if path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}
	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func findDefault() string {
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadFromFile merges the YAML document at path into c. Keys missing from
// the document keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// LoadFromEnv applies SQLSCAN_* overrides.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate checks enum fields and numeric ranges.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must not be negative, got %d", c.MaxTokens)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Logging returns the logger configuration derived from c. It assumes
// Validate has succeeded.
func (c *Config) Logging() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)
	return logging.Config{
		Level:      level,
		OutputPath: c.Log.Output,
		Format:     c.Log.Format,
	}
}
