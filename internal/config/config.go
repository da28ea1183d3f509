// Package config provides environment-variable-first configuration loading
// with optional YAML file fallback for tmpmail.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shineum/tmpmail/internal/provider/onesecmail"
	"github.com/shineum/tmpmail/internal/viewer"
)

// Config holds the complete application configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Storage  StorageConfig  `yaml:"storage"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ProviderConfig holds the mail provider API settings.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
}

// StorageConfig holds the location of the session state files.
type StorageConfig struct {
	Dir string `yaml:"dir"`
}

// ViewerConfig holds the default terminal browser.
type ViewerConfig struct {
	Browser string `yaml:"browser"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load resolves the configuration file and loads it. TMPMAIL_CONFIG names
// the file explicitly and must exist; otherwise the default path is used
// only when present.
func Load() (*Config, error) {
	if path := os.Getenv("TMPMAIL_CONFIG"); path != "" {
		return LoadFromFile(path)
	}

	path := DefaultPath()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return LoadFromFile(path)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables with sensible
// defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer,
// then overrides with environment variables. Returns an error if the
// specified file path does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	// Environment variables always override YAML values
	cfg.applyEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/tmpmail/config.yaml, falling back to
// ~/.config. It returns "" when neither can be determined.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tmpmail", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tmpmail", "config.yaml")
}

// Validate checks values a YAML file may have set to something unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Provider.BaseURL == "" {
		errs = append(errs, errors.New("provider.base_url must not be empty"))
	}
	if c.Storage.Dir == "" {
		errs = append(errs, errors.New("storage.dir must not be empty"))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// applyDefaults sets sensible default values for all configuration fields.
func (c *Config) applyDefaults() {
	c.Provider.BaseURL = onesecmail.DefaultBaseURL
	c.Storage.Dir = filepath.Join(os.TempDir(), "tmpmail")
	c.Viewer.Browser = viewer.DefaultBrowser
	c.Logging.Level = "warn"
	c.Logging.Format = "text"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("TMPMAIL_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("TMPMAIL_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("TMPMAIL_BROWSER"); v != "" {
		c.Viewer.Browser = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
}
