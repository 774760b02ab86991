// Package config provides configuration management for mfdl. It handles
// loading and validating application settings from YAML, with sensible
// defaults when no config file exists.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Download settings
	DownloadDir  string `yaml:"download_dir,omitempty"`
	Simultaneous int    `yaml:"simultaneous"`
	ChunkSize    int    `yaml:"chunk_size"`
	MaxPages     int    `yaml:"max_pages"`
	Extract      bool   `yaml:"extract"`

	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent,omitempty"`

	// Hook settings
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultSimultaneous is the default concurrency ceiling.
	DefaultSimultaneous = 3

	// DefaultChunkSize is the default transfer chunk size in bytes.
	DefaultChunkSize = 512

	// DefaultMaxPages is the default folder pagination ceiling.
	DefaultMaxPages = 100

	// DefaultDownloadDir is used when no directory is configured.
	DefaultDownloadDir = "downloads"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			DownloadDir:  DefaultDownloadDir,
			Simultaneous: DefaultSimultaneous,
			ChunkSize:    DefaultChunkSize,
			MaxPages:     DefaultMaxPages,
			HTTPTimeout:  DefaultHTTPTimeout,
			LogLevel:     "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults, not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	if c.Settings.Simultaneous < 1 {
		return errors.Wrap(errors.ErrConfigValidation, "simultaneous must be at least 1")
	}
	if c.Settings.ChunkSize < 1 {
		return errors.Wrap(errors.ErrConfigValidation, "chunk_size must be at least 1")
	}
	if c.Settings.MaxPages < 1 {
		return errors.Wrap(errors.ErrConfigValidation, "max_pages must be at least 1")
	}
	if c.Settings.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout cannot be negative")
	}
	return nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config to YAML")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// GetDefaultConfigPath returns the platform config file location,
// e.g. ~/.config/mfdl/config.yaml on Linux.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(configDir, "mfdl", "config.yaml"), nil
}
