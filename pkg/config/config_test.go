package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultDownloadDir, cfg.Settings.DownloadDir)
	assert.Equal(t, DefaultSimultaneous, cfg.Settings.Simultaneous)
	assert.Equal(t, DefaultChunkSize, cfg.Settings.ChunkSize)
	assert.Equal(t, DefaultMaxPages, cfg.Settings.MaxPages)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.False(t, cfg.Settings.Extract)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `settings:
  download_dir: /data/mediafire
  simultaneous: 5
  chunk_size: 4096
  http_timeout: 60000000000
  log_level: debug
  extract: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/mediafire", cfg.Settings.DownloadDir)
	assert.Equal(t, 5, cfg.Settings.Simultaneous)
	assert.Equal(t, 4096, cfg.Settings.ChunkSize)
	assert.Equal(t, time.Minute, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.True(t, cfg.Settings.Extract)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultMaxPages, cfg.Settings.MaxPages)
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: [not a mapping"), 0o644))

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, errors.ErrConfigParse)
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  simultaneous: 0\n"), 0o644))

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, errors.ErrConfigValidation)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{name: "zero simultaneous", mutate: func(c *Config) { c.Settings.Simultaneous = 0 }},
		{name: "zero chunk size", mutate: func(c *Config) { c.Settings.ChunkSize = 0 }},
		{name: "zero max pages", mutate: func(c *Config) { c.Settings.MaxPages = 0 }},
		{name: "negative timeout", mutate: func(c *Config) { c.Settings.HTTPTimeout = -time.Second }},
		{name: "zero timeout allowed", mutate: func(c *Config) { c.Settings.HTTPTimeout = 0 }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errors.ErrConfigValidation)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.DownloadDir = "/srv/downloads"
	cfg.Settings.Simultaneous = 8
	cfg.Settings.HooksDir = "/etc/mfdl/hooks"

	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_EmptyPath(t *testing.T) {
	require.ErrorIs(t, DefaultConfig().Save(""), errors.ErrEmptyConfigPath)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("mfdl", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
