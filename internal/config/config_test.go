package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func validConfig() *Config {
	return &Config{
		OriginURL:              "https://music.example.com",
		CatalogPath:            "/catalog.json",
		ListenAddr:             "127.0.0.1:8080",
		CacheDir:               "/tmp/sannmusic/cache",
		DatabasePath:           "/tmp/sannmusic/library.db",
		ShellManifestPath:      "shell.yaml",
		AudioCacheVersion:      1,
		MaxDownloadSize:        "100 MB",
		GatewayCommandTimeout:  "30s",
		MaxConcurrentDownloads: 2,
		LogLevel:               "info",
	}
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		expectError   bool
	}{
		{
			name: "valid config file",
			configContent: `
origin_url: "https://music.example.com"
listen_addr: "127.0.0.1:8080"
cache_dir: "/tmp/sannmusic/cache"
database_path: "/tmp/sannmusic/library.db"
shell_manifest_path: "shell.yaml"
audio_cache_version: 1
gateway_command_timeout: "30s"
max_concurrent_downloads: 2
log_level: "info"
`,
			expectError: false,
		},
		{
			name:          "malformed yaml",
			configContent: "origin_url: [unbalanced",
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configFilename := filepath.Join(tempDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFilename, []byte(tt.configContent), 0o644))

			cfg, err := LoadConfig(configFilename)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "https://music.example.com", cfg.OriginURL)
			assert.Equal(t, "/tmp/sannmusic/cache", cfg.CacheDir)
			assert.Equal(t, int64(2), cfg.MaxConcurrentDownloads)
		})
	}
}

// TestLoadConfig_MissingFile tests LoadConfig with a nonexistent file.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	assert.Error(t, err)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedError error
	}{
		{
			name:          "valid config",
			mutate:        func(*Config) {},
			expectedError: nil,
		},
		{
			name:          "empty origin URL",
			mutate:        func(c *Config) { c.OriginURL = "" },
			expectedError: ErrEmptyOriginURL,
		},
		{
			name:          "relative origin URL",
			mutate:        func(c *Config) { c.OriginURL = "/api" },
			expectedError: ErrInvalidOriginURL,
		},
		{
			name:          "non-http origin URL",
			mutate:        func(c *Config) { c.OriginURL = "ftp://music.example.com" },
			expectedError: ErrInvalidOriginURL,
		},
		{
			name:          "empty cache dir",
			mutate:        func(c *Config) { c.CacheDir = " " },
			expectedError: ErrEmptyCacheDir,
		},
		{
			name:          "empty database path",
			mutate:        func(c *Config) { c.DatabasePath = "" },
			expectedError: ErrEmptyDatabasePath,
		},
		{
			name:          "zero audio cache version",
			mutate:        func(c *Config) { c.AudioCacheVersion = 0 },
			expectedError: ErrInvalidAudioCacheVersion,
		},
		{
			name:          "unknown log level",
			mutate:        func(c *Config) { c.LogLevel = "loud" },
			expectedError: ErrUnknownLogLevel,
		},
		{
			name:          "zero command timeout",
			mutate:        func(c *Config) { c.GatewayCommandTimeout = "0s" },
			expectedError: ErrInvalidCommandTimeout,
		},
		{
			name:          "zero concurrent downloads",
			mutate:        func(c *Config) { c.MaxConcurrentDownloads = 0 },
			expectedError: ErrInvalidConcurrentDownloads,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfig_DerivedFields tests that derived fields are populated.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.OriginURL = "https://music.example.com/"
	cfg.CatalogPath = ""
	cfg.LogLevel = "debug"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, "https://music.example.com", cfg.OriginURL)
	assert.Equal(t, DefaultCatalogPath, cfg.CatalogPath)
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, int64(100*1000*1000), cfg.ParsedMaxDownloadSize)
	assert.Equal(t, 30*time.Second, cfg.ParsedGatewayCommandTimeout)
}

// TestValidateConfig_InvalidMaxDownloadSize tests unparseable size values.
func TestValidateConfig_InvalidMaxDownloadSize(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.MaxDownloadSize = "lots"

	assert.Error(t, ValidateConfig(cfg))
}
