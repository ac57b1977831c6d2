package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/constants"
)

const testBaseConfigContent = `
origin_url: "https://music.example.com"
listen_addr: "127.0.0.1:8080"
cache_dir: "/config/cache"
database_path: "/config/library.db"
audio_cache_version: 1
max_download_size: "50 MB"
gateway_command_timeout: "5s"
max_concurrent_downloads: 1
log_level: "info"
`

// newFlaggedTestCommand builds a command carrying the same flags as the
// real commands.
func newFlaggedTestCommand() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}

	testCmd.Flags().StringP("listen", "l", "", "control API address")
	testCmd.Flags().StringP("cache-dir", "d", "", "content cache directory")
	testCmd.Flags().StringP("max-size", "s", "", "cached payload size cap")
	testCmd.Flags().Int64P("concurrency", "j", 0, "concurrent downloads")

	return testCmd
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(
		configPath,
		[]byte(content),
		constants.DefaultFilePermissions,
	) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	return configPath
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
				assert.Equal(t, "/config/cache", cfg.CacheDir)
				assert.Equal(t, "50 MB", cfg.MaxDownloadSize)
				assert.Equal(t, int64(1), cfg.MaxConcurrentDownloads)
			},
		},
		{
			name: "listen flag only - override listen address",
			flags: map[string]string{
				"listen": "127.0.0.1:9090",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
				assert.Equal(t, "/config/cache", cfg.CacheDir)
			},
		},
		{
			name: "cache-dir flag only - override cache directory",
			flags: map[string]string{
				"cache-dir": "/flag/cache",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
				assert.Equal(t, "/flag/cache", cfg.CacheDir)
			},
		},
		{
			name: "max-size flag only - override size cap",
			flags: map[string]string{
				"max-size": "1 GB",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "1 GB", cfg.MaxDownloadSize)
				assert.Equal(t, int64(1_000_000_000), cfg.ParsedMaxDownloadSize)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"listen":      "0.0.0.0:8888",
				"cache-dir":   "/all/flags/cache",
				"max-size":    "100 MB",
				"concurrency": "4",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0:8888", cfg.ListenAddr)
				assert.Equal(t, "/all/flags/cache", cfg.CacheDir)
				assert.Equal(t, "100 MB", cfg.MaxDownloadSize)
				assert.Equal(t, int64(4), cfg.MaxConcurrentDownloads)
			},
		},
		{
			name: "cache-dir and concurrency flags - partial override",
			flags: map[string]string{
				"cache-dir":   "/partial/cache",
				"concurrency": "2",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
				assert.Equal(t, "/partial/cache", cfg.CacheDir)
				assert.Equal(t, int64(2), cfg.MaxConcurrentDownloads)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeTestConfig(t, testBaseConfigContent)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			testCmd := newFlaggedTestCommand()

			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	invalidTests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError string
	}{
		{
			name:          "invalid size cap",
			flagName:      "max-size",
			flagValue:     "not-a-size",
			expectedError: "failed to parse max download size",
		},
		{
			name:          "invalid concurrency - zero",
			flagName:      "concurrency",
			flagValue:     "0",
			expectedError: "max concurrent downloads must be a positive integer",
		},
		{
			name:          "invalid concurrency - negative",
			flagName:      "concurrency",
			flagValue:     "-3",
			expectedError: "max concurrent downloads must be a positive integer",
		},
	}

	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeTestConfig(t, testBaseConfigContent)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			testCmd := newFlaggedTestCommand()

			err = testCmd.Flags().Set(tt.flagName, tt.flagValue)
			require.NoError(t, err)

			// Binding should fail validation.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_UnchangedFlags tests that unchanged flags don't override config values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfig_UnchangedFlags(t *testing.T) {
	configPath := writeTestConfig(t, testBaseConfigContent)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	// Bind flags to config without setting any flags.
	testCmd := newFlaggedTestCommand()
	err = bindFlagsToConfig(testCmd.Flags(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "/config/cache", cfg.CacheDir)
	assert.Equal(t, "50 MB", cfg.MaxDownloadSize)
	assert.Equal(t, int64(1), cfg.MaxConcurrentDownloads)
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		OriginURL:              "https://music.example.com",
		CacheDir:               "/tmp/cache",
		DatabasePath:           "/tmp/library.db",
		AudioCacheVersion:      1,
		GatewayCommandTimeout:  "5s",
		MaxConcurrentDownloads: 1,
		LogLevel:               "info",
	}

	// Calling with empty flag set should just validate the config.
	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
}
