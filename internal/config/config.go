package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// OriginURL is the base URL of the remote origin that serves the search API,
	// the downloadable catalog, and the application shell assets.
	OriginURL string `mapstructure:"origin_url"`
	// CatalogPath is the path of the downloadable-track catalog on the origin.
	CatalogPath string `mapstructure:"catalog_path"`
	// ListenAddr is the address the local control server binds to.
	ListenAddr string `mapstructure:"listen_addr"`
	// CacheDir is the root directory of the content cache partitions.
	CacheDir string `mapstructure:"cache_dir"`
	// DatabasePath is the SQLite database file holding playlists, likes, and download records.
	DatabasePath string `mapstructure:"database_path"`
	// ShellManifestPath is the path to the app-shell manifest file.
	ShellManifestPath string `mapstructure:"shell_manifest_path"`
	// AudioCacheVersion is the version of the audio cache partition.
	AudioCacheVersion int64 `mapstructure:"audio_cache_version"`
	// MaxDownloadSize caps the size of a single cached audio payload (e.g. "100 MB").
	// Empty or "0" disables the cap.
	MaxDownloadSize string `mapstructure:"max_download_size"`
	// GatewayCommandTimeout bounds how long a cache command to the gateway may take.
	GatewayCommandTimeout string `mapstructure:"gateway_command_timeout"`
	// MaxConcurrentDownloads is the maximum number of distinct tracks to download simultaneously.
	MaxConcurrentDownloads int64 `mapstructure:"max_concurrent_downloads"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxDownloadSize is the parsed download size cap in bytes.
	ParsedMaxDownloadSize int64
	// ParsedGatewayCommandTimeout is the parsed gateway command timeout.
	ParsedGatewayCommandTimeout time.Duration
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".sannmusic.yaml"

	// DefaultCatalogPath is the catalog location used when the config omits it.
	DefaultCatalogPath = "/catalog.json"

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged HTTP dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptyOriginURL indicates that the origin URL is missing.
	ErrEmptyOriginURL = errors.New("origin_url cannot be empty")
	// ErrInvalidOriginURL indicates that the origin URL is not an absolute http(s) URL.
	ErrInvalidOriginURL = errors.New("origin_url must be an absolute http(s) URL")
	// ErrEmptyCacheDir indicates that the cache directory is missing.
	ErrEmptyCacheDir = errors.New("cache_dir cannot be empty")
	// ErrEmptyDatabasePath indicates that the database path is missing.
	ErrEmptyDatabasePath = errors.New("database_path cannot be empty")
	// ErrInvalidAudioCacheVersion indicates that the audio cache version is invalid.
	ErrInvalidAudioCacheVersion = errors.New("audio_cache_version must be a positive integer")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidCommandTimeout indicates that the gateway command timeout is invalid.
	ErrInvalidCommandTimeout = errors.New("gateway_command_timeout must be positive")
	// ErrInvalidConcurrentDownloads indicates that the concurrent downloads count is invalid.
	ErrInvalidConcurrentDownloads = errors.New("max concurrent downloads must be a positive integer")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	originURL := strings.TrimSpace(cfg.OriginURL)
	if originURL == "" {
		return ErrEmptyOriginURL
	}

	parsedOrigin, err := url.Parse(originURL)
	if err != nil || !parsedOrigin.IsAbs() || parsedOrigin.Host == "" {
		return ErrInvalidOriginURL
	}

	if parsedOrigin.Scheme != "http" && parsedOrigin.Scheme != "https" {
		return ErrInvalidOriginURL
	}

	cfg.OriginURL = strings.TrimRight(originURL, "/")

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = DefaultCatalogPath
	}

	if strings.TrimSpace(cfg.CacheDir) == "" {
		return ErrEmptyCacheDir
	}

	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return ErrEmptyDatabasePath
	}

	if cfg.AudioCacheVersion <= 0 {
		return ErrInvalidAudioCacheVersion
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxDownloadSize := strings.TrimSpace(cfg.MaxDownloadSize)
	if maxDownloadSize != "" && maxDownloadSize != "0" {
		parsedMaxDownloadSize, parseErr := humanize.ParseBytes(maxDownloadSize)
		if parseErr != nil {
			return fmt.Errorf("failed to parse max download size: %w", parseErr)
		}

		// io.CopyN accepts only int64 so we transform it safely in order to use it later.
		cfg.ParsedMaxDownloadSize = utils.SafeUint64ToInt64(parsedMaxDownloadSize)
	}

	cfg.ParsedGatewayCommandTimeout, err = time.ParseDuration(cfg.GatewayCommandTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse gateway command timeout: %w", err)
	}

	if cfg.ParsedGatewayCommandTimeout <= 0 {
		return ErrInvalidCommandTimeout
	}

	if cfg.MaxConcurrentDownloads <= 0 {
		return ErrInvalidConcurrentDownloads
	}

	return nil
}
