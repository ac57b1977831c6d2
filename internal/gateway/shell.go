package gateway

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShellManifest describes the app shell: the partition version and the
// origin paths that must be cached up front for offline startup.
type ShellManifest struct {
	// Version is the shell partition version. Bumping it makes the old
	// partition stale and triggers a purge on activation.
	Version int64 `yaml:"version"`
	// Paths lists the origin paths that make up the app shell.
	Paths []string `yaml:"paths"`
}

// ErrInvalidShellManifest indicates the shell manifest file is malformed.
var ErrInvalidShellManifest = errors.New("invalid shell manifest")

// defaultShellManifest is used when no manifest file is configured.
var defaultShellManifest = &ShellManifest{
	Version: 1,
	Paths: []string{
		"/",
		"/index.html",
		"/style.css",
		"/script.js",
		"/manifest.json",
	},
}

// LoadShellManifest reads the shell manifest from the given path.
// An empty path returns the built-in default shell.
func LoadShellManifest(path string) (*ShellManifest, error) {
	if path == "" {
		return defaultShellManifest, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shell manifest: %w", err)
	}

	var manifest ShellManifest
	if err = yaml.Unmarshal(contents, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShellManifest, err.Error())
	}

	if manifest.Version <= 0 {
		return nil, fmt.Errorf("%w: version must be positive", ErrInvalidShellManifest)
	}

	if len(manifest.Paths) == 0 {
		return nil, fmt.Errorf("%w: no shell paths listed", ErrInvalidShellManifest)
	}

	return &manifest, nil
}
