package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShellManifest(t *testing.T) {
	t.Parallel()

	writeManifest := func(t *testing.T, contents string) string {
		t.Helper()

		path := filepath.Join(t.TempDir(), "shell.yaml")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		return path
	}

	t.Run("empty path returns the default shell", func(t *testing.T) {
		t.Parallel()

		manifest, err := LoadShellManifest("")
		require.NoError(t, err)
		assert.Equal(t, int64(1), manifest.Version)
		assert.Contains(t, manifest.Paths, "/index.html")
	})

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "version: 3\npaths:\n  - /\n  - /app.js\n")

		manifest, err := LoadShellManifest(path)
		require.NoError(t, err)
		assert.Equal(t, int64(3), manifest.Version)
		assert.Equal(t, []string{"/", "/app.js"}, manifest.Paths)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadShellManifest(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "version: [not a number\n")

		_, err := LoadShellManifest(path)
		assert.ErrorIs(t, err, ErrInvalidShellManifest)
	})

	t.Run("non-positive version", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "version: 0\npaths:\n  - /\n")

		_, err := LoadShellManifest(path)
		assert.ErrorIs(t, err, ErrInvalidShellManifest)
	})

	t.Run("empty path list", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "version: 2\npaths: []\n")

		_, err := LoadShellManifest(path)
		assert.ErrorIs(t, err, ErrInvalidShellManifest)
	})
}
