package cmd_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "sannmusic-test"
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	// Build the binary for testing.
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	// Run tests.
	code := m.Run()

	// Cleanup.
	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

func writeE2EConfig(t *testing.T, tempDir string) string {
	t.Helper()

	configContent := `
origin_url: "https://music.example.com"
listen_addr: "127.0.0.1:0"
cache_dir: "` + filepath.Join(tempDir, "cache") + `"
database_path: "` + filepath.Join(tempDir, "library.db") + `"
audio_cache_version: 1
gateway_command_timeout: "5s"
max_concurrent_downloads: 1
log_level: "info"
`

	configPath := filepath.Join(tempDir, "test-config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0o644) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	return configPath
}

// TestE2E_Help verifies that the help output lists the subcommands.
func TestE2E_Help(t *testing.T) {
	t.Parallel()

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	output, err := exec.Command("./"+testBinaryName, "--help").CombinedOutput()
	require.NoError(t, err)

	outputStr := string(output)
	assert.Contains(t, outputStr, "download")
	assert.Contains(t, outputStr, "remove")
	assert.Contains(t, outputStr, "list")
}

// TestE2E_MissingConfig verifies that a missing configuration file is a
// fatal startup error.
func TestE2E_MissingConfig(t *testing.T) {
	t.Parallel()

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	output, err := exec.Command("./"+testBinaryName,
		"--config", "/nonexistent/config.yaml", "list").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(string(output)), "failed to load configuration")
}

// TestE2E_InvalidConfig verifies that validation errors surface on startup.
func TestE2E_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		overrideKey      string
		overrideValue    string
		expectedErrorMsg string
	}{
		{
			name:             "missing origin URL",
			overrideKey:      "origin_url",
			overrideValue:    `""`,
			expectedErrorMsg: "origin_url cannot be empty",
		},
		{
			name:             "relative origin URL",
			overrideKey:      "origin_url",
			overrideValue:    `"music.example.com"`,
			expectedErrorMsg: "origin_url must be an absolute http(s) url",
		},
		{
			name:             "zero audio cache version",
			overrideKey:      "audio_cache_version",
			overrideValue:    "0",
			expectedErrorMsg: "audio_cache_version must be a positive integer",
		},
		{
			name:             "unknown log level",
			overrideKey:      "log_level",
			overrideValue:    `"chatty"`,
			expectedErrorMsg: "unknown log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tempDir := t.TempDir()
			configPath := writeE2EConfig(t, tempDir)

			content, err := os.ReadFile(configPath) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			var lines []string

			for _, line := range strings.Split(string(content), "\n") {
				if strings.HasPrefix(line, tt.overrideKey+":") {
					line = tt.overrideKey + ": " + tt.overrideValue
				}

				lines = append(lines, line)
			}

			err = os.WriteFile(configPath, []byte(strings.Join(lines, "\n")), 0o644) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
			output, err := exec.Command("./"+testBinaryName,
				"--config", configPath, "list").CombinedOutput()
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(string(output)),
				strings.ToLower(tt.expectedErrorMsg))
		})
	}
}

// TestE2E_ListEmptyLibrary runs the list command against a fresh database.
func TestE2E_ListEmptyLibrary(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configPath := writeE2EConfig(t, tempDir)

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	output, err := exec.Command("./"+testBinaryName,
		"--config", configPath, "list").CombinedOutput()
	require.NoError(t, err, "output: %s", string(output))
	assert.Contains(t, string(output), "The offline library is empty.")
}
