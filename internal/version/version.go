// Package version exposes build-time version information.
// The variables are overridden at build time via -ldflags.
package version

// Build-time variables, set via -ldflags.
//
//nolint:gochecknoglobals // Overridden by the linker at build time.
var (
	// Version is the semantic version of the binary.
	Version = "1.0.0"
	// Commit is the VCS commit the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
