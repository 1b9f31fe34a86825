// Package version exposes the c-init build metadata.
package version

import "fmt"

// Set at build time with -ldflags "-X github.com/c-init/c-init/pkg/version.Version=...".
var (
	Version = "v0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the release version, as printed by --version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
