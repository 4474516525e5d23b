// Package version exposes build information injected at link time.
package version

import "fmt"

// Build-time variables injected via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/modu-ai/skelgen/pkg/version.Version=v1.2.0"
var (
	Version = "v0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
