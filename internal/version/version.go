// Package version holds the build version of the flyer tool.
package version

import "fmt"

// Version is overridable at build time via -ldflags "-X ...version.Version=v1.2.3".
var Version = "0.2.0-dev"

// Commit is the short VCS revision, set at build time when available.
var Commit = ""

// String returns the human-readable version string.
func String() string {
	if Commit != "" {
		return fmt.Sprintf("%s (%s)", Version, Commit)
	}
	return Version
}
