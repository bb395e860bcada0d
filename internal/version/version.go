// Package version carries build metadata injected via ldflags.
package version

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = ""

	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)
