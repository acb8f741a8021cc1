// Package version holds build metadata injected via -ldflags.
package version

var (
	// Version is the semantic release version.
	Version = "0.2.0"
	// Commit is the git revision the binary was built from.
	Commit = ""
	// BuildDate is the build timestamp.
	BuildDate = ""
)
