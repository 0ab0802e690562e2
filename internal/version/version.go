// Package version holds build-time version information.
package version

// These variables are set at build time using ldflags
var (
	// Version is the current version of dirprefs
	Version = "dev"

	// Commit is the git commit hash
	Commit = ""

	// Date is the build date
	Date = ""
)
