package version

// These are set at build time via -ldflags. Keep defaults useful for
// local builds.
var (
	// Version is the battnag version, e.g. v1.2.3.
	Version = "dev"
	// GitCommit is the git commit battnag was built from.
	GitCommit = "unknown"
)
