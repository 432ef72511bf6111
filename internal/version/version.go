package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X github.com/graphpress/graphpress/internal/version.Version=v1.2.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version for the CLI --version flag, with the commit
// appended when build metadata was injected.
func String() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return Version + " (" + GitCommit + ")"
	}
	return Version
}
