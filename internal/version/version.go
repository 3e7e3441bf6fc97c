// Package version exposes build metadata for the /health endpoint and
// startup logs. The defaults apply to plain `go build`; releases
// overwrite them via -ldflags "-X .../version.Version=...".
package version

//nolint:revive // Overwritten by the linker at release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
