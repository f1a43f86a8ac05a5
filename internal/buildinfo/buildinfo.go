package buildinfo

import "fmt"

// Set at link time via -ldflags "-X .../buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("clubctl %s (commit=%s, date=%s)", Version, Commit, Date)
}
