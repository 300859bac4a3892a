// Package version holds build information injected at link time:
//
//	go build -ldflags "-X github.com/snifferhu/RIDE/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version with commit and build date
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
