// Package buildinfo holds identifiers stamped at link time, e.g.
//
//	go build -ldflags "-X fieldlines/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles and logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identifier printed by -version.
func String() string {
	return fmt.Sprintf("fieldlines %s (commit %s, built %s)", Version, Commit, Date)
}
