// Package buildinfo carries version metadata set at link time:
//
//	go build -ldflags "-X spinsquare/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full line printed by -version.
func String() string {
	return fmt.Sprintf("spinsquare %s (commit %s, built %s)", Version, Commit, Date)
}
