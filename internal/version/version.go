// Package version holds build metadata for shelf, set with -ldflags.
package version

import "runtime"

var (
	Version = "development"
	Commit  = "unknown"
	Date    = ""
)

// String returns Version, with "+commit" appended when the commit is known.
func String() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}

// Long describes the build for `shelf version --long`.
func Long() string {
	s := "shelf " + String() + " (" + runtime.Version() + ")"
	if Date != "" {
		s += " built " + Date
	}
	return s
}
