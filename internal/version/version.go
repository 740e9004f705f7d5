// Package version provides build information for showreel.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version, Commit and Date are set at build time using ldflags:
//
//	-X github.com/cristianoliveira/showreel/internal/version.Version=1.2.0
var (
	Version = "development"
	Commit  = "unknown"
	Date    = ""
)

// String returns the version including the commit hash if available.
func String() string {
	commit := Commit
	if commit == "unknown" {
		commit = vcsRevision()
	}
	if commit == "unknown" || commit == "" {
		return Version
	}
	return Version + "+" + commit
}

// Long returns a multi-field description for `showreel version --long`.
func Long() string {
	s := fmt.Sprintf("showreel %s (%s %s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if Date != "" {
		s += " built " + Date
	}
	return s
}

// vcsRevision reads the short revision stamped by the go tool, if any.
var vcsRevision = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
