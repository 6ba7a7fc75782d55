// Package version reports what build of g-project is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
)

// String is Version, suffixed with +commit when the commit is known.
func String() string {
	if c := commit(); c != "" {
		return Version + "+" + c
	}
	return Version
}

// commit prefers the linked-in Commit and falls back to the VCS revision Go
// stamps into module builds.
func commit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	return vcsRevision(debug.ReadBuildInfo)
}

func vcsRevision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
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

// Platform is "os/arch (go version)", shown by /about and the version command.
func Platform() string {
	return fmt.Sprintf("%s/%s (%s)", runtime.GOOS, runtime.GOARCH, runtime.Version())
}
