package app

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/wikiparse/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// CurrentBuild reports the ldflags values. When the commit was not set it
// falls back to the VCS stamp embedded by the toolchain.
func CurrentBuild() Build {
	b := Build{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
	if b.Commit != "unknown" {
		return b
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Commit = shortRevision(s.Value)
		case "vcs.time":
			if b.BuildTime == "unknown" {
				b.BuildTime = s.Value
			}
		}
	}
	return b
}

// String formats the build for startup logs and the health endpoint.
func (b Build) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", b.Version, b.Commit, b.BuildTime, b.GoVersion)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
