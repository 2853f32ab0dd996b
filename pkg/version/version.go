// Package version exposes build metadata. Release builds inject it with
// -ldflags; `go install` builds fall back to the module build info.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build-time variables injected via -ldflags:
//
//	go build -ldflags "-X github.com/seqlab/sheetkit/pkg/version.Version=v0.2.0"
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

const devVersion = "v0.1.0-dev"

// GetVersion returns the injected version, the module version recorded by
// the Go toolchain, or a development placeholder.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return devVersion
}

// GetCommit returns the injected commit or the VCS revision stamped into
// the binary, shortened to 12 characters.
func GetCommit() string {
	if Commit != "" {
		return Commit
	}
	if rev := buildSetting("vcs.revision"); rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		return rev
	}
	return "none"
}

// GetDate returns the injected build date or the VCS commit time.
func GetDate() string {
	if Date != "" {
		return Date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), GetCommit(), GetDate())
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
