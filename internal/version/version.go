// Package version reports the hnum release and the build it came from.
package version

import (
	"runtime/debug"
	"sync"
)

// Version is the current semantic version of hnum.
const Version = "0.1.0"

// Set at build time:
//
//	go build -ldflags "-X github.com/standardbeagle/hangulnum/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	GitCommit = ""
	BuildDate = ""
)

var (
	revision     string
	revisionOnce sync.Once
)

// Revision returns the commit the binary was built from: GitCommit when set
// by ldflags, else the VCS stamp the Go toolchain embeds, else "unknown".
// A "+dirty" suffix marks a build from a modified tree.
func Revision() string {
	revisionOnce.Do(func() {
		revision = resolveRevision(GitCommit, readSettings())
	})
	return revision
}

func readSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

func resolveRevision(commit string, settings map[string]string) string {
	if commit != "" {
		return commit
	}
	rev := settings["vcs.revision"]
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if settings["vcs.modified"] == "true" {
		rev += "+dirty"
	}
	return rev
}

// FullInfo is the one-line description printed by the MCP server at startup.
func FullInfo() string {
	info := "hnum " + Version + " (" + Revision()
	if BuildDate != "" {
		info += ", built " + BuildDate
	}
	return info + ")"
}
