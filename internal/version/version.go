// Package version reports build information for the cjson binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Set with -ldflags "-X" at release time. Otherwise filled from the module
// build info when available.
var (
	Version  = unknown
	Revision = unknown
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == unknown && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Revision != unknown {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision as a single string.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
