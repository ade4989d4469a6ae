package utils

import (
	"runtime/debug"
	"strings"
)

// version is injected at build time via ldflags
var version string

// GetVersion reports the build version: the ldflags value when set,
// otherwise whatever module version the build info carries, otherwise
// "unknown". Any leading "v" is stripped.
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		} else {
			v = "unknown"
		}
	}
	return strings.TrimPrefix(v, "v")
}
