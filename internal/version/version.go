// Package version reports the build version of the ngram binary.
// Version and Commit are set at link time:
//
//	go build -ldflags "-X github.com/corey/ngram/internal/version.Version=v1.2.0 -X github.com/corey/ngram/internal/version.Commit=abc1234"
package version

import "runtime/debug"

var (
	Version = "dev"
	Commit  = ""
)

// String returns "Version (Commit)", falling back to the module version and
// VCS revision recorded by the Go toolchain when nothing was linked in.
func String() string {
	v, c := Version, Commit
	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		if c == "" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	if len(c) > 7 {
		c = c[:7]
	}
	if c == "" {
		return v
	}
	return v + " (" + c + ")"
}
