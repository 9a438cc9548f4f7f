// Package version reports the version of the running scour binary.
package version

import (
	"runtime"
	"runtime/debug"
)

// Build information, set via ldflags:
//
//	-X github.com/iiroan/scour/internal/version.Version=1.2.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information for the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Current returns the application version stamped into the options file.
// Without ldflags it falls back to the module version, then to the VCS
// revision recorded by the Go toolchain.
func Current() string {
	return resolve(Version, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func resolve(stamped string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if stamped != "" && stamped != "dev" {
		return stamped
	}

	info, ok := buildInfo()
	if !ok {
		return "dev"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			revision := setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
			return "dev-" + revision
		}
	}
	return "dev"
}

// Get returns the full build information.
func Get() Info {
	return Info{
		Version:   Current(),
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
