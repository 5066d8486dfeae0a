// Package build provides domain entities for build information.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// NewInfo fills GoVersion from the running toolchain and defaults empty fields.
func NewInfo(version, commit, date string) Info {
	orDev := func(s, def string) string {
		if s == "" {
			return def
		}
		return s
	}
	return Info{
		Version:   orDev(version, "dev"),
		Commit:    orDev(commit, "none"),
		BuildDate: orDev(date, "unknown"),
		GoVersion: runtime.Version(),
	}
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/tiles"
}
