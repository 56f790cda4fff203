// Package version provides the release version of the library, consumed by
// the CLI tools.
package version

import "fmt"

// Build information, overridable at link time.
var (
	major  = 0
	minor  = 2
	patch  = 0
	commit = ""
)

// Version describes a release.
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Commit string
}

// String returns the dotted form, with the commit when known.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Commit != "" {
		s += "+" + v.Commit
	}
	return s
}

// Current returns the version of this build.
func Current() Version {
	return Version{
		Major:  major,
		Minor:  minor,
		Patch:  patch,
		Commit: commit,
	}
}
