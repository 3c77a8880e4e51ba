// Package platform wraps the raw platform strings found in host definitions
// ("el-6-x86_64", "windows-2012-x64", "ubuntu-14.04-amd64") into a structured
// value so the rest of the tool can match on OS family and version instead of
// re-parsing strings.
package platform

import "regexp"

// platformPattern matches the canonical name-version-architecture form.
var platformPattern = regexp.MustCompile(`^([A-Za-z0-9]+)-([\w.]+)-(.+)$`)

// Platform is a parsed platform identifier.
type Platform struct {
	Name    string
	Version string
	Arch    string

	raw string
}

// Parse builds a Platform from its raw string form. Parsing never fails for
// a non-empty string: anything that does not match the canonical
// name-version-arch layout keeps the whole string as Name.
func Parse(raw string) Platform {
	if m := platformPattern.FindStringSubmatch(raw); m != nil {
		return Platform{Name: m[1], Version: m[2], Arch: m[3], raw: raw}
	}
	return Platform{Name: raw, raw: raw}
}

// String returns the original raw form.
func (p Platform) String() string {
	return p.raw
}

// MarshalYAML renders the platform back as its raw string so resolved
// configurations round-trip through YAML cleanly.
func (p Platform) MarshalYAML() (any, error) {
	return p.raw, nil
}
