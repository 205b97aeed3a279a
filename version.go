// Package biomark holds module-wide metadata. The composer lives in the
// markup, bio, buffer, color, clipboard and editor packages; the program is
// cmd/biomark.
package biomark

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// buildVersion replaces the embedded version when set at link time:
//
//	go build -ldflags "-X github.com/iw2rmb/biomark.buildVersion=1.2.3"
var buildVersion string

// Version returns the program version in SemVer format (without `v`).
func Version() string {
	if v := strings.TrimSpace(buildVersion); v != "" {
		return strings.TrimPrefix(v, "v")
	}
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
