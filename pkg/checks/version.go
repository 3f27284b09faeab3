package checks

import (
	"strings"

	"golang.org/x/mod/semver"
)

// minBubblewrap is the oldest bubblewrap release sccache-dist can sandbox
// builds with.
const minBubblewrap = "v0.3.0"

// bubblewrapVersion extracts the dotted version from `bwrap --version`
// output, which looks like "bubblewrap 0.11.0". Anything unparseable maps
// to v0.0.0 so an ambiguous version can never pass the minimum gate.
func bubblewrapVersion(out string) string {
	ver := strings.TrimSpace(out)
	ver = strings.TrimPrefix(ver, "bubblewrap ")
	ver = strings.TrimSpace(ver)
	if i := strings.IndexByte(ver, ' '); i >= 0 {
		ver = ver[:i]
	}

	v := "v" + ver
	if !semver.IsValid(v) {
		return "v0.0.0"
	}
	return v
}

// BubblewrapAtLeast reports whether the version printed by bwrap meets
// min (a canonical "vX.Y.Z" string), failing closed on garbage.
func BubblewrapAtLeast(out, min string) bool {
	return semver.Compare(bubblewrapVersion(out), min) >= 0
}
