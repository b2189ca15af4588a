// Package version exposes this module's semantic version, parsed once at
// init time so a malformed version string fails fast rather than at some
// arbitrary later call site.
package version

import "github.com/blang/semver/v4"

// raw is the module's release version. Bump it as part of the release
// process.
const raw = "0.1.0"

// Version is the parsed semantic version of this module.
var Version = semver.MustParse(raw)

// String returns the canonical semantic version string.
func String() string { return Version.String() }
