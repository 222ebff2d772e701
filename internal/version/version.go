package version

// Version holds the current version of uwuify.
// This is typically updated manually or by a build script before a new release.
const Version = "1.0.0"

// VersionInfo returns a string with the current version information.
func VersionInfo() string {
	return "uwuify version " + Version
}
