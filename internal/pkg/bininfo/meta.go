// Values here are populated at link time via go's -ldflags option.
// Keep the variable names stable or release builds will stop stamping them.

package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit
	// appended after a plus sign [+] when available.
	Version = "v0.0.0"

	// BuildTime is the time at which the binary was built.
	BuildTime = "1970-01-01T00:00:00Z"
)
