package version

// populated via ldflags by the release build
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var FullVersion = Version
