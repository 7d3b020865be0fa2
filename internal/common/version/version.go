package version

import (
	"fmt"
	"runtime"
)

// Version information - set at build time via ldflags:
//
//	-X github.com/obentoo/abitracker/internal/common/version.Version=1.0.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("abitracker version %s\n  commit: %s\n  built: %s\n  go: %s\n  os/arch: %s/%s\n",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version string
func Short() string {
	return Version
}
