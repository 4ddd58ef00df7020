package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time with -ldflags "-X github.com/cloudposse/fngen/pkg/version.Version=...".
var Version = "0.0.0-dev"

// String returns the version with the platform it was built for.
func String() string {
	return fmt.Sprintf("%s %s/%s", Version, runtime.GOOS, runtime.GOARCH)
}
