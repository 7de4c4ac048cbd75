package main

import (
	"runtime"

	"github.com/synergy360/kiosk/internal/cli/cmd"
	"github.com/synergy360/kiosk/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
