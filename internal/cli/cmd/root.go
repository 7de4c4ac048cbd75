// Package cmd provides the Cobra commands of the kiosk binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synergy360/kiosk/internal/cli"
	"github.com/synergy360/kiosk/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "kiosk",
		Short: "Full-screen single-site kiosk shell",
		Long: `Kiosk locks the display into one website shown full-screen in WebKitGTK.

It keeps the page loaded across network outages, puts the display to sleep
when nobody touches it, and exits only through a hidden gesture: tap the
top-left, top-right, bottom-left and bottom-right corners in that order.

Use 'kiosk run' to start the kiosk, 'kiosk doctor' to check the device.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			app = cli.NewApp()
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
