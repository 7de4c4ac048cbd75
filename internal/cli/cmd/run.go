package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synergy360/kiosk/internal/bootstrap"
)

var runWindowed bool

var runCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Launch the full-screen kiosk",
	Long: `Launch the GTK4 kiosk window.

The page comes from site.url in the config file unless a URL is given.

Examples:
  kiosk run
  kiosk run https://example.com/board
  kiosk run --windowed`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if app != nil && app.ConfigErr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\nusing default configuration\n", app.ConfigErr)
		}

		opts := bootstrap.RunOptions{Windowed: runWindowed, Build: buildInfo}
		if len(args) == 1 {
			opts.URL = args[0]
		}
		if code := bootstrap.RunKiosk(opts); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runWindowed, "windowed", false, "run in a normal window instead of full-screen")
}
