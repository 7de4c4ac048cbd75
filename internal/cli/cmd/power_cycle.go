package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/synergy360/kiosk/internal/bootstrap"
)

var powerCycleOpts bootstrap.PowerCycleOptions

var powerCycleCmd = &cobra.Command{
	Use:   "power-cycle",
	Short: "Exercise the sleep/wake cycle without a window",
	Long: `Runs the idle sleep/wake cycle against the desktop's D-Bus services
without opening a window, logging every step. Useful to check that the
screen really blanks and comes back on a new device.

Examples:
  kiosk power-cycle --interval 10s --cycles 4`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if code := bootstrap.RunPowerCycle(powerCycleOpts); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(powerCycleCmd)
	powerCycleCmd.Flags().DurationVar(&powerCycleOpts.Interval, "interval", 0, "idle interval (default: power.sleep_interval)")
	powerCycleCmd.Flags().DurationVar(&powerCycleOpts.Lease, "lease", 0, "power lease duration (default: power.lease_duration)")
	powerCycleCmd.Flags().IntVar(&powerCycleOpts.Cycles, "cycles", 0, "stop after this many sleep/wake toggles (0 runs until interrupted)")
}
