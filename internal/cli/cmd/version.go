package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synergy360/kiosk/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), a.BuildInfo.String())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(a.Theme).Render(a.BuildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print a single plain line")
}
