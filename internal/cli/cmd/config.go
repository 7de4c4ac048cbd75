package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/synergy360/kiosk/internal/cli/styles"
	"github.com/synergy360/kiosk/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the configuration lives, the values in effect, and its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the configuration after defaults, the config file and KIOSK_* environment variables are merged.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}

		renderer := styles.NewConfigRenderer(a.Theme)
		out := cmd.OutOrStdout()

		if path, err := config.GetConfigFile(); err == nil {
			fmt.Fprintln(out, renderer.RenderPath(path))
			fmt.Fprintln(out)
		}
		if a.ConfigErr != nil {
			fmt.Fprintln(out, renderer.RenderWarning(a.ConfigErr))
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, renderer.RenderSections(configSections(a.Config)))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func configSections(cfg *config.Config) []styles.ConfigSection {
	b := strconv.FormatBool
	i := strconv.Itoa
	return []styles.ConfigSection{
		{Name: "site", Entries: []styles.ConfigEntry{
			{Key: "url", Value: cfg.Site.URL},
			{Key: "reconnect_interval", Value: cfg.Site.ReconnectInterval.String()},
		}},
		{Name: "gesture", Entries: []styles.ConfigEntry{
			{Key: "corner_threshold", Value: strconv.FormatFloat(cfg.Gesture.CornerThreshold, 'f', -1, 64)},
			{Key: "tap_timeout", Value: cfg.Gesture.TapTimeout.String()},
		}},
		{Name: "power", Entries: []styles.ConfigEntry{
			{Key: "enabled", Value: b(cfg.Power.Enabled)},
			{Key: "sleep_interval", Value: cfg.Power.SleepInterval.String()},
			{Key: "lease_duration", Value: cfg.Power.LeaseDuration.String()},
		}},
		{Name: "display", Entries: []styles.ConfigEntry{
			{Key: "fullscreen", Value: b(cfg.Display.Fullscreen)},
			{Key: "hide_cursor", Value: b(cfg.Display.HideCursor)},
			{Key: "developer_extras", Value: b(cfg.Display.DeveloperExtras)},
		}},
		{Name: "logging", Entries: []styles.ConfigEntry{
			{Key: "level", Value: cfg.Logging.Level},
			{Key: "format", Value: cfg.Logging.Format},
			{Key: "enable_file_log", Value: b(cfg.Logging.EnableFileLog)},
			{Key: "log_dir", Value: cfg.Logging.LogDir},
			{Key: "max_size_mb", Value: i(cfg.Logging.MaxSizeMB)},
			{Key: "max_backups", Value: i(cfg.Logging.MaxBackups)},
			{Key: "max_age_days", Value: i(cfg.Logging.MaxAgeDays)},
			{Key: "capture_console", Value: b(cfg.Logging.CaptureConsole)},
		}},
	}
}
