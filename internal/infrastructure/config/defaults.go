package config

import "time"

// Default configuration constants
const (
	DefaultSiteURL = "https://app.360synergy.net"

	defaultReconnectInterval = 5 * time.Second
	defaultCornerThreshold   = 150.0
	defaultTapTimeout        = 10 * time.Second
	defaultSleepInterval     = 2 * time.Minute
	defaultLeaseDuration     = 10 * time.Minute

	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for the kiosk.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			URL:               DefaultSiteURL,
			ReconnectInterval: defaultReconnectInterval,
		},
		Gesture: GestureConfig{
			CornerThreshold: defaultCornerThreshold,
			TapTimeout:      defaultTapTimeout,
		},
		Power: PowerConfig{
			Enabled:       true,
			SleepInterval: defaultSleepInterval,
			LeaseDuration: defaultLeaseDuration,
		},
		Display: DisplayConfig{
			Fullscreen: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxLogBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
		},
	}
}
