// Package config loads the kiosk configuration from TOML, environment and defaults.
package config

import "time"

// Config represents the complete configuration for the kiosk.
type Config struct {
	Site    SiteConfig    `mapstructure:"site" toml:"site" json:"site"`
	Gesture GestureConfig `mapstructure:"gesture" toml:"gesture" json:"gesture"`
	Power   PowerConfig   `mapstructure:"power" toml:"power" json:"power"`
	Display DisplayConfig `mapstructure:"display" toml:"display" json:"display"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// SiteConfig is the page the kiosk shows.
type SiteConfig struct {
	URL string `mapstructure:"url" toml:"url" json:"url" jsonschema_description:"Page shown full-screen"`
	// ReconnectInterval is the delay between retries while offline.
	ReconnectInterval time.Duration `mapstructure:"reconnect_interval" toml:"reconnect_interval" json:"reconnect_interval" jsonschema_description:"Delay between retries while offline"`
}

// GestureConfig tunes the hidden exit gesture.
type GestureConfig struct {
	CornerThreshold float64       `mapstructure:"corner_threshold" toml:"corner_threshold" json:"corner_threshold" jsonschema_description:"Side of each corner region in logical pixels"`
	TapTimeout      time.Duration `mapstructure:"tap_timeout" toml:"tap_timeout" json:"tap_timeout" jsonschema_description:"Largest gap between two taps of one attempt"`
}

// PowerConfig controls the idle sleep/wake cycle.
type PowerConfig struct {
	Enabled       bool          `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema_description:"Toggle the display between awake and asleep when idle"`
	SleepInterval time.Duration `mapstructure:"sleep_interval" toml:"sleep_interval" json:"sleep_interval" jsonschema_description:"Idle time between sleep/wake toggles"`
	LeaseDuration time.Duration `mapstructure:"lease_duration" toml:"lease_duration" json:"lease_duration" jsonschema_description:"Upper bound of each power lease"`
}

// DisplayConfig controls the kiosk window.
type DisplayConfig struct {
	Fullscreen      bool `mapstructure:"fullscreen" toml:"fullscreen" json:"fullscreen"`
	HideCursor      bool `mapstructure:"hide_cursor" toml:"hide_cursor" json:"hide_cursor"`
	DeveloperExtras bool `mapstructure:"developer_extras" toml:"developer_extras" json:"developer_extras" jsonschema_description:"Enable the WebKit inspector"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level          string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format         string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog  bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir         string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB      int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups     int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays     int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	CaptureConsole bool   `mapstructure:"capture_console" toml:"capture_console" json:"capture_console" jsonschema_description:"Route native stderr from WebKit and GTK into the log"`
}
