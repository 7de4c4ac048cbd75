package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSite(config.Site)...)
	validationErrors = append(validationErrors, validateGesture(config.Gesture)...)
	validationErrors = append(validationErrors, validatePower(config.Power)...)
	validationErrors = append(validationErrors, validateLogging(config.Logging)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateSite(site SiteConfig) []string {
	var errs []string
	u, err := url.Parse(site.URL)
	switch {
	case site.URL == "":
		errs = append(errs, "site.url must not be empty")
	case err != nil:
		errs = append(errs, fmt.Sprintf("site.url is not a valid URL: %v", err))
	case u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file":
		errs = append(errs, fmt.Sprintf("site.url scheme must be http, https or file (got %q)", u.Scheme))
	case u.Scheme != "file" && u.Host == "":
		errs = append(errs, "site.url must include a host")
	}
	if site.ReconnectInterval <= 0 {
		errs = append(errs, "site.reconnect_interval must be positive")
	}
	return errs
}

func validateGesture(gesture GestureConfig) []string {
	var errs []string
	if gesture.CornerThreshold <= 0 {
		errs = append(errs, "gesture.corner_threshold must be positive")
	}
	if gesture.TapTimeout <= 0 {
		errs = append(errs, "gesture.tap_timeout must be positive")
	}
	return errs
}

func validatePower(power PowerConfig) []string {
	var errs []string
	if power.SleepInterval <= 0 {
		errs = append(errs, "power.sleep_interval must be positive")
	}
	if power.LeaseDuration <= 0 {
		errs = append(errs, "power.lease_duration must be positive")
	}
	return errs
}

func validateLogging(logging LoggingConfig) []string {
	var errs []string
	if !slices.Contains(validLevels, logging.Level) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s (got %q)", strings.Join(validLevels, ", "), logging.Level))
	}
	if !slices.Contains(validFormats, logging.Format) {
		errs = append(errs, fmt.Sprintf("logging.format must be one of %s (got %q)", strings.Join(validFormats, ", "), logging.Format))
	}
	if logging.MaxSizeMB < 0 {
		errs = append(errs, "logging.max_size_mb must be non-negative")
	}
	if logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must be non-negative")
	}
	if logging.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_age_days must be non-negative")
	}
	return errs
}
