package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty url", func(c *Config) { c.Site.URL = "" }, "site.url must not be empty"},
		{"bad scheme", func(c *Config) { c.Site.URL = "ftp://example.com" }, "site.url scheme"},
		{"missing host", func(c *Config) { c.Site.URL = "https://" }, "site.url must include a host"},
		{"file url", func(c *Config) { c.Site.URL = "file:///srv/kiosk/index.html" }, ""},
		{"zero reconnect", func(c *Config) { c.Site.ReconnectInterval = 0 }, "site.reconnect_interval"},
		{"negative threshold", func(c *Config) { c.Gesture.CornerThreshold = -1 }, "gesture.corner_threshold"},
		{"zero tap timeout", func(c *Config) { c.Gesture.TapTimeout = 0 }, "gesture.tap_timeout"},
		{"zero sleep interval", func(c *Config) { c.Power.SleepInterval = 0 }, "power.sleep_interval"},
		{"zero lease", func(c *Config) { c.Power.LeaseDuration = -time.Second }, "power.lease_duration"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.URL = "  https://example.com  "
	cfg.Logging.Level = "Warning"
	cfg.Logging.Format = "JSON"
	cfg.Logging.LogDir = ""

	normalizeConfig(cfg)

	assert.Equal(t, "https://example.com", cfg.Site.URL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Logging.LogDir)
}
