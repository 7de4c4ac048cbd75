package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergy360/kiosk/internal/infrastructure/config"
)

func TestConfigSections(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gesture.CornerThreshold = 120.5
	cfg.Power.SleepInterval = 90 * time.Second

	sections := configSections(cfg)

	names := make([]string, 0, len(sections))
	values := map[string]string{}
	for _, s := range sections {
		names = append(names, s.Name)
		for _, e := range s.Entries {
			values[s.Name+"."+e.Key] = e.Value
		}
	}

	assert.Equal(t, []string{"site", "gesture", "power", "display", "logging"}, names)
	require.Contains(t, values, "site.url")
	assert.Equal(t, config.DefaultSiteURL, values["site.url"])
	assert.Equal(t, "120.5", values["gesture.corner_threshold"])
	assert.Equal(t, "1m30s", values["power.sleep_interval"])
	assert.Equal(t, "true", values["power.enabled"])
	assert.Equal(t, "10", values["logging.max_size_mb"])
}
