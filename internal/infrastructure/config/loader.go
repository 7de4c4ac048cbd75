package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// KIOSK_SITE_URL, KIOSK_POWER_SLEEP_INTERVAL, ...
	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"site.url":       "KIOSK_URL",
		"logging.level":  "KIOSK_LOG_LEVEL",
		"logging.format": "KIOSK_LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "KIOSK_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Site.URL = strings.TrimSpace(config.Site.URL)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
// Durations are stored as strings so the generated file stays readable.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("site.url", defaults.Site.URL)
	m.viper.SetDefault("site.reconnect_interval", defaults.Site.ReconnectInterval.String())

	m.viper.SetDefault("gesture.corner_threshold", defaults.Gesture.CornerThreshold)
	m.viper.SetDefault("gesture.tap_timeout", defaults.Gesture.TapTimeout.String())

	m.viper.SetDefault("power.enabled", defaults.Power.Enabled)
	m.viper.SetDefault("power.sleep_interval", defaults.Power.SleepInterval.String())
	m.viper.SetDefault("power.lease_duration", defaults.Power.LeaseDuration.String())

	m.viper.SetDefault("display.fullscreen", defaults.Display.Fullscreen)
	m.viper.SetDefault("display.hide_cursor", defaults.Display.HideCursor)
	m.viper.SetDefault("display.developer_extras", defaults.Display.DeveloperExtras)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.capture_console", defaults.Logging.CaptureConsole)
}

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// Init initializes the global configuration manager.
func Init() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager != nil {
		return nil
	}

	manager, err := NewManager()
	if err != nil {
		return err
	}
	if err := manager.Load(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Get returns the global configuration, falling back to defaults before Init.
func Get() *Config {
	globalMu.Lock()
	manager := globalManager
	globalMu.Unlock()

	if manager == nil {
		return DefaultConfig()
	}
	return manager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager
}
