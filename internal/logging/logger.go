package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// FileConfig controls the optional rotated log file.
type FileConfig struct {
	Enabled    bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return zerolog.New(cfg.writer()).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes to stderr and, when enabled, to a
// rotated JSON log file. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.Dir, 0o755); err != nil {
		return New(cfg), func() {}, fmt.Errorf("create log dir %s: %w", fileCfg.Dir, err)
	}

	rotator, err := NewLogRotator(fileCfg.Dir, fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
	if err != nil {
		return New(cfg), func() {}, err
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(cfg.writer(), rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if cerr := rotator.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file %s: %v\n", rotator.Path(), cerr)
		}
	}
	return logger, cleanup, nil
}

func (cfg Config) writer() io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}
	return out
}

// ParseLevel maps a config string to a zerolog level.
// Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// KIOSK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// KIOSK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv applies KIOSK_LOG_LEVEL and KIOSK_LOG_FORMAT on top of base.
func ConfigFromEnv(base Config) Config {
	cfg := base
	if level := os.Getenv("KIOSK_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	switch format := os.Getenv("KIOSK_LOG_FORMAT"); format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}
