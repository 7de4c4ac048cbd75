package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/synergy360/kiosk/internal/infrastructure/config"
	"github.com/synergy360/kiosk/internal/logging"
)

// Session is one kiosk run: its ID and the logger every line of it goes through.
type Session struct {
	ID     string
	Logger zerolog.Logger

	capture *logging.StderrCapture
	cleanup func()
}

// StartSession builds the session logger from cfg. Log file and stderr
// capture failures are logged and the session continues without them.
func StartSession(cfg *config.Config) (*Session, context.Context) {
	s := &Session{
		ID:      logging.GenerateSessionID(),
		cleanup: func() {},
	}

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	}

	var captureErr error
	if cfg.Logging.CaptureConsole {
		s.capture, captureErr = logging.StartStderrCapture()
		if s.capture != nil {
			logCfg.Output = s.capture.Original()
		}
	}

	logger, cleanup, fileErr := logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:    cfg.Logging.EnableFileLog,
		Dir:        cfg.Logging.LogDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   true,
	})
	s.cleanup = cleanup

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithSessionID(ctx, s.ID)
	s.Logger = *logging.FromContext(ctx)

	if fileErr != nil {
		s.Logger.Warn().Err(fileErr).Msg("file logging disabled")
	}
	if captureErr != nil {
		s.Logger.Warn().Err(captureErr).Msg("stderr capture disabled")
	}
	if s.capture != nil {
		s.capture.Forward(s.Logger.With().Str("component", "native").Logger())
	}

	return s, ctx
}

// Close restores stderr and flushes the log file.
func (s *Session) Close() {
	if s == nil {
		return
	}
	if s.capture != nil {
		s.capture.Stop()
	}
	s.cleanup()
}

// loadConfig loads the configuration, falling back to defaults with a
// warning on stderr so a broken file never leaves the screen blank.
func loadConfig() *config.Config {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\nusing default configuration\n", err)
		return config.DefaultConfig()
	}
	return config.Get()
}
