// Package cli holds the dependencies shared by the kiosk subcommands.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/synergy360/kiosk/internal/cli/styles"
	"github.com/synergy360/kiosk/internal/domain/build"
	"github.com/synergy360/kiosk/internal/infrastructure/config"
	"github.com/synergy360/kiosk/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is set when the config file could not be loaded and
	// defaults are in use.
	ConfigErr error

	ctx context.Context
}

// NewApp loads configuration and a quiet stderr logger for CLI commands.
// A broken config file is not fatal: defaults are used and the error is kept
// in ConfigErr for commands to report.
func NewApp() *App {
	cfg, cfgErr := loadConfig()

	// CLI output goes to stdout; only warnings reach stderr unless
	// KIOSK_LOG_LEVEL says otherwise.
	logCfg := logging.ConfigFromEnv(logging.Config{
		Level:      logging.ParseLevel("warn"),
		Format:     "console",
		TimeFormat: time.TimeOnly,
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logging.New(logCfg))

	return &App{
		Config:    cfg,
		Theme:     styles.NewTheme(),
		ConfigErr: cfgErr,
		ctx:       ctx,
	}
}

func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return config.DefaultConfig(), err
	}
	return config.Get(), nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	if a == nil || a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
