package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/synergy360/kiosk/internal/application/usecase"
	"github.com/synergy360/kiosk/internal/domain/build"
	"github.com/synergy360/kiosk/internal/domain/gesture"
	"github.com/synergy360/kiosk/internal/infrastructure/config"
	"github.com/synergy360/kiosk/internal/infrastructure/display"
	"github.com/synergy360/kiosk/internal/infrastructure/idle"
	"github.com/synergy360/kiosk/internal/infrastructure/network"
	"github.com/synergy360/kiosk/internal/infrastructure/webkit"
	"github.com/synergy360/kiosk/internal/logging"
	"github.com/synergy360/kiosk/internal/ui/kiosk"
	"github.com/synergy360/kiosk/internal/ui/mainloop"
)

const applicationID = "net.synergy360.Kiosk"

// RunOptions are the command line overrides of `kiosk run`.
type RunOptions struct {
	// URL replaces site.url when set.
	URL string
	// Windowed disables full-screen, for development.
	Windowed bool
	Build    build.Info
}

// adapters are the platform services shared by every window.
type adapters struct {
	power   *idle.PortalInhibitor
	display *display.ScreenSaver
	network *network.Monitor
}

func (a adapters) close() {
	if a.power != nil {
		_ = a.power.Close()
	}
	if a.display != nil {
		_ = a.display.Close()
	}
}

// RunKiosk runs the GTK kiosk until it is exited through the unlock gesture
// or a signal. It returns the process exit code.
func RunKiosk(opts RunOptions) int {
	runtime.LockOSThread()
	timer := NewStartupTimer()

	cfg := loadConfig()
	if opts.URL != "" {
		cfg.Site.URL = opts.URL
	}
	if opts.Windowed {
		cfg.Display.Fullscreen = false
	}
	timer.Mark("config")

	session, ctx := StartSession(cfg)
	defer session.Close()
	log := logging.FromContext(ctx)
	log.Info().Str("url", cfg.Site.URL).Msg("starting kiosk")
	timer.Mark("logger")

	watchConfig(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a, err := newAdapters(runCtx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize adapters")
		return 1
	}
	defer a.close()
	// Probe once before the main loop starts so the first page load does not
	// flash the offline screen. Later changes arrive through OnChange.
	a.network.Refresh(runCtx)
	go a.network.Run(runCtx, cfg.Site.ReconnectInterval)
	timer.Mark("adapters")

	app := gtk.NewApplication(applicationID, gio.ApplicationNonUnique)
	var shutdown func()
	app.ConnectActivate(func() {
		shutdown = activate(ctx, app, cfg, a, opts.Build)
		timer.Mark("window")
		timer.Log(ctx)
	})
	app.ConnectShutdown(func() {
		if shutdown != nil {
			shutdown()
		}
	})

	setupSignalHandler(ctx, app)

	code := app.Run(os.Args[:1])
	log.Info().Int("code", code).Msg("kiosk stopped")
	return code
}

func newAdapters(ctx context.Context, cfg *config.Config) (adapters, error) {
	monitor, err := network.NewMonitor(ctx, cfg.Site.URL)
	if err != nil {
		return adapters{}, err
	}
	return adapters{
		power:   idle.NewPortalInhibitor(ctx),
		display: display.NewScreenSaver(ctx),
		network: monitor,
	}, nil
}

// activate builds the window and starts both state machines. It returns the
// teardown to run when the application shuts down.
func activate(ctx context.Context, app *gtk.Application, cfg *config.Config, a adapters, info build.Info) func() {
	log := logging.FromContext(ctx)

	surface, err := webkit.NewSurface(ctx, webkit.SurfaceConfig{
		EnableDeveloperExtras: cfg.Display.DeveloperExtras,
		ApplicationName:       "Synergy360Kiosk",
		ApplicationVersion:    info.Version,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create web view")
		app.Quit()
		return nil
	}

	win := kiosk.New(ctx, app, surface.Widget(), kiosk.Options{
		Fullscreen: cfg.Display.Fullscreen,
		HideCursor: cfg.Display.HideCursor,
	})
	sched := webkit.MainLoopScheduler{}

	site, err := usecase.NewSiteLoader(usecase.SiteLoaderDeps{
		Loader:       surface,
		Reachability: a.network,
		Offline:      win,
		Scheduler:    sched,
	}, cfg.Site.URL, cfg.Site.ReconnectInterval)
	if err != nil {
		log.Error().Err(err).Msg("invalid site configuration")
		app.Quit()
		return nil
	}
	surface.OnLoadFinished(site.OnLoadFinished)
	surface.OnLoadFailed(site.OnLoadFailed)

	// Reconnect as soon as the monitor sees the network come back instead
	// of waiting for the next retry tick.
	reconnect := mainloop.NewCoalescer(sched)
	a.network.OnChange(func(reachable bool) {
		reconnect.Post("reachability", func() {
			if reachable {
				site.Retry()
			}
		})
	})

	var (
		powerCycle *usecase.PowerCycleManager
		activity   usecase.ActivityRecorder
	)
	if cfg.Power.Enabled {
		powerCycle = usecase.NewPowerCycleManager(usecase.PowerCycleDeps{
			Power:     a.power,
			Surface:   surface,
			Display:   a.display,
			Scheduler: sched,
		}, cfg.Power.SleepInterval, cfg.Power.LeaseDuration)
		activity = powerCycle
	}

	detector := gesture.NewDetector(
		gesture.WithThreshold(cfg.Gesture.CornerThreshold),
		gesture.WithTimeout(cfg.Gesture.TapTimeout),
	)
	pointer := usecase.NewHandlePointerUseCase(detector, win, activity, win.ShowExitConfirmation)
	win.OnPointerDown(func(x, y float64) {
		pointer.Execute(ctx, usecase.HandlePointerInput{X: x, Y: y})
	})

	exit := usecase.NewExitKioskUseCase(usecase.ExitKioskDeps{
		PowerCycle: powerCycle,
		Site:       site,
		Power:      a.power,
		Display:    a.display,
		Quit: func() {
			win.Close()
			app.Quit()
		},
	})
	win.OnExitConfirmed(func() {
		if err := exit.Execute(ctx); err != nil {
			log.Warn().Err(err).Msg("kiosk teardown incomplete")
		}
	})

	win.Present()

	if powerCycle != nil {
		powerCycle.Start(ctx)
	} else if err := a.display.SetKeepScreenOn(ctx, true); err != nil {
		log.Warn().Err(err).Msg("failed to keep screen on")
	}
	site.Load(ctx)

	return func() {
		reconnect.Close()
		if powerCycle != nil {
			powerCycle.Stop(ctx)
		}
		site.Stop()
		surface.Destroy()
	}
}

// watchConfig logs edits made to the config file while the kiosk runs.
// They take effect on the next start.
func watchConfig(ctx context.Context) {
	manager := config.GetManager()
	if manager == nil {
		return
	}
	log := logging.FromContext(ctx)
	manager.OnConfigChange(func(cfg *config.Config) {
		log.Info().
			Str("url", cfg.Site.URL).
			Dur("sleep_interval", cfg.Power.SleepInterval).
			Msg("configuration changed, restart the kiosk to apply")
	})
	if err := manager.Watch(); err != nil {
		log.Debug().Err(err).Msg("config watch unavailable")
	}
}

func setupSignalHandler(ctx context.Context, app *gtk.Application) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received signal, quitting")
		glib.IdleAdd(func() {
			app.Quit()
		})
	}()
}
