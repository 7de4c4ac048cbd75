package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/application/usecase"
	"github.com/synergy360/kiosk/internal/infrastructure/display"
	"github.com/synergy360/kiosk/internal/infrastructure/idle"
	"github.com/synergy360/kiosk/internal/infrastructure/webkit"
	"github.com/synergy360/kiosk/internal/logging"
)

// PowerCycleOptions are the overrides of `kiosk power-cycle`.
type PowerCycleOptions struct {
	Interval time.Duration
	Lease    time.Duration
	// Cycles stops after that many sleep/wake toggles; zero runs until interrupted.
	Cycles int
}

// RunPowerCycle drives the sleep/wake cycle against the real D-Bus services
// without a window, on a bare GLib main loop. It is used to check a device's
// power integration.
func RunPowerCycle(opts PowerCycleOptions) int {
	runtime.LockOSThread()

	cfg := loadConfig()
	if opts.Interval > 0 {
		cfg.Power.SleepInterval = opts.Interval
	}
	if opts.Lease > 0 {
		cfg.Power.LeaseDuration = opts.Lease
	}

	session, ctx := StartSession(cfg)
	defer session.Close()
	ctx = logging.WithComponent(ctx, "headless")
	log := logging.FromContext(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	power := idle.NewPortalInhibitor(ctx)
	defer func() { _ = power.Close() }()
	screen := display.NewScreenSaver(ctx)
	defer func() { _ = screen.Close() }()

	mainLoop := glib.NewMainLoop(nil, false)
	sched := webkit.MainLoopScheduler{}
	surface := &countingSurface{ctx: ctx, limit: opts.Cycles, done: mainLoop.Quit}

	manager := usecase.NewPowerCycleManager(usecase.PowerCycleDeps{
		Power:     power,
		Surface:   surface,
		Display:   screen,
		Scheduler: sched,
	}, cfg.Power.SleepInterval, cfg.Power.LeaseDuration)

	log.Info().
		Dur("interval", cfg.Power.SleepInterval).
		Dur("lease", cfg.Power.LeaseDuration).
		Int("cycles", opts.Cycles).
		Msg("running power cycle without a window")

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			log.Info().Msg("interrupted, stopping power cycle")
			sched.Post(mainLoop.Quit)
		case <-finished:
		}
	}()

	sched.Post(func() { manager.Start(ctx) })
	mainLoop.Run()
	manager.Stop(context.WithoutCancel(ctx))

	log.Info().Int("toggles", surface.toggles).Msg("power cycle finished")
	return 0
}

// countingSurface stands in for the web view: it logs each lifecycle step
// and ends the run after limit toggles. Only the main loop touches it.
type countingSurface struct {
	ctx     context.Context
	limit   int
	toggles int
	done    func()
}

var _ port.RenderingSurface = (*countingSurface)(nil)

func (s *countingSurface) step(name string) {
	logging.FromContext(s.ctx).Info().Str("step", name).Msg("surface")
}

func (s *countingSurface) toggled() {
	s.toggles++
	if s.limit > 0 && s.toggles >= s.limit && s.done != nil {
		s.done()
	}
}

func (s *countingSurface) Pause(context.Context) error {
	s.step("pause")
	return nil
}

func (s *countingSurface) Resume(context.Context) error {
	s.step("resume")
	return nil
}

func (s *countingSurface) PauseTimers(context.Context) error {
	s.step("pause_timers")
	s.toggled()
	return nil
}

func (s *countingSurface) ResumeTimers(context.Context) error {
	s.step("resume_timers")
	return nil
}

// Reload is the last step of waking up.
func (s *countingSurface) Reload(context.Context) error {
	s.step("reload")
	s.toggled()
	return nil
}
