package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

// ExitKioskDeps are torn down, in order, when the kiosk exits. Nil fields are skipped.
type ExitKioskDeps struct {
	PowerCycle *PowerCycleManager
	Site       *SiteLoader
	Power      port.PowerResource
	Display    port.DisplayDirectives
	// Quit ends the host main loop.
	Quit func()
}

// ExitKioskUseCase leaves kiosk mode after the unlock gesture was confirmed.
type ExitKioskUseCase struct {
	deps ExitKioskDeps
}

func NewExitKioskUseCase(deps ExitKioskDeps) *ExitKioskUseCase {
	return &ExitKioskUseCase{deps: deps}
}

// Execute stops the idle cycle and reconnect loop, hands the power lease and
// display flags back to the system, then quits. Teardown errors are
// collected; Quit runs regardless.
func (uc *ExitKioskUseCase) Execute(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Info().Msg("exiting kiosk mode")

	if uc.deps.PowerCycle != nil {
		uc.deps.PowerCycle.Stop(ctx)
	}
	if uc.deps.Site != nil {
		uc.deps.Site.Stop()
	}

	var errs []error
	if p := uc.deps.Power; p != nil && p.IsHeld() {
		if err := p.Release(ctx); err != nil {
			errs = append(errs, fmt.Errorf("release power lease: %w", err))
		}
	}
	if d := uc.deps.Display; d != nil {
		if err := d.SetKeepScreenOn(ctx, false); err != nil {
			errs = append(errs, fmt.Errorf("clear keep-screen-on: %w", err))
		}
		if err := d.SetShowOverLock(ctx, false); err != nil {
			errs = append(errs, fmt.Errorf("clear show-over-lock: %w", err))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		log.Warn().Err(err).Msg("kiosk teardown incomplete")
	}

	if uc.deps.Quit != nil {
		uc.deps.Quit()
	}
	return err
}
