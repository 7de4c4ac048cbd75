package usecase

import (
	"context"
	"time"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/domain/entity"
	"github.com/synergy360/kiosk/internal/domain/gesture"
	"github.com/synergy360/kiosk/internal/logging"
)

// ActivityRecorder is told about every user interaction.
// *PowerCycleManager implements it.
type ActivityRecorder interface {
	ResetTimer(ctx context.Context)
}

// HandlePointerUseCase routes one pointer-down from the window to the unlock
// gesture detector and the idle timer.
type HandlePointerUseCase struct {
	detector *gesture.Detector
	viewport port.ViewportQuery
	activity ActivityRecorder
	onUnlock port.CompletionSink
	now      func() time.Time
}

// NewHandlePointerUseCase creates the use case. activity and onUnlock may be nil.
func NewHandlePointerUseCase(
	detector *gesture.Detector,
	viewport port.ViewportQuery,
	activity ActivityRecorder,
	onUnlock port.CompletionSink,
) *HandlePointerUseCase {
	return &HandlePointerUseCase{
		detector: detector,
		viewport: viewport,
		activity: activity,
		onUnlock: onUnlock,
		now:      time.Now,
	}
}

// HandlePointerInput is one pointer-down in window coordinates.
type HandlePointerInput struct {
	X, Y float64
	// At defaults to the current time.
	At time.Time
}

// HandlePointerOutput reports what the event did.
type HandlePointerOutput struct {
	Corner   entity.Corner
	Unlocked bool
}

// Execute feeds the event to the idle timer and the gesture detector, and
// fires the unlock callback when the sequence completes.
func (uc *HandlePointerUseCase) Execute(ctx context.Context, input HandlePointerInput) HandlePointerOutput {
	log := logging.FromContext(ctx)

	if uc.activity != nil {
		uc.activity.ResetTimer(ctx)
	}

	at := input.At
	if at.IsZero() {
		at = uc.now()
	}

	var vp entity.Viewport
	if uc.viewport != nil {
		vp = uc.viewport.Viewport()
	}

	res := uc.detector.Feed(entity.PointerEvent{X: input.X, Y: input.Y, At: at}, vp)
	out := HandlePointerOutput{Corner: res.Corner, Unlocked: res.Completed}

	if out.Corner != entity.CornerNone {
		log.Debug().
			Str("corner", out.Corner.String()).
			Int("progress", len(uc.detector.History())).
			Msg("corner tap")
	}

	if out.Unlocked {
		log.Info().Msg("unlock gesture completed")
		if uc.onUnlock != nil {
			uc.onUnlock()
		}
	}
	return out
}
