package port

import (
	"context"
	"errors"
)

// ErrDisplayUnavailable indicates the screensaver/display service is missing.
var ErrDisplayUnavailable = errors.New("display service unavailable")

// DisplayDirectives are idempotent display flags owned by the power cycle.
// Setting a flag that is already set, or clearing one that is clear, is a no-op.
type DisplayDirectives interface {
	// SetKeepScreenOn keeps the screen from blanking while on is true.
	SetKeepScreenOn(ctx context.Context, on bool) error
	// TurnScreenOn wakes a blanked screen.
	TurnScreenOn(ctx context.Context) error
	// SetShowOverLock dismisses the lock screen/screensaver so the kiosk is visible.
	SetShowOverLock(ctx context.Context, on bool) error
}
