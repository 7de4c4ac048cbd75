// Package port defines interfaces for external dependencies.
package port

import (
	"context"
	"errors"
	"time"
)

// ErrPowerUnavailable indicates no power management backend could be reached.
var ErrPowerUnavailable = errors.New("power management unavailable")

// PowerResource is a bounded-duration lease that keeps the device from
// suspending. A lease expires on its own after the requested duration, so
// owners must renew it rather than rely on holding it forever.
type PowerResource interface {
	// Acquire takes the lease for at most d. Acquiring a held lease restarts its deadline.
	Acquire(ctx context.Context, d time.Duration) error

	// Release drops the lease. Safe to call when not held (no-op).
	Release(ctx context.Context) error

	// IsHeld reports whether the lease is currently held and not expired.
	IsHeld() bool
}
