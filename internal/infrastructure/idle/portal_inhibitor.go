// Package idle holds the kiosk power lease through the XDG Desktop Portal.
package idle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// org.freedesktop.portal.Inhibit flags
	flagSuspend = 4
	flagIdle    = 8

	inhibitReason = "Kiosk display active"
)

// Compile-time interface checks.
var (
	_ port.PowerResource = (*PortalInhibitor)(nil)
	_ port.ServiceProbe  = (*PortalInhibitor)(nil)
)

// inhibitBus is the slice of the portal API the lease needs.
type inhibitBus interface {
	Version() (uint32, error)
	Inhibit(reason string, flags uint32) (dbus.ObjectPath, error)
	// WatchResponse closes the returned channel once the portal emits
	// Response for handle or ctx ends.
	WatchResponse(ctx context.Context, handle dbus.ObjectPath) <-chan struct{}
	CloseRequest(handle dbus.ObjectPath) error
	Close() error
}

type stopper interface {
	Stop() bool
}

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// PortalInhibitor is a bounded power lease: while held, the portal blocks
// idle and suspend. Every lease expires on its own after the duration passed
// to Acquire.
type PortalInhibitor struct {
	mu sync.Mutex

	bus       inhibitBus
	supported bool
	version   uint32
	now       func() time.Time
	afterFunc func(time.Duration, func()) stopper

	handle    dbus.ObjectPath
	completed bool // portal already sent Response; the request object is gone
	expiresAt time.Time
	expiry    stopper
	stopWatch context.CancelFunc
}

// NewPortalInhibitor connects to the session bus. The returned inhibitor is
// usable even without D-Bus: Acquire then reports port.ErrPowerUnavailable.
func NewPortalInhibitor(ctx context.Context) *PortalInhibitor {
	log := logging.FromContext(ctx)

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("power lease: cannot connect to D-Bus session bus")
		return newPortalInhibitor(ctx, nil)
	}
	return newPortalInhibitor(ctx, &sessionBus{conn: conn})
}

func newPortalInhibitor(ctx context.Context, bus inhibitBus) *PortalInhibitor {
	p := &PortalInhibitor{
		bus:       bus,
		now:       time.Now,
		afterFunc: realAfterFunc,
	}
	if bus == nil {
		return p
	}

	version, err := bus.Version()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("power lease: portal not available")
		return p
	}
	p.supported = true
	p.version = version
	logging.FromContext(ctx).Debug().Uint32("version", version).Msg("power lease: portal available")
	return p
}

// Acquire takes the lease for d. Acquiring a held lease only moves its deadline.
func (p *PortalInhibitor) Acquire(ctx context.Context, d time.Duration) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.supported {
		return port.ErrPowerUnavailable
	}
	if d <= 0 {
		return fmt.Errorf("power lease: non-positive duration %s", d)
	}

	if !p.heldLocked() {
		p.dropLocked()

		handle, err := p.bus.Inhibit(inhibitReason, flagIdle|flagSuspend)
		if err != nil {
			return fmt.Errorf("portal inhibit: %w", err)
		}
		p.handle = handle
		p.completed = false

		watchCtx, cancel := context.WithCancel(context.Background())
		p.stopWatch = cancel
		go p.awaitResponse(ctx, watchCtx, handle, p.bus.WatchResponse(watchCtx, handle))

		log.Info().Str("handle", string(handle)).Dur("lease", d).Msg("power lease: acquired")
	} else {
		log.Debug().Dur("lease", d).Msg("power lease: renewed")
	}

	p.expiresAt = p.now().Add(d)
	if p.expiry != nil {
		p.expiry.Stop()
	}
	handle := p.handle
	p.expiry = p.afterFunc(d, func() {
		p.expire(ctx, handle)
	})
	return nil
}

// Release drops the lease. Releasing a lease that is not held does nothing.
func (p *PortalInhibitor) Release(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == "" {
		return nil
	}
	err := p.dropLocked()
	logging.FromContext(ctx).Info().Msg("power lease: released")
	return err
}

// IsHeld reports whether a lease is active and not past its deadline.
func (p *PortalInhibitor) IsHeld() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.heldLocked()
}

func (p *PortalInhibitor) heldLocked() bool {
	return p.handle != "" && p.now().Before(p.expiresAt)
}

// dropLocked closes the portal request and clears lease state. Caller holds mu.
func (p *PortalInhibitor) dropLocked() error {
	if p.expiry != nil {
		p.expiry.Stop()
		p.expiry = nil
	}
	if p.stopWatch != nil {
		p.stopWatch()
		p.stopWatch = nil
	}

	var err error
	if p.handle != "" && !p.completed && p.bus != nil {
		if cerr := p.bus.CloseRequest(p.handle); cerr != nil {
			err = fmt.Errorf("portal close request: %w", cerr)
		}
	}
	p.handle = ""
	p.completed = false
	p.expiresAt = time.Time{}
	return err
}

func (p *PortalInhibitor) expire(ctx context.Context, handle dbus.ObjectPath) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A renewal may have raced with this timer.
	if p.handle != handle || p.now().Before(p.expiresAt) {
		return
	}
	if err := p.dropLocked(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("power lease: failed to close expired lease")
		return
	}
	logging.FromContext(ctx).Info().Msg("power lease: expired")
}

// awaitResponse records that the portal completed the request, which
// removes the Request object. Closing it afterwards would fail.
func (p *PortalInhibitor) awaitResponse(ctx, watchCtx context.Context, handle dbus.ObjectPath, done <-chan struct{}) {
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-watchCtx.Done():
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == handle {
		p.completed = true
		logging.FromContext(ctx).Debug().Str("handle", string(handle)).Msg("power lease: request completed by portal")
	}
}

// ProbeName implements port.ServiceProbe.
func (p *PortalInhibitor) ProbeName() string {
	return "Power lease (xdg-desktop-portal Inhibit)"
}

// Probe implements port.ServiceProbe.
func (p *PortalInhibitor) Probe(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.supported {
		return "", port.ErrPowerUnavailable
	}
	return fmt.Sprintf("portal version %d", p.version), nil
}

// Close releases any lease and the D-Bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_ = p.dropLocked()
	p.supported = false
	if p.bus == nil {
		return nil
	}
	err := p.bus.Close()
	p.bus = nil
	return err
}
