package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/domain/entity"
	"github.com/synergy360/kiosk/internal/logging"
)

const (
	// DefaultSleepInterval is the idle time between sleep/wake toggles.
	DefaultSleepInterval = 2 * time.Minute
	// DefaultLeaseDuration bounds each power lease acquisition.
	DefaultLeaseDuration = 10 * time.Minute
)

// PowerCycleDeps are the collaborators of the power cycle. Any of Power,
// Surface and Display may be nil; the matching side effects are skipped.
type PowerCycleDeps struct {
	Power     port.PowerResource
	Surface   port.RenderingSurface
	Display   port.DisplayDirectives
	Scheduler port.Scheduler
}

// PowerCycleManager toggles the kiosk between AWAKE and ASLEEP each time the
// idle timer fires. User activity (ResetTimer) wakes it and restarts the
// countdown.
//
// While AWAKE a second timer re-acquires the bounded power lease every half
// lease, so an awake period longer than the lease stays covered.
//
// All transitions happen under mu. gen is bumped whenever the pending timer is
// replaced, so a tick that was already dispatched when it got superseded is
// dropped instead of toggling the state. renewGen does the same for renewals.
type PowerCycleManager struct {
	mu sync.Mutex

	power     port.PowerResource
	surface   port.RenderingSurface
	display   port.DisplayDirectives
	scheduler port.Scheduler

	interval time.Duration
	lease    time.Duration

	ctx     context.Context
	state   entity.PowerState
	running bool
	timer   port.Timer
	gen     uint64

	renewal  port.Timer
	renewGen uint64
}

// NewPowerCycleManager creates a stopped manager in the AWAKE state.
// Non-positive durations fall back to the defaults.
func NewPowerCycleManager(deps PowerCycleDeps, interval, lease time.Duration) *PowerCycleManager {
	if interval <= 0 {
		interval = DefaultSleepInterval
	}
	if lease <= 0 {
		lease = DefaultLeaseDuration
	}
	return &PowerCycleManager{
		power:     deps.Power,
		surface:   deps.Surface,
		display:   deps.Display,
		scheduler: deps.Scheduler,
		interval:  interval,
		lease:     lease,
		ctx:       context.Background(),
		state:     entity.PowerAwake,
	}
}

// Start takes the power lease and arms the first idle timer. Calling Start on
// a running manager does nothing.
func (m *PowerCycleManager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.ctx = logging.WithComponent(ctx, "power-cycle")
	m.running = true
	m.renewLease()
	m.armRenewal()
	m.arm()

	logging.FromContext(m.ctx).Info().
		Dur("interval", m.interval).
		Dur("lease", m.lease).
		Msg("power cycle started")
}

// Stop cancels the pending tick, wakes the kiosk if it is asleep and drops
// the power lease. No tick fires after Stop returns. Stopping a stopped
// manager does nothing.
func (m *PowerCycleManager) Stop(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.running = false
	m.cancel()
	m.cancelRenewal()

	if m.state == entity.PowerAsleep {
		m.wakeUp()
	}
	m.releaseLease()

	logging.FromContext(ctx).Info().Msg("power cycle stopped")
}

// ResetTimer records user activity: it wakes the kiosk if asleep and
// restarts the idle countdown from now. It is a no-op while stopped.
func (m *PowerCycleManager) ResetTimer(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	if m.state == entity.PowerAsleep {
		logging.FromContext(ctx).Debug().Msg("activity while asleep, waking")
		m.wakeUp()
	} else {
		m.renewLease()
	}
	m.arm()
}

// State returns the current power state.
func (m *PowerCycleManager) State() entity.PowerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsRunning reports whether ticks are armed.
func (m *PowerCycleManager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// arm replaces the pending timer with a fresh one. Caller holds mu.
func (m *PowerCycleManager) arm() {
	m.cancel()
	if m.scheduler == nil {
		return
	}
	gen := m.gen
	m.timer = m.scheduler.AfterFunc(m.interval, func() {
		m.onTick(gen)
	})
}

// cancel stops the pending timer and invalidates any in-flight tick. Caller holds mu.
func (m *PowerCycleManager) cancel() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
}

// armRenewal schedules the next lease refresh while AWAKE. Caller holds mu.
func (m *PowerCycleManager) armRenewal() {
	m.cancelRenewal()
	if m.power == nil || m.scheduler == nil || !m.running || m.state != entity.PowerAwake {
		return
	}
	gen := m.renewGen
	m.renewal = m.scheduler.AfterFunc(m.lease/2, func() {
		m.onRenew(gen)
	})
}

// cancelRenewal stops the pending refresh. Caller holds mu.
func (m *PowerCycleManager) cancelRenewal() {
	if m.renewal != nil {
		m.renewal.Stop()
		m.renewal = nil
	}
	m.renewGen++
}

func (m *PowerCycleManager) onRenew(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running || gen != m.renewGen || m.state != entity.PowerAwake {
		return
	}
	m.renewal = nil

	// Acquiring a held lease restarts its deadline.
	if err := m.power.Acquire(m.ctx, m.lease); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to refresh power lease")
	}
	m.armRenewal()
}

func (m *PowerCycleManager) onTick(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running || gen != m.gen {
		return
	}
	m.timer = nil

	switch m.state {
	case entity.PowerAwake:
		m.sleep()
	case entity.PowerAsleep:
		m.wakeUp()
	}
	m.arm()
}

// sleep enters ASLEEP. Caller holds mu.
func (m *PowerCycleManager) sleep() {
	log := logging.FromContext(m.ctx)
	log.Info().Msg("idle interval elapsed, sleeping")
	m.cancelRenewal()

	if m.surface != nil {
		if err := m.surface.Pause(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to pause surface")
		}
		if err := m.surface.PauseTimers(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to pause surface timers")
		}
	}

	m.releaseLease()

	if m.display != nil {
		if err := m.display.SetKeepScreenOn(m.ctx, false); err != nil {
			log.Warn().Err(err).Msg("failed to clear keep-screen-on")
		}
	}

	m.state = entity.PowerAsleep
}

// wakeUp enters AWAKE and reloads the page. Caller holds mu.
func (m *PowerCycleManager) wakeUp() {
	log := logging.FromContext(m.ctx)
	log.Info().Msg("waking up")

	m.renewLease()

	if m.display != nil {
		if err := m.display.SetKeepScreenOn(m.ctx, true); err != nil {
			log.Warn().Err(err).Msg("failed to set keep-screen-on")
		}
		if err := m.display.TurnScreenOn(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to turn screen on")
		}
		if err := m.display.SetShowOverLock(m.ctx, true); err != nil {
			log.Warn().Err(err).Msg("failed to show over lock")
		}
	}

	if m.surface != nil {
		if err := m.surface.ResumeTimers(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to resume surface timers")
		}
		if err := m.surface.Resume(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to resume surface")
		}
		if err := m.surface.Reload(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to reload surface")
		}
	}

	m.state = entity.PowerAwake
	m.armRenewal()
}

// renewLease acquires the power lease unless it is still held. Caller holds mu.
func (m *PowerCycleManager) renewLease() {
	if m.power == nil || m.power.IsHeld() {
		return
	}
	if err := m.power.Acquire(m.ctx, m.lease); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to acquire power lease")
	}
}

// releaseLease drops the power lease if held. Caller holds mu.
func (m *PowerCycleManager) releaseLease() {
	if m.power == nil || !m.power.IsHeld() {
		return
	}
	if err := m.power.Release(m.ctx); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to release power lease")
	}
}
