package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/domain/entity"
	"github.com/synergy360/kiosk/internal/infrastructure/scheduler"
)

const (
	testInterval = 2 * time.Minute
	testLease    = 10 * time.Minute
)

var epoch = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

// callLog records side effects from every fake in call order.
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) { l.calls = append(l.calls, call) }

func (l *callLog) take() []string {
	out := l.calls
	l.calls = nil
	return out
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakePower struct {
	log      *callLog
	held     bool
	acquired []time.Duration
	err      error
}

func (p *fakePower) Acquire(_ context.Context, d time.Duration) error {
	p.log.add("acquire")
	p.acquired = append(p.acquired, d)
	if p.err != nil {
		return p.err
	}
	p.held = true
	return nil
}

func (p *fakePower) Release(context.Context) error {
	p.log.add("release")
	p.held = false
	return nil
}

func (p *fakePower) IsHeld() bool { return p.held }

type fakeSurface struct {
	log *callLog
	err error
}

func (s *fakeSurface) Pause(context.Context) error        { s.log.add("pause"); return s.err }
func (s *fakeSurface) Resume(context.Context) error       { s.log.add("resume"); return s.err }
func (s *fakeSurface) PauseTimers(context.Context) error  { s.log.add("pause_timers"); return s.err }
func (s *fakeSurface) ResumeTimers(context.Context) error { s.log.add("resume_timers"); return s.err }
func (s *fakeSurface) Reload(context.Context) error       { s.log.add("reload"); return s.err }

type fakeDisplay struct {
	log *callLog
	err error
}

func (d *fakeDisplay) SetKeepScreenOn(_ context.Context, on bool) error {
	if on {
		d.log.add("keep_on")
	} else {
		d.log.add("keep_off")
	}
	return d.err
}

func (d *fakeDisplay) TurnScreenOn(context.Context) error {
	d.log.add("turn_on")
	return d.err
}

func (d *fakeDisplay) SetShowOverLock(_ context.Context, on bool) error {
	if on {
		d.log.add("over_lock")
	}
	return d.err
}

var (
	sleepCalls = []string{"pause", "pause_timers", "release", "keep_off"}
	wakeCalls  = []string{"acquire", "keep_on", "turn_on", "over_lock", "resume_timers", "resume", "reload"}
)

type powerFixture struct {
	log     *callLog
	power   *fakePower
	surface *fakeSurface
	display *fakeDisplay
	sched   *scheduler.Manual
	mgr     *PowerCycleManager
}

func newPowerFixture(t *testing.T) *powerFixture {
	t.Helper()
	log := &callLog{}
	f := &powerFixture{
		log:     log,
		power:   &fakePower{log: log},
		surface: &fakeSurface{log: log},
		display: &fakeDisplay{log: log},
		sched:   scheduler.NewManual(epoch),
	}
	f.mgr = NewPowerCycleManager(PowerCycleDeps{
		Power:     f.power,
		Surface:   f.surface,
		Display:   f.display,
		Scheduler: f.sched,
	}, testInterval, testLease)
	return f
}

func TestPowerCycleManager_StartArmsOneTimerAndTakesLease(t *testing.T) {
	f := newPowerFixture(t)

	f.mgr.Start(context.Background())

	assert.True(t, f.mgr.IsRunning())
	assert.Equal(t, entity.PowerAwake, f.mgr.State())
	assert.Equal(t, 2, f.sched.Pending(), "idle tick and lease refresh")
	assert.Equal(t, []string{"acquire"}, f.log.take())
	assert.Equal(t, []time.Duration{10 * time.Minute}, f.power.acquired)

	deadline, ok := f.sched.NextDeadline()
	require.True(t, ok)
	assert.Equal(t, epoch.Add(testInterval), deadline)
}

func TestPowerCycleManager_StartIsIdempotent(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()

	f.mgr.Start(ctx)
	f.mgr.Start(ctx)

	assert.Equal(t, 2, f.sched.Pending())
	assert.Equal(t, 1, f.log.count("acquire"))
}

func TestPowerCycleManager_AlternatesWithoutDrift(t *testing.T) {
	f := newPowerFixture(t)
	f.mgr.Start(context.Background())
	f.log.take()

	for cycle := 1; cycle <= 6; cycle++ {
		f.sched.Advance(testInterval)

		if cycle%2 == 1 {
			assert.Equal(t, entity.PowerAsleep, f.mgr.State(), "cycle %d", cycle)
			assert.Equal(t, sleepCalls, f.log.take(), "cycle %d", cycle)
			assert.Equal(t, 1, f.sched.Pending(), "cycle %d: no lease refresh while asleep", cycle)
		} else {
			assert.Equal(t, entity.PowerAwake, f.mgr.State(), "cycle %d", cycle)
			assert.Equal(t, wakeCalls, f.log.take(), "cycle %d", cycle)
			assert.Equal(t, 2, f.sched.Pending(), "cycle %d", cycle)
		}

		deadline, ok := f.sched.NextDeadline()
		require.True(t, ok)
		assert.Equal(t, epoch.Add(time.Duration(cycle+1)*testInterval), deadline, "cycle %d", cycle)
	}
}

func TestPowerCycleManager_ResetWhileAsleepWakesOnce(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.sched.Advance(testInterval)
	require.Equal(t, entity.PowerAsleep, f.mgr.State())
	f.log.take()

	f.sched.Advance(30 * time.Second)
	f.mgr.ResetTimer(ctx)

	assert.Equal(t, entity.PowerAwake, f.mgr.State())
	assert.Equal(t, wakeCalls, f.log.take())
	assert.Equal(t, 2, f.sched.Pending(), "one idle tick plus the lease refresh")

	deadline, ok := f.sched.NextDeadline()
	require.True(t, ok)
	assert.Equal(t, f.sched.Now().Add(testInterval), deadline)
}

func TestPowerCycleManager_ResetWhileAwakeRestartsCountdown(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.log.take()

	f.sched.Advance(testInterval - time.Second)
	f.mgr.ResetTimer(ctx)
	f.sched.Advance(testInterval - 2*time.Second)

	assert.Equal(t, entity.PowerAwake, f.mgr.State())
	assert.Empty(t, f.log.take(), "awake reset with a held lease has no side effects")

	f.sched.Advance(2 * time.Second)
	assert.Equal(t, entity.PowerAsleep, f.mgr.State())
}

func TestPowerCycleManager_ResetRenewsLapsedLease(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.log.take()

	f.power.held = false
	f.mgr.ResetTimer(ctx)

	assert.Equal(t, []string{"acquire"}, f.log.take())
	assert.True(t, f.power.IsHeld())
}

func TestPowerCycleManager_ResetBeforeStartIsNoop(t *testing.T) {
	f := newPowerFixture(t)

	f.mgr.ResetTimer(context.Background())

	assert.Zero(t, f.sched.Pending())
	assert.Empty(t, f.log.take())
	assert.False(t, f.mgr.IsRunning())
}

func TestPowerCycleManager_StopTwiceEqualsOnce(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.sched.Advance(testInterval)
	require.Equal(t, entity.PowerAsleep, f.mgr.State())
	f.log.take()

	f.mgr.Stop(ctx)
	first := f.log.take()
	f.mgr.Stop(ctx)
	second := f.log.take()

	assert.Equal(t, append(append([]string{}, wakeCalls...), "release"), first)
	assert.Empty(t, second)
	assert.Equal(t, entity.PowerAwake, f.mgr.State())
	assert.False(t, f.mgr.IsRunning())
	assert.False(t, f.power.IsHeld())
	assert.Zero(t, f.sched.Pending())

	f.sched.Advance(10 * testInterval)
	assert.Empty(t, f.log.take(), "no tick after stop")
}

func TestPowerCycleManager_StopWhileAwakeDoesNotReload(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.log.take()

	f.mgr.Stop(ctx)

	assert.Equal(t, []string{"release"}, f.log.take())
}

func TestPowerCycleManager_RestartAfterStop(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.mgr.Stop(ctx)
	f.mgr.Start(ctx)

	assert.True(t, f.mgr.IsRunning())
	assert.Equal(t, 2, f.sched.Pending())
	f.sched.Advance(testInterval)
	assert.Equal(t, entity.PowerAsleep, f.mgr.State())
}

// captureScheduler hands out timers whose Stop always reports that the
// callback was already dispatched, which is the race a stale tick exploits.
type captureScheduler struct {
	callbacks []func()
}

type dispatchedTimer struct{}

func (dispatchedTimer) Stop() bool { return false }

func (s *captureScheduler) AfterFunc(_ time.Duration, fn func()) port.Timer {
	s.callbacks = append(s.callbacks, fn)
	return dispatchedTimer{}
}

func (s *captureScheduler) Post(fn func()) { fn() }

func TestPowerCycleManager_SupersededTickIsDropped(t *testing.T) {
	sched := &captureScheduler{}
	log := &callLog{}
	mgr := NewPowerCycleManager(PowerCycleDeps{
		Power:     &fakePower{log: log},
		Surface:   &fakeSurface{log: log},
		Scheduler: sched,
	}, testInterval, 0)
	ctx := context.Background()

	// Start schedules the idle tick then the lease refresh; the reset
	// supersedes the first tick.
	mgr.Start(ctx)
	mgr.ResetTimer(ctx)
	require.Len(t, sched.callbacks, 3)
	log.take()

	sched.callbacks[0]()
	assert.Equal(t, entity.PowerAwake, mgr.State(), "stale tick must not toggle")
	assert.Empty(t, log.take())

	sched.callbacks[2]()
	assert.Equal(t, entity.PowerAsleep, mgr.State())

	mgr.Stop(ctx)
	last := sched.callbacks[len(sched.callbacks)-1]
	last()
	assert.Equal(t, entity.PowerAwake, mgr.State(), "tick after stop must not toggle")
}

func TestPowerCycleManager_AdapterErrorsAreSwallowed(t *testing.T) {
	f := newPowerFixture(t)
	boom := errors.New("boom")
	f.surface.err = boom
	f.display.err = boom
	f.power.err = port.ErrPowerUnavailable
	ctx := context.Background()

	f.mgr.Start(ctx)
	f.sched.Advance(testInterval)
	assert.Equal(t, entity.PowerAsleep, f.mgr.State())

	f.sched.Advance(testInterval)
	assert.Equal(t, entity.PowerAwake, f.mgr.State())
	assert.Equal(t, 2, f.sched.Pending())
}

func TestPowerCycleManager_NilCollaborators(t *testing.T) {
	sched := scheduler.NewManual(epoch)
	mgr := NewPowerCycleManager(PowerCycleDeps{Scheduler: sched}, 0, 0)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		mgr.Start(ctx)
		sched.Advance(DefaultSleepInterval)
		mgr.ResetTimer(ctx)
		mgr.Stop(ctx)
	})
	assert.Equal(t, entity.PowerAwake, mgr.State())
}

// expiringPower is a lease that lapses on the manual clock unless renewed.
type expiringPower struct {
	sched     *scheduler.Manual
	expiresAt time.Time
	acquires  int
}

func (p *expiringPower) Acquire(_ context.Context, d time.Duration) error {
	p.acquires++
	p.expiresAt = p.sched.Now().Add(d)
	return nil
}

func (p *expiringPower) Release(context.Context) error {
	p.expiresAt = time.Time{}
	return nil
}

func (p *expiringPower) IsHeld() bool { return p.sched.Now().Before(p.expiresAt) }

func TestPowerCycleManager_AwakeLongerThanLeaseKeepsLeaseHeld(t *testing.T) {
	sched := scheduler.NewManual(epoch)
	power := &expiringPower{sched: sched}
	mgr := NewPowerCycleManager(PowerCycleDeps{
		Power:     power,
		Scheduler: sched,
	}, 30*time.Minute, 10*time.Minute)
	ctx := context.Background()

	mgr.Start(ctx)

	for elapsed := time.Minute; elapsed < 30*time.Minute; elapsed += time.Minute {
		sched.Advance(time.Minute)
		require.Equal(t, entity.PowerAwake, mgr.State(), "at %s", elapsed)
		require.True(t, power.IsHeld(), "lease lapsed at %s while awake", elapsed)
	}
	assert.Equal(t, 6, power.acquires, "start plus a refresh every 5m")

	sched.Advance(time.Minute)
	assert.Equal(t, entity.PowerAsleep, mgr.State())
	assert.False(t, power.IsHeld())

	sched.Advance(20 * time.Minute)
	assert.Equal(t, 6, power.acquires, "no refresh while asleep")
	assert.Equal(t, 1, sched.Pending())
}

func TestPowerCycleManager_ActivityKeepsLeaseAcrossLongSession(t *testing.T) {
	sched := scheduler.NewManual(epoch)
	power := &expiringPower{sched: sched}
	mgr := NewPowerCycleManager(PowerCycleDeps{
		Power:     power,
		Scheduler: sched,
	}, testInterval, testLease)
	ctx := context.Background()
	mgr.Start(ctx)

	for range 60 {
		sched.Advance(time.Minute)
		mgr.ResetTimer(ctx)
		require.Equal(t, entity.PowerAwake, mgr.State())
		require.True(t, power.IsHeld())
	}
}
