// Package scheduler provides a virtual-clock port.Scheduler for driving the
// kiosk state machines in tests.
package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/synergy360/kiosk/internal/application/port"
)

// Compile-time interface check.
var _ port.Scheduler = (*Manual)(nil)

// Manual is a scheduler driven by a virtual clock. Nothing fires until
// Advance or Flush is called, which makes timer-driven code deterministic.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
	posted []func()
}

// NewManual returns a manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn at Now()+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) port.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, when: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Post queues fn until the next Flush or Advance.
func (m *Manual) Post(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.posted = append(m.posted, fn)
	m.mu.Unlock()
}

// Pending returns the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// NextDeadline returns the deadline of the earliest pending timer.
func (m *Manual) NextDeadline() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.timers) == 0 {
		return time.Time{}, false
	}
	m.sortLocked()
	return m.timers[0].when, true
}

// Flush runs posted tasks, including tasks posted while flushing.
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		if len(m.posted) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.posted[0]
		m.posted = m.posted[1:]
		m.mu.Unlock()
		fn()
	}
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// Timers scheduled by a firing callback fire too if they fall due within d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.Flush()

		m.mu.Lock()
		if len(m.timers) == 0 {
			break
		}
		m.sortLocked()
		next := m.timers[0]
		if next.when.After(target) {
			break
		}
		m.timers = m.timers[1:]
		m.now = next.when
		m.mu.Unlock()

		next.fn()
	}
	m.now = target
	m.mu.Unlock()
	m.Flush()
}

func (m *Manual) sortLocked() {
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].when.Equal(m.timers[j].when) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].when.Before(m.timers[j].when)
	})
}

func (m *Manual) remove(t *manualTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, pending := range m.timers {
		if pending == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	m    *Manual
	when time.Time
	seq  uint64
	fn   func()
}

func (t *manualTimer) Stop() bool {
	return t.m.remove(t)
}
