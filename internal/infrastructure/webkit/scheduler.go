package webkit

import (
	"sync/atomic"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/synergy360/kiosk/internal/application/port"
)

// Compile-time interface check.
var _ port.Scheduler = MainLoopScheduler{}

// MainLoopScheduler runs callbacks on the GLib main loop, which is the
// thread GTK and WebKit require.
type MainLoopScheduler struct{}

// AfterFunc schedules fn once on the main loop after d.
func (MainLoopScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &sourceTimer{}
	ms := uint(d / time.Millisecond)
	t.handle = glib.TimeoutAdd(ms, func() bool {
		if t.done.CompareAndSwap(false, true) {
			fn()
		}
		return false
	})
	return t
}

// Post runs fn on the next main loop iteration.
func (MainLoopScheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

type sourceTimer struct {
	handle glib.SourceHandle
	done   atomic.Bool
}

// Stop removes the source. Removing a source that already ran makes GLib
// log a critical, hence the done flag.
func (t *sourceTimer) Stop() bool {
	if !t.done.CompareAndSwap(false, true) {
		return false
	}
	glib.SourceRemove(t.handle)
	return true
}
