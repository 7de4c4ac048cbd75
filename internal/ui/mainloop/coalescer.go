// Package mainloop hands work from background goroutines to the UI thread.
package mainloop

import (
	"sync"

	"github.com/synergy360/kiosk/internal/application/port"
)

// Coalescer merges bursts of same-key tasks into one run on the scheduler.
// Only the latest task posted for a key before it runs is executed.
type Coalescer struct {
	mu        sync.Mutex
	scheduler port.Scheduler
	latest    map[string]func()
	closed    bool
}

// NewCoalescer posts onto s, typically the GTK main loop.
func NewCoalescer(s port.Scheduler) *Coalescer {
	return &Coalescer{
		scheduler: s,
		latest:    make(map[string]func()),
	}
}

// Post schedules fn under key unless a task for key is already waiting, in
// which case fn replaces it.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || c.scheduler == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, waiting := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if waiting {
		return
	}
	c.scheduler.Post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.latest, key)
	closed := c.closed
	c.mu.Unlock()

	if fn != nil && !closed {
		fn()
	}
}

// Close drops waiting tasks and ignores later posts.
func (c *Coalescer) Close() {
	c.mu.Lock()
	c.closed = true
	clear(c.latest)
	c.mu.Unlock()
}
