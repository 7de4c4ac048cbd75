// Package gesture recognizes the hidden corner-tap sequence that unlocks kiosk mode.
package gesture

import (
	"time"

	"github.com/synergy360/kiosk/internal/domain/entity"
)

const (
	// DefaultThreshold is the side, in logical pixels, of each corner region.
	DefaultThreshold = 150.0
	// DefaultTimeout is the largest gap allowed between two taps of one attempt.
	DefaultTimeout = 10 * time.Second
)

// requiredSequence is the unlock gesture. Never mutated.
var requiredSequence = [...]entity.Corner{
	entity.CornerTopLeft,
	entity.CornerTopRight,
	entity.CornerBottomLeft,
	entity.CornerBottomRight,
}

// RequiredSequence returns a copy of the unlock gesture.
func RequiredSequence() []entity.Corner {
	seq := requiredSequence
	return seq[:]
}

// Option configures a Detector.
type Option func(*Detector)

// WithThreshold sets the corner region size.
func WithThreshold(px float64) Option {
	return func(d *Detector) {
		if px > 0 {
			d.threshold = px
		}
	}
}

// WithTimeout sets the maximum gap between taps.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Detector) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// Detector is the corner-tap state machine. It is not safe for concurrent use;
// the host feeds it from its single UI thread.
type Detector struct {
	threshold float64
	timeout   time.Duration
	history   *TapHistory
	lastEvent time.Time
}

// NewDetector returns a detector with an empty history.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		threshold: DefaultThreshold,
		timeout:   DefaultTimeout,
		history:   NewTapHistory(len(requiredSequence)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Result is the outcome of one pointer-down.
type Result struct {
	// Corner is the region the event was classified into.
	Corner entity.Corner
	// Completed is true when the event finished the unlock sequence.
	Completed bool
}

// OnPointerDown feeds one pointer-down event and reports whether it completed
// the unlock sequence.
func (d *Detector) OnPointerDown(ev entity.PointerEvent, vp entity.Viewport) bool {
	return d.Feed(ev, vp).Completed
}

// Feed is OnPointerDown returning the classified corner as well. The timeout
// is checked on every event, corner or not, and every event refreshes the
// timeout clock.
func (d *Detector) Feed(ev entity.PointerEvent, vp entity.Viewport) Result {
	if ev.At.Sub(d.lastEvent) > d.timeout {
		d.history.Clear()
	}
	d.lastEvent = ev.At

	res := Result{Corner: entity.ClassifyCorner(ev.X, ev.Y, vp, d.threshold)}
	if res.Corner == entity.CornerNone {
		return res
	}

	d.history.Push(res.Corner)
	if d.history.Equals(requiredSequence[:]) {
		d.history.Clear()
		res.Completed = true
	}
	return res
}

// History returns the pending taps, oldest first.
func (d *Detector) History() []entity.Corner {
	return d.history.Snapshot()
}

// Threshold returns the configured corner region size.
func (d *Detector) Threshold() float64 {
	return d.threshold
}

// Timeout returns the configured inter-tap timeout.
func (d *Detector) Timeout() time.Duration {
	return d.timeout
}

// Reset drops any partial sequence.
func (d *Detector) Reset() {
	d.history.Clear()
	d.lastEvent = time.Time{}
}
