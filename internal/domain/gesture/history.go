package gesture

import "github.com/synergy360/kiosk/internal/domain/entity"

// TapHistory is a fixed-capacity ring of the most recent qualifying taps.
// Appending to a full ring overwrites the oldest entry.
type TapHistory struct {
	buf   []entity.Corner
	start int
	n     int
}

// NewTapHistory returns an empty history holding at most capacity taps.
func NewTapHistory(capacity int) *TapHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &TapHistory{buf: make([]entity.Corner, capacity)}
}

// Push appends c, dropping the oldest tap when the ring is full.
func (h *TapHistory) Push(c entity.Corner) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = c
		h.n++
		return
	}
	h.buf[h.start] = c
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of taps held.
func (h *TapHistory) Len() int {
	return h.n
}

// Cap returns the ring capacity.
func (h *TapHistory) Cap() int {
	return len(h.buf)
}

// At returns the i-th tap, oldest first.
func (h *TapHistory) At(i int) entity.Corner {
	if i < 0 || i >= h.n {
		return entity.CornerNone
	}
	return h.buf[(h.start+i)%len(h.buf)]
}

// Equals reports whether the history holds exactly seq, in order.
func (h *TapHistory) Equals(seq []entity.Corner) bool {
	if h.n != len(seq) {
		return false
	}
	for i, c := range seq {
		if h.At(i) != c {
			return false
		}
	}
	return true
}

// Snapshot copies the taps out, oldest first.
func (h *TapHistory) Snapshot() []entity.Corner {
	out := make([]entity.Corner, h.n)
	for i := range out {
		out[i] = h.At(i)
	}
	return out
}

// Clear empties the history.
func (h *TapHistory) Clear() {
	h.start = 0
	h.n = 0
}
