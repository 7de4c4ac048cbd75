package port

import "time"

// Timer is a handle to one scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false when the callback already
	// ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks on a single logical thread. Callbacks scheduled on
// the same Scheduler never run concurrently with each other.
type Scheduler interface {
	// AfterFunc runs fn once, d from now.
	AfterFunc(d time.Duration, fn func()) Timer
	// Post runs fn as soon as possible.
	Post(fn func())
}
