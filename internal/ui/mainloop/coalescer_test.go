package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/synergy360/kiosk/internal/infrastructure/scheduler"
)

func newManual() *scheduler.Manual {
	return scheduler.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestCoalescer_MergesBurstIntoSingleRun(t *testing.T) {
	sched := newManual()
	c := NewCoalescer(sched)

	runs, value := 0, 0
	for i := 1; i <= 5; i++ {
		c.Post("reachability", func() {
			runs++
			value = i
		})
	}
	sched.Flush()

	assert.Equal(t, 1, runs)
	assert.Equal(t, 5, value)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	sched := newManual()
	c := NewCoalescer(sched)

	var got []string
	c.Post("a", func() { got = append(got, "a") })
	c.Post("b", func() { got = append(got, "b") })
	sched.Flush()

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCoalescer_PostAfterRunSchedulesAgain(t *testing.T) {
	sched := newManual()
	c := NewCoalescer(sched)

	runs := 0
	c.Post("k", func() { runs++ })
	sched.Flush()
	c.Post("k", func() { runs++ })
	sched.Flush()

	assert.Equal(t, 2, runs)
}

func TestCoalescer_DropsWorkAfterClose(t *testing.T) {
	sched := newManual()
	c := NewCoalescer(sched)

	ran := false
	c.Post("k", func() { ran = true })
	c.Close()
	sched.Flush()
	c.Post("k", func() { ran = true })
	sched.Flush()

	assert.False(t, ran)
}

func TestCoalescer_NilSchedulerIsNoop(t *testing.T) {
	c := NewCoalescer(nil)
	assert.NotPanics(t, func() { c.Post("k", func() {}) })
}
