package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []string
	m.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	m.AfterFunc(time.Second, func() { order = append(order, "a") })
	m.AfterFunc(2*time.Second, func() { order = append(order, "c") })

	m.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)
	assert.Equal(t, 2, m.Pending())

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, epoch.Add(2500*time.Millisecond), m.Now())
}

func TestManual_ChainedTimersFireWithinAdvance(t *testing.T) {
	m := NewManual(epoch)
	var fired []time.Time
	var tick func()
	tick = func() {
		fired = append(fired, m.Now())
		m.AfterFunc(time.Minute, tick)
	}
	m.AfterFunc(time.Minute, tick)

	m.Advance(3 * time.Minute)

	require.Len(t, fired, 3)
	assert.Equal(t, epoch.Add(3*time.Minute), fired[2])
	assert.Equal(t, 1, m.Pending())
}

func TestManual_StopRemovesTimer(t *testing.T) {
	m := NewManual(epoch)
	called := false
	timer := m.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	m.Advance(time.Hour)

	assert.False(t, called)
	_, ok := m.NextDeadline()
	assert.False(t, ok)
}

func TestManual_PostRunsOnFlush(t *testing.T) {
	m := NewManual(epoch)
	var got []int
	m.Post(func() {
		got = append(got, 1)
		m.Post(func() { got = append(got, 2) })
	})
	m.Post(nil)
	assert.Empty(t, got)

	m.Flush()

	assert.Equal(t, []int{1, 2}, got)
}
