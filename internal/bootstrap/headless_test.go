package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/synergy360/kiosk/internal/application/usecase"
	"github.com/synergy360/kiosk/internal/domain/entity"
	"github.com/synergy360/kiosk/internal/infrastructure/scheduler"
)

func TestCountingSurface_EndsRunAfterLimit(t *testing.T) {
	sched := scheduler.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	closed := 0
	surface := &countingSurface{ctx: context.Background(), limit: 3, done: func() { closed++ }}

	manager := usecase.NewPowerCycleManager(usecase.PowerCycleDeps{
		Surface:   surface,
		Scheduler: sched,
	}, time.Minute, time.Hour)
	manager.Start(context.Background())

	sched.Advance(time.Minute)
	assert.Equal(t, entity.PowerAsleep, manager.State())
	assert.Equal(t, 1, surface.toggles)

	sched.Advance(time.Minute)
	assert.Equal(t, entity.PowerAwake, manager.State())
	assert.Equal(t, 0, closed)

	sched.Advance(time.Minute)
	assert.Equal(t, 3, surface.toggles)
	assert.Equal(t, 1, closed)
}

func TestCountingSurface_NoLimit(t *testing.T) {
	surface := &countingSurface{ctx: context.Background(), done: func() { t.Fatal("unexpected stop") }}

	for range 10 {
		_ = surface.PauseTimers(context.Background())
	}
	assert.Equal(t, 10, surface.toggles)
}
