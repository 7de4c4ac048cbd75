package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/application/port/mocks"
	"github.com/synergy360/kiosk/internal/domain/entity"
)

func TestExitKioskUseCase_TearsDownAndQuits(t *testing.T) {
	f := newPowerFixture(t)
	ctx := context.Background()
	f.mgr.Start(ctx)
	f.sched.Advance(testInterval)
	require.Equal(t, entity.PowerAsleep, f.mgr.State())
	f.log.take()

	quit := 0
	uc := NewExitKioskUseCase(ExitKioskDeps{
		PowerCycle: f.mgr,
		Power:      f.power,
		Display:    f.display,
		Quit:       func() { quit++ },
	})

	require.NoError(t, uc.Execute(ctx))

	assert.Equal(t, 1, quit)
	assert.False(t, f.mgr.IsRunning())
	assert.Equal(t, entity.PowerAwake, f.mgr.State())
	assert.False(t, f.power.IsHeld())
	assert.Equal(t, 1, f.log.count("release"), "lease released exactly once")
	assert.Equal(t, "keep_off", f.log.calls[len(f.log.calls)-1])
	assert.Zero(t, f.sched.Pending())
}

func TestExitKioskUseCase_ReportsDisplayErrorsButStillQuits(t *testing.T) {
	display := mocks.NewMockDisplayDirectives(t)
	display.EXPECT().SetKeepScreenOn(mock.Anything, false).Return(port.ErrDisplayUnavailable).Once()
	display.EXPECT().SetShowOverLock(mock.Anything, false).Return(nil).Once()

	quit := false
	uc := NewExitKioskUseCase(ExitKioskDeps{
		Display: display,
		Quit:    func() { quit = true },
	})

	err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrDisplayUnavailable))
	assert.True(t, quit)
}

func TestExitKioskUseCase_StopsSiteRetries(t *testing.T) {
	sf := newSiteFixture(t)
	sf.reach.EXPECT().IsReachable(mock.Anything).Return(false).Once()
	sf.offline.EXPECT().ShowOffline().Return().Once()
	sf.site.Load(context.Background())
	require.Equal(t, 1, sf.sched.Pending())

	uc := NewExitKioskUseCase(ExitKioskDeps{Site: sf.site})
	require.NoError(t, uc.Execute(context.Background()))

	assert.Zero(t, sf.sched.Pending())
}
