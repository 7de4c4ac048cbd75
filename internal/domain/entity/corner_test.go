package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synergy360/kiosk/internal/domain/entity"
)

func TestClassifyCorner_PortraitTablet(t *testing.T) {
	vp := entity.Viewport{Width: 1080, Height: 1920}

	tests := []struct {
		name string
		x, y float64
		want entity.Corner
	}{
		{"top left", 50, 50, entity.CornerTopLeft},
		{"top right", 1000, 50, entity.CornerTopRight},
		{"bottom left", 50, 1900, entity.CornerBottomLeft},
		{"bottom right", 1000, 1900, entity.CornerBottomRight},
		{"middle", 500, 960, entity.CornerNone},
		{"top edge center", 540, 10, entity.CornerNone},
		{"left edge center", 10, 960, entity.CornerNone},
		{"on threshold boundary", 150, 150, entity.CornerNone},
		{"just inside threshold", 149.9, 149.9, entity.CornerTopLeft},
		{"negative coordinates", -10, -10, entity.CornerNone},
		{"beyond right edge", 1200, 50, entity.CornerNone},
		{"beyond bottom edge", 1000, 2000, entity.CornerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.ClassifyCorner(tt.x, tt.y, vp, 150))
		})
	}
}

func TestClassifyCorner_DegenerateInputs(t *testing.T) {
	assert.Equal(t, entity.CornerNone, entity.ClassifyCorner(10, 10, entity.Viewport{}, 150))
	assert.Equal(t, entity.CornerNone, entity.ClassifyCorner(10, 10, entity.Viewport{Width: -5, Height: 100}, 150))
	assert.Equal(t, entity.CornerNone, entity.ClassifyCorner(10, 10, entity.Viewport{Width: 1080, Height: 1920}, 0))
	// Regions would overlap on a 200px wide viewport with a 150px threshold.
	assert.Equal(t, entity.CornerNone, entity.ClassifyCorner(10, 10, entity.Viewport{Width: 200, Height: 1920}, 150))
}

func TestCorner_String(t *testing.T) {
	assert.Equal(t, "top_left", entity.CornerTopLeft.String())
	assert.Equal(t, "bottom_right", entity.CornerBottomRight.String())
	assert.Equal(t, "none", entity.CornerNone.String())
	assert.Equal(t, "none", entity.Corner(42).String())
}

func TestPowerState_Toggle(t *testing.T) {
	assert.Equal(t, entity.PowerAsleep, entity.PowerAwake.Toggle())
	assert.Equal(t, entity.PowerAwake, entity.PowerAsleep.Toggle())
	assert.Equal(t, "awake", entity.PowerAwake.String())
	assert.Equal(t, "asleep", entity.PowerAsleep.String())
}
