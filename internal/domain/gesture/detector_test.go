package gesture_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergy360/kiosk/internal/domain/entity"
	"github.com/synergy360/kiosk/internal/domain/gesture"
)

var portrait = entity.Viewport{Width: 1080, Height: 1920}

// cornerPoints holds one point inside each corner region of portrait.
var cornerPoints = map[entity.Corner][2]float64{
	entity.CornerTopLeft:     {50, 50},
	entity.CornerTopRight:    {1000, 50},
	entity.CornerBottomLeft:  {50, 1880},
	entity.CornerBottomRight: {1000, 1880},
}

type tapper struct {
	t   *testing.T
	d   *gesture.Detector
	now time.Time
}

func newTapper(t *testing.T, opts ...gesture.Option) *tapper {
	return &tapper{t: t, d: gesture.NewDetector(opts...), now: time.Unix(1_700_000_000, 0)}
}

func (tp *tapper) tap(c entity.Corner, after time.Duration) bool {
	tp.t.Helper()
	tp.now = tp.now.Add(after)
	p, ok := cornerPoints[c]
	require.True(tp.t, ok, "no point for corner %s", c)
	return tp.d.OnPointerDown(entity.PointerEvent{X: p[0], Y: p[1], At: tp.now}, portrait)
}

func (tp *tapper) tapMiddle(after time.Duration) bool {
	tp.now = tp.now.Add(after)
	return tp.d.OnPointerDown(entity.PointerEvent{X: 540, Y: 960, At: tp.now}, portrait)
}

func TestDetector_RequiredSequenceFiresOnFourthTap(t *testing.T) {
	tp := newTapper(t)

	assert.False(t, tp.tap(entity.CornerTopLeft, time.Second))
	assert.False(t, tp.tap(entity.CornerTopRight, time.Second))
	assert.False(t, tp.tap(entity.CornerBottomLeft, time.Second))
	assert.True(t, tp.tap(entity.CornerBottomRight, time.Second))
	assert.Empty(t, tp.d.History())

	// A fifth tap does not re-fire.
	assert.False(t, tp.tap(entity.CornerBottomRight, time.Second))
	assert.Equal(t, []entity.Corner{entity.CornerBottomRight}, tp.d.History())
}

func TestDetector_SequenceCanBeRepeated(t *testing.T) {
	tp := newTapper(t)
	fired := 0
	for range 3 {
		for _, c := range gesture.RequiredSequence() {
			if tp.tap(c, 500*time.Millisecond) {
				fired++
			}
		}
	}
	assert.Equal(t, 3, fired)
}

// permutations returns every ordering of corners.
func permutations(corners []entity.Corner) [][]entity.Corner {
	if len(corners) <= 1 {
		return [][]entity.Corner{append([]entity.Corner(nil), corners...)}
	}
	var out [][]entity.Corner
	for i, first := range corners {
		rest := make([]entity.Corner, 0, len(corners)-1)
		rest = append(rest, corners[:i]...)
		rest = append(rest, corners[i+1:]...)
		for _, tail := range permutations(rest) {
			out = append(out, append([]entity.Corner{first}, tail...))
		}
	}
	return out
}

func TestDetector_OnlyRequiredOrderFires(t *testing.T) {
	required := gesture.RequiredSequence()
	perms := permutations(required)
	require.Len(t, perms, 24)

	fired := 0
	for _, perm := range perms {
		tp := newTapper(t)
		for i, c := range perm {
			got := tp.tap(c, time.Second)
			last := i == len(perm)-1
			if last && assert.ObjectsAreEqual(required, perm) {
				assert.True(t, got, "required order must fire on the fourth tap")
				fired++
				assert.Empty(t, tp.d.History())
				continue
			}
			assert.False(t, got, "permutation %v fired at tap %d", perm, i+1)
		}
		if !assert.ObjectsAreEqual(required, perm) {
			assert.Equal(t, perm, tp.d.History())
		}
	}
	assert.Equal(t, 1, fired)
}

func TestDetector_FeedReportsClassifiedCorner(t *testing.T) {
	d := gesture.NewDetector()
	now := time.Unix(0, 0)

	res := d.Feed(entity.PointerEvent{X: 1000, Y: 50, At: now}, portrait)
	assert.Equal(t, gesture.Result{Corner: entity.CornerTopRight}, res)

	res = d.Feed(entity.PointerEvent{X: 540, Y: 960, At: now}, portrait)
	assert.Equal(t, entity.CornerNone, res.Corner)

	// Corner regions would overlap on a 200px-wide viewport.
	res = d.Feed(entity.PointerEvent{X: 10, Y: 10, At: now}, entity.Viewport{Width: 200, Height: 1920})
	assert.Equal(t, entity.CornerNone, res.Corner)
	assert.Equal(t, []entity.Corner{entity.CornerTopRight}, d.History())
}

func TestDetector_SlidingWindowKeepsLastFour(t *testing.T) {
	tp := newTapper(t)

	// Leading noise is pushed out of the window by the correct sequence.
	assert.False(t, tp.tap(entity.CornerBottomRight, time.Second))
	assert.False(t, tp.tap(entity.CornerBottomRight, time.Second))
	assert.False(t, tp.tap(entity.CornerTopLeft, time.Second))
	assert.False(t, tp.tap(entity.CornerTopRight, time.Second))
	assert.False(t, tp.tap(entity.CornerBottomLeft, time.Second))
	assert.Len(t, tp.d.History(), 4)
	assert.Equal(t, []entity.Corner{
		entity.CornerBottomRight, entity.CornerTopLeft, entity.CornerTopRight, entity.CornerBottomLeft,
	}, tp.d.History())

	assert.True(t, tp.tap(entity.CornerBottomRight, time.Second))
}

func TestDetector_TimeoutResetsHistoryBeforeClassifying(t *testing.T) {
	tp := newTapper(t)

	assert.False(t, tp.tap(entity.CornerTopLeft, time.Second))
	assert.False(t, tp.tap(entity.CornerTopRight, time.Second))
	assert.False(t, tp.tap(entity.CornerBottomLeft, time.Second))

	// Gap over the timeout: the stale attempt is dropped and this tap starts a new one.
	assert.False(t, tp.tap(entity.CornerBottomRight, 10*time.Second+time.Millisecond))
	assert.Equal(t, []entity.Corner{entity.CornerBottomRight}, tp.d.History())
}

func TestDetector_GapEqualToTimeoutKeepsHistory(t *testing.T) {
	tp := newTapper(t)

	assert.False(t, tp.tap(entity.CornerTopLeft, time.Second))
	assert.False(t, tp.tap(entity.CornerTopRight, gesture.DefaultTimeout))
	assert.False(t, tp.tap(entity.CornerBottomLeft, gesture.DefaultTimeout))
	assert.True(t, tp.tap(entity.CornerBottomRight, gesture.DefaultTimeout))
}

func TestDetector_NonCornerTapsDoNotMutateHistory(t *testing.T) {
	tp := newTapper(t)

	assert.False(t, tp.tap(entity.CornerTopLeft, time.Second))
	assert.False(t, tp.tapMiddle(time.Second))
	assert.False(t, tp.tap(entity.CornerTopRight, time.Second))
	assert.False(t, tp.tapMiddle(time.Second))
	assert.False(t, tp.tap(entity.CornerBottomLeft, time.Second))
	assert.True(t, tp.tap(entity.CornerBottomRight, time.Second))
}

func TestDetector_NonCornerTapRefreshesTimeoutClock(t *testing.T) {
	tp := newTapper(t)

	assert.False(t, tp.tap(entity.CornerTopLeft, time.Second))
	assert.False(t, tp.tapMiddle(8*time.Second))
	// 16s since the last corner tap but only 8s since the last pointer-down.
	assert.False(t, tp.tap(entity.CornerTopRight, 8*time.Second))
	assert.Equal(t, []entity.Corner{entity.CornerTopLeft, entity.CornerTopRight}, tp.d.History())
}

func TestDetector_CustomThresholdAndTimeout(t *testing.T) {
	d := gesture.NewDetector(gesture.WithThreshold(40), gesture.WithTimeout(2*time.Second))
	assert.InDelta(t, 40.0, d.Threshold(), 0)
	assert.Equal(t, 2*time.Second, d.Timeout())

	now := time.Unix(0, 0)
	// (50, 50) is outside a 40px region.
	assert.False(t, d.OnPointerDown(entity.PointerEvent{X: 50, Y: 50, At: now}, portrait))
	assert.Empty(t, d.History())

	assert.False(t, d.OnPointerDown(entity.PointerEvent{X: 10, Y: 10, At: now}, portrait))
	assert.False(t, d.OnPointerDown(entity.PointerEvent{X: 1070, Y: 10, At: now.Add(3 * time.Second)}, portrait))
	assert.Equal(t, []entity.Corner{entity.CornerTopRight}, d.History())
}

func TestDetector_InvalidOptionsKeepDefaults(t *testing.T) {
	d := gesture.NewDetector(gesture.WithThreshold(-1), gesture.WithTimeout(0))
	assert.InDelta(t, gesture.DefaultThreshold, d.Threshold(), 0)
	assert.Equal(t, gesture.DefaultTimeout, d.Timeout())
}

func TestDetector_DegenerateViewportIsHarmless(t *testing.T) {
	d := gesture.NewDetector()
	now := time.Unix(0, 0)
	for i := range 8 {
		assert.False(t, d.OnPointerDown(entity.PointerEvent{X: 0, Y: 0, At: now.Add(time.Duration(i) * time.Second)}, entity.Viewport{}))
	}
	assert.Empty(t, d.History())
}

func TestDetector_Reset(t *testing.T) {
	tp := newTapper(t)
	tp.tap(entity.CornerTopLeft, time.Second)
	tp.d.Reset()
	assert.Empty(t, tp.d.History())
}

func TestRequiredSequence_ReturnsCopy(t *testing.T) {
	seq := gesture.RequiredSequence()
	seq[0] = entity.CornerNone
	assert.Equal(t, entity.CornerTopLeft, gesture.RequiredSequence()[0])
}
