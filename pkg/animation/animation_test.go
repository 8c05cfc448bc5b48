package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/bindingx/pkg/graphics"
)

func useFrameClock(t *testing.T, fps int) *FrameClock {
	t.Helper()
	c := NewFrameClock(fps)
	prev := SetClock(c)
	t.Cleanup(func() { SetClock(prev) })
	return c
}

func step(c *FrameClock) {
	c.Step()
	StepTickers()
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(50)
	start := c.Now()
	c.Step()
	c.Step()
	assert.Equal(t, 20*time.Millisecond, c.Interval())
	assert.Equal(t, 40*time.Millisecond, c.Now().Sub(start))

	assert.Equal(t, time.Second/60, NewFrameClock(0).Interval())
}

func TestController_RunsToCompletion(t *testing.T) {
	clock := useFrameClock(t, 10)
	c := NewController(300 * time.Millisecond)
	defer c.Dispose()

	var values []float64
	c.AddListener(func(_ time.Duration, v float64) { values = append(values, v) })
	var statuses []Status
	c.AddStatusListener(func(s Status) { statuses = append(statuses, s) })

	c.Forward()
	require.True(t, c.IsRunning())
	for c.IsRunning() {
		step(clock)
	}

	require.Len(t, values, 3)
	assert.InDelta(t, 1.0/3, values[0], 1e-9)
	assert.InDelta(t, 2.0/3, values[1], 1e-9)
	assert.Equal(t, 1.0, values[2])
	assert.Equal(t, []Status{StatusRunning, StatusCompleted}, statuses)
	assert.Equal(t, 300*time.Millisecond, c.Elapsed())
	assert.False(t, HasActiveTickers())
}

func TestController_CurveEndsExactly(t *testing.T) {
	clock := useFrameClock(t, 4)
	c := NewController(time.Second)
	c.Curve = CubicBezier(0.1, 0.9, 0.2, 1.3)
	c.Forward()
	for c.IsRunning() {
		step(clock)
	}
	assert.Equal(t, 1.0, c.Value)
}

func TestController_ZeroDuration(t *testing.T) {
	clock := useFrameClock(t, 60)
	c := NewController(0)
	c.Forward()
	step(clock)
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, StatusCompleted, c.Status())
}

func TestController_Reset(t *testing.T) {
	clock := useFrameClock(t, 10)
	c := NewController(time.Second)
	c.Forward()
	step(clock)
	c.Reset()
	assert.Equal(t, StatusIdle, c.Status())
	assert.Zero(t, c.Value)
	assert.False(t, c.IsRunning())
	assert.Equal(t, "idle", c.Status().String())
}

func TestController_Unsubscribe(t *testing.T) {
	clock := useFrameClock(t, 10)
	c := NewController(time.Second)
	calls := 0
	unsubscribe := c.AddListener(func(time.Duration, float64) { calls++ })
	c.Forward()
	step(clock)
	unsubscribe()
	step(clock)
	assert.Equal(t, 1, calls)
	c.Dispose()
}

func TestParseCurve(t *testing.T) {
	for _, name := range []string{"", "linear", "ease", "EASE-IN", " ease-out ", "ease-in-out", "cubic-bezier(0.1, 0.7, 1.0, 0.1)"} {
		c, err := ParseCurve(name)
		require.NoError(t, err, name)
		assert.Equal(t, 0.0, c(0), name)
		assert.Equal(t, 1.0, c(1), name)
	}

	for _, name := range []string{"bounce", "cubic-bezier(1,2,3)", "cubic-bezier(2,0,0,1)", "cubic-bezier(a,0,0,1)", "cubic-bezier(0,0,0,1"} {
		_, err := ParseCurve(name)
		assert.Error(t, err, name)
	}
}

func TestCubicBezierMatchesLinear(t *testing.T) {
	c := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, c(x), 1e-5)
	}
}

func TestEaseInOutIsSymmetric(t *testing.T) {
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-5)
	assert.InDelta(t, 1-EaseInOut(0.2), EaseInOut(0.8), 1e-5)
}

func TestTweens(t *testing.T) {
	assert.Equal(t, 150.0, TweenFloat64(100, 200).Evaluate(0.5))
	assert.Equal(t, Pair{5, -5}, TweenPair(Pair{0, 0}, Pair{10, -10}).Evaluate(0.5))

	red := TweenColor(graphics.ColorRed, graphics.ColorBlue)
	assert.Equal(t, graphics.ColorRed, red.Evaluate(0))
	assert.Equal(t, graphics.ColorBlue, red.Evaluate(1))
	assert.Equal(t, graphics.RGBA8(128, 0, 128, 255), red.Evaluate(0.5))

	assert.Equal(t, 3, (&Tween[int]{End: 3}).Evaluate(0.1))
}

func TestTweenTransform(t *testing.T) {
	c := NewController(time.Second)
	c.Value = 0.25
	assert.Equal(t, 25.0, TweenFloat64(0, 100).Transform(c))
}
