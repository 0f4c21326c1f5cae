package animation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/affinity/internal/engine/ease"
	"github.com/Faultbox/affinity/pkg/math"
)

func newClip(t *testing.T, loop Loop, curve ease.Curve) *Clip {
	t.Helper()
	from, to := Scalar(0, 360)
	c, err := New(Options{
		Curve:    curve,
		Loop:     loop,
		Duration: 2,
		Delay:    0.5,
		From:     from,
		To:       to,
	})
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"zero duration", Options{Duration: 0}, ErrInvalidDuration},
		{"negative duration", Options{Duration: -1}, ErrInvalidDuration},
		{"nan duration", Options{Duration: float32NaN()}, ErrInvalidDuration},
		{"negative delay", Options{Duration: 1, Delay: -0.1}, ErrInvalidDelay},
		{"nan value", Options{Duration: 1, To: math.Vec3{Y: float32NaN()}}, ErrInvalidValue},
		{"bad curve", Options{Duration: 1, Curve: ease.Curve(42)}, ErrInvalidCurve},
		{"bad loop", Options{Duration: 1, Loop: Loop(9)}, ErrInvalidLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func float32NaN() float32 {
	zero := float32(0)
	return zero / zero
}

func TestIdleBeforeDelay(t *testing.T) {
	c := newClip(t, LoopNone, ease.Linear)
	assert.Equal(t, StateIdle, c.State())
	c.Advance(0.25)
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, math.Vec3{}, c.Value())
}

func TestRunningInterpolates(t *testing.T) {
	c := newClip(t, LoopNone, ease.EaseInOut)
	c.Advance(1.5) // halfway through the 2s run
	assert.Equal(t, StateRunning, c.State())
	p, reverse := c.Progress()
	assert.Equal(t, float32(0.5), p)
	assert.False(t, reverse)
	assert.InDelta(t, 180, c.Value().X, 1e-4)
}

func TestLoopNoneStaysAtEnd(t *testing.T) {
	c := newClip(t, LoopNone, ease.EaseInOut)
	c.Advance(2.5)
	assert.Equal(t, StateCompleted, c.State())
	assert.Equal(t, float32(360), c.Value().X)

	for i := 0; i < 100; i++ {
		c.Advance(0.37)
		assert.Equal(t, StateCompleted, c.State())
		assert.Equal(t, float32(360), c.Value().X)
	}
}

func TestLoopRepeatRestarts(t *testing.T) {
	c := newClip(t, LoopRepeat, ease.Linear)
	c.Advance(2.5)
	assert.Equal(t, StateRunning, c.State())
	assert.Equal(t, float32(0), c.Value().X)
	assert.Equal(t, float32(0.5), c.Elapsed())

	c.Advance(1)
	assert.InDelta(t, 180, c.Value().X, 1e-3)

	c.Advance(2)
	assert.InDelta(t, 180, c.Value().X, 1e-3)
	assert.Less(t, c.Elapsed(), float32(2.5))
}

func TestLoopInvertPingPong(t *testing.T) {
	c := newClip(t, LoopInvert, ease.EaseInOut)

	c.Advance(2.5) // delay + duration
	assert.Equal(t, float32(360), c.Value().X)
	_, reverse := c.Progress()
	assert.True(t, reverse)

	c.Advance(1) // halfway back
	assert.InDelta(t, 180, c.Value().X, 1e-3)

	c.Advance(1) // delay + 2*duration
	assert.Equal(t, float32(0), c.Value().X)
	_, reverse = c.Progress()
	assert.False(t, reverse)

	c.Advance(2) // forwards again
	assert.Equal(t, float32(360), c.Value().X)
}

func TestLoopInvertSingleStep(t *testing.T) {
	c := newClip(t, LoopInvert, ease.Linear)
	c.Advance(4.5)
	assert.Equal(t, float32(0), c.Value().X)

	c = newClip(t, LoopInvert, ease.Linear)
	c.Advance(3.5)
	assert.InDelta(t, 180, c.Value().X, 1e-3)
}

func TestManySmallSteps(t *testing.T) {
	c := newClip(t, LoopInvert, ease.EaseInOut)
	for i := 0; i < 60*60; i++ {
		c.Advance(1.0 / 60)
		v := c.Value().X
		assert.GreaterOrEqual(t, v, float32(-1e-3))
		assert.LessOrEqual(t, v, float32(360+1e-3))
	}
	assert.Less(t, c.Elapsed(), float32(4.5+1e-3))
}

func TestNegativeDeltaIgnored(t *testing.T) {
	c := newClip(t, LoopNone, ease.Linear)
	c.Advance(1.5)
	before := c.Value()
	c.Advance(-1)
	c.Advance(0)
	assert.Equal(t, before, c.Value())
}

func TestVectorValues(t *testing.T) {
	c, err := New(Options{
		Curve:    ease.Linear,
		Duration: 4,
		From:     math.Vec3{X: 0, Y: 0, Z: 0},
		To:       math.Vec3{X: -90, Y: -45, Z: 0},
	})
	require.NoError(t, err)
	c.Advance(2)
	got := c.Value()
	assert.InDelta(t, -45, got.X, 1e-3)
	assert.InDelta(t, -22.5, got.Y, 1e-3)
	assert.Equal(t, float32(0), got.Z)
}

func TestReset(t *testing.T) {
	c := newClip(t, LoopNone, ease.Linear)
	c.Advance(3)
	c.Reset()
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, float32(0), c.Elapsed())
}

func TestParseLoop(t *testing.T) {
	for _, l := range []Loop{LoopNone, LoopRepeat, LoopInvert} {
		got, err := ParseLoop(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	got, err := ParseLoop("Ping-Pong")
	require.NoError(t, err)
	assert.Equal(t, LoopInvert, got)

	_, err = ParseLoop("forever")
	assert.Error(t, err)
}
