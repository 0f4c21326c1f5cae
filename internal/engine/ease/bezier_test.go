package ease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	for _, c := range Curves() {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t, float32(0), c.Ease(0))
			assert.Equal(t, float32(1), c.Ease(1))
		})
	}
}

func TestClampsInput(t *testing.T) {
	for _, c := range Curves() {
		assert.Equal(t, c.Ease(0), c.Ease(-3), c.String())
		assert.Equal(t, c.Ease(1), c.Ease(7), c.String())
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range []float32{0.1, 0.25, 0.5, 0.8, 0.99} {
		assert.InDelta(t, x, Linear.Ease(x), 1e-6)
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		curve Curve
		t     float32
		want  float32
	}{
		{EaseInOut, 0.5, 0.5},
		{EaseInOut, 0.25, 3*0.0625 - 2*0.015625}, // 3t² - 2t³
		{QuadEaseIn, 0.5, 0.25},
		{QuadEaseOut, 0.5, 0.75},
		{EaseIn, 0.5, 0.3125},
		{EaseOut, 0.5, 0.6875},
	}
	for _, tt := range tests {
		t.Run(tt.curve.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.curve.Ease(tt.t), 1e-6)
		})
	}
}

func TestEaseInOutSymmetric(t *testing.T) {
	for _, x := range []float32{0.1, 0.3, 0.45} {
		assert.InDelta(t, 1-EaseInOut.Ease(x), EaseInOut.Ease(1-x), 1e-6)
	}
}

func TestBackOvershoots(t *testing.T) {
	assert.Less(t, BackInOut.Ease(0.05), float32(0))
	assert.Greater(t, BackInOut.Ease(0.95), float32(1))
}

func TestMonotonicCurves(t *testing.T) {
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut, QuadEaseIn, QuadEaseOut} {
		prev := c.Ease(0)
		for i := 1; i <= 100; i++ {
			v := c.Ease(float32(i) / 100)
			assert.GreaterOrEqual(t, v, prev-1e-6, "%s at step %d", c, i)
			prev = v
		}
	}
}

func TestParseCurve(t *testing.T) {
	for _, c := range Curves() {
		got, err := ParseCurve(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCurve("EASE_IN_OUT")
	require.NoError(t, err)
	assert.Equal(t, EaseInOut, got)

	_, err = ParseCurve("bounce")
	assert.Error(t, err)
}

func TestTextRoundTrip(t *testing.T) {
	var c Curve
	require.NoError(t, c.UnmarshalText([]byte("back-in-out")))
	assert.Equal(t, BackInOut, c)

	text, err := QuadEaseOut.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "quad-ease-out", string(text))

	_, err = Curve(99).MarshalText()
	assert.Error(t, err)
}
