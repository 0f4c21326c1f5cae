package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/affinity/pkg/math"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestFlyCameraDefaults(t *testing.T) {
	c := NewFlyCamera()
	assert.Equal(t, math.Vec3{Z: 3}, c.Position())
	assert.Equal(t, float32(-90), c.Yaw)
	assert.Equal(t, float32(45), c.FOV)

	forward, right, up := c.Basis()
	assertVec3(t, math.Vec3{Z: -1}, forward)
	assertVec3(t, math.Vec3{X: 1}, right)
	assertVec3(t, math.Vec3{Y: 1}, up)
}

func TestFlyCameraViewMatchesLookAt(t *testing.T) {
	c := NewFlyCamera()
	c.Pos = math.Vec3{Z: 5}

	want := math.LookAt(c.Pos, math.Vec3{}, math.Vec3{Y: 1})
	assert.True(t, want.ApproxEqual(c.ViewMatrix(), eps))

	// The origin sits five units in front of the camera.
	got := c.ViewMatrix().MulVec(math.Vec4{W: 1})
	assert.InDelta(t, -5, got.Z, eps)
	assert.InDelta(t, 0, got.X, eps)
	assert.InDelta(t, 0, got.Y, eps)
}

func TestFlyCameraPitchClamp(t *testing.T) {
	c := NewFlyCamera()
	c.HandleMouse(0, 10000)
	assert.Equal(t, float32(89), c.Pitch)
	c.HandleMouse(0, -20000)
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestFlyCameraMovement(t *testing.T) {
	tests := []struct {
		move Movement
		want math.Vec3
	}{
		{Forward, math.Vec3{Z: 0.5}},
		{Backward, math.Vec3{Z: 5.5}},
		{Left, math.Vec3{X: -2.5, Z: 3}},
		{Right, math.Vec3{X: 2.5, Z: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.move.String(), func(t *testing.T) {
			c := NewFlyCamera()
			c.HandleMovement(tt.move, 1)
			assertVec3(t, tt.want, c.Position())
		})
	}
}

func TestFlyCameraScrollClampsFOV(t *testing.T) {
	c := NewFlyCamera()
	c.HandleScroll(0, 10)
	assert.Equal(t, float32(35), c.FOV)
	c.Scroll(100)
	assert.Equal(t, float32(1), c.FOV)
	c.Scroll(-100)
	assert.Equal(t, float32(45), c.FOV)
}

func TestPerspective(t *testing.T) {
	p := DefaultPerspective()
	assert.Equal(t, math.PerspectiveFOV(45, 800.0/600.0, 0.1, 50), p.Projection())

	p.SetAspect(1024, 512)
	assert.Equal(t, float32(2), p.Aspect)
	p.SetAspect(1024, 0)
	assert.Equal(t, float32(2), p.Aspect)
}

func TestOrbitCamera(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch = 0
	assertVec3(t, math.Vec3{Z: 5}, c.Position())

	got := c.ViewMatrix().MulVec3(c.Target)
	assertVec3(t, math.Vec3{Z: -5}, got)

	c.HandleZoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)
	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.Pitch)
}

func TestOrbitFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw, c.Pitch = 1.2, -0.4
	c.FitToBounds(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 3, Y: 1, Z: 1})
	assert.Equal(t, math.Vec3{X: 1}, c.Target)
	assert.Greater(t, c.Distance, float32(2))
	assert.Equal(t, float32(1.2), c.Yaw)
	assert.Equal(t, float32(-0.4), c.Pitch)
}

func TestOrbitPan(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw = 0
	c.PanSpeed = 2
	c.HandleMovement(Forward, 0.5)
	assert.InDelta(t, -1, c.Target.Z, eps)

	// Pan speed does not depend on how far out the camera is.
	c.Distance = 30
	c.HandleMovement(Backward, 0.5)
	assert.InDelta(t, 0, c.Target.Z, eps)
}

func TestNewByMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeFly},
		{"fly", ModeFly},
		{" Orbit ", ModeOrbit},
	}
	for _, tt := range tests {
		mode, err := ParseMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, mode)
	}

	c, err := New(ModeOrbit)
	require.NoError(t, err)
	assert.IsType(t, &OrbitCamera{}, c)

	_, err = ParseMode("dolly")
	assert.Error(t, err)
	_, err = New("dolly")
	assert.Error(t, err)
}
