package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/affinity/pkg/math"
)

// FlyCamera is a free-look camera steered by yaw/pitch angles in degrees.
type FlyCamera struct {
	Perspective

	Pos     math.Vec3
	WorldUp math.Vec3
	Yaw     float32
	Pitch   float32

	// Constraints
	MaxPitch float32

	// Sensitivity
	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse unit
}

// NewFlyCamera creates a camera at (0,0,3) looking down -Z.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Perspective: DefaultPerspective(),
		Pos:         math.Vec3{X: 0, Y: 0, Z: 3},
		WorldUp:     math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:         -90,
		Pitch:       0,
		MaxPitch:    89,
		Speed:       2.5,
		Sensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() math.Vec3 {
	return c.Pos
}

// Basis returns the unit forward, right and up vectors for the current angles.
func (c *FlyCamera) Basis() (forward, right, up math.Vec3) {
	yaw := math.DegToRad(c.Yaw)
	pitch := math.DegToRad(c.Pitch)
	forward = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	right = forward.Cross(c.WorldUp).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	forward, _, up := c.Basis()
	return math.LookAt(c.Pos, c.Pos.Add(forward), up)
}

// HandleMouse turns the camera by a relative mouse motion. Positive dy looks up.
func (c *FlyCamera) HandleMouse(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch+dy*c.Sensitivity, -c.MaxPitch, c.MaxPitch)
}

// HandleMovement moves the camera along its basis for dt seconds.
func (c *FlyCamera) HandleMovement(m Movement, dt float32) {
	forward, right, _ := c.Basis()
	step := c.Speed * dt
	switch m {
	case Forward:
		c.Pos = c.Pos.Add(forward.Scale(step))
	case Backward:
		c.Pos = c.Pos.Sub(forward.Scale(step))
	case Left:
		c.Pos = c.Pos.Sub(right.Scale(step))
	case Right:
		c.Pos = c.Pos.Add(right.Scale(step))
	}
}

// HandleScroll zooms by the vertical wheel offset.
func (c *FlyCamera) HandleScroll(_, dy float32) {
	c.Zoom(dy)
}

// Look implements Controller.
func (c *FlyCamera) Look(dx, dy float32) { c.HandleMouse(dx, dy) }

// Scroll implements Controller.
func (c *FlyCamera) Scroll(dy float32) { c.Zoom(dy) }
