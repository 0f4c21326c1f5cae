package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/affinity/pkg/math"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Perspective

	Target math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // radians per mouse unit
	ZoomSensitivity float32
	PanSpeed        float32 // world units per second
}

// NewOrbitCamera creates an orbit camera framing a unit-sized scene.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Perspective:     DefaultPerspective(),
		Distance:        5,
		Pitch:           0.3,
		MinDistance:     1,
		MaxDistance:     40,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSpeed:        2.5,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math32.Cos(c.Pitch)
	return c.Target.Add(math.Vec3{
		X: c.Distance * cp * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cp * math32.Cos(c.Yaw),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the target in the ground plane.
func (c *OrbitCamera) HandleMovement(m Movement, dt float32) {
	step := c.PanSpeed * dt
	dir := math.Vec3{X: math32.Sin(c.Yaw), Z: math32.Cos(c.Yaw)}
	right := math.Vec3{X: math32.Cos(c.Yaw), Z: -math32.Sin(c.Yaw)}

	// W moves into the scene, away from the camera.
	switch m {
	case Forward:
		c.Target = c.Target.Sub(dir.Scale(step))
	case Backward:
		c.Target = c.Target.Add(dir.Scale(step))
	case Left:
		c.Target = c.Target.Sub(right.Scale(step))
	case Right:
		c.Target = c.Target.Add(right.Scale(step))
	}
}

// FitToBounds centers the target on a bounding box and backs off until the
// box fits the field of view. Yaw and pitch are kept.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Target = lo.Add(hi).Scale(0.5)
	radius := hi.Sub(lo).Length() / 2
	half := math.DegToRad(c.FOV) / 2
	if half <= 0 {
		half = math.DegToRad(45) / 2
	}
	c.Distance = clamp(radius/math32.Sin(half), c.MinDistance, c.MaxDistance)
}

// Look implements Controller. Screen y grows downward, so dy is negated.
func (c *OrbitCamera) Look(dx, dy float32) { c.HandleDrag(dx, -dy) }

// Scroll implements Controller.
func (c *OrbitCamera) Scroll(dy float32) { c.HandleZoom(dy) }
