// Package lighting provides point light support for scene rendering.
package lighting

import (
	"github.com/Faultbox/affinity/pkg/math"
)

// PointLight is a point light source for GPU upload.
type PointLight struct {
	Position  math.Vec3 // world position
	Color     math.Vec3 // RGB, 0-1
	Range     float32   // falloff distance
	Intensity float32
}

// DefaultPointLight returns the white light used by the default scene.
func DefaultPointLight() PointLight {
	return PointLight{
		Position:  math.Vec3{X: 1.2, Y: 1.0, Z: 2.0},
		Color:     math.Vec3{X: 1, Y: 1, Z: 1},
		Range:     50,
		Intensity: 1,
	}
}

// Normalized returns a copy with color clamped to [0,1] and a positive range.
func (l PointLight) Normalized() PointLight {
	l.Color = math.Vec3{
		X: clamp01(l.Color.X),
		Y: clamp01(l.Color.Y),
		Z: clamp01(l.Color.Z),
	}
	if l.Range <= 0 {
		l.Range = 50
	}
	if l.Intensity <= 0 {
		l.Intensity = 1
	}
	return l
}

// Radiance returns color scaled by intensity, as uploaded to u_light_color.
func (l PointLight) Radiance() math.Vec3 {
	return l.Color.Scale(l.Intensity)
}

// ViewPosition returns the light position in view space.
func (l PointLight) ViewPosition(view math.Mat4) math.Vec3 {
	return view.MulVec3(l.Position)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
