// Package transform composes per-object model matrices from ordered affine stages.
package transform

import (
	"fmt"

	"github.com/Faultbox/affinity/pkg/math"
)

// StageKind identifies which affine matrix a stage builds.
type StageKind int

const (
	KindTranslation StageKind = iota
	KindScaling
	KindRotation
	KindRotation3D
	KindShear
)

func (k StageKind) String() string {
	switch k {
	case KindTranslation:
		return "translate"
	case KindScaling:
		return "scale"
	case KindRotation:
		return "rotate"
	case KindRotation3D:
		return "rotate3d"
	case KindShear:
		return "shear"
	}
	return fmt.Sprintf("StageKind(%d)", int(k))
}

// Stage is one affine step. Params are interpreted per kind:
//
//	translate, scale: XYZ vector
//	rotate:           X is the angle in degrees about Axis
//	rotate3d:         XYZ angles in degrees
//	shear:            X and Y are the two factors for Axis
type Stage struct {
	Kind   StageKind
	Axis   math.Axis
	Params math.Vec3
}

// Translate returns a translation stage.
func Translate(v math.Vec3) Stage {
	return Stage{Kind: KindTranslation, Params: v}
}

// Scale returns a scaling stage.
func Scale(v math.Vec3) Stage {
	return Stage{Kind: KindScaling, Params: v}
}

// Rotate returns a single-axis rotation stage; angle in degrees.
func Rotate(angleDeg float32, axis math.Axis) Stage {
	return Stage{Kind: KindRotation, Axis: axis, Params: math.Vec3{X: angleDeg}}
}

// Rotate3D returns a composite X*Y*Z rotation stage; angles in degrees.
func Rotate3D(anglesDeg math.Vec3) Stage {
	return Stage{Kind: KindRotation3D, Params: anglesDeg}
}

// ShearAlong returns a shear stage for axis with factors s0, s1.
func ShearAlong(axis math.Axis, s0, s1 float32) Stage {
	return Stage{Kind: KindShear, Axis: axis, Params: math.Vec3{X: s0, Y: s1}}
}

// Set overwrites the active parameters, e.g. with an animation value.
func (s *Stage) Set(v math.Vec3) {
	s.Params = v
}

// Matrix builds the stage's 4x4 matrix from its current parameters.
func (s Stage) Matrix() math.Mat4 {
	switch s.Kind {
	case KindTranslation:
		return math.Translation(s.Params)
	case KindScaling:
		return math.Scaling(s.Params)
	case KindRotation:
		return math.Rotation(s.Params.X, s.Axis)
	case KindRotation3D:
		return math.Rotation3D(s.Params)
	case KindShear:
		return math.Shear(s.Axis, s.Params.XY())
	}
	panic(fmt.Sprintf("transform: unknown stage kind %d", int(s.Kind)))
}
