package math

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Axis names a principal axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / math32.Pi)
}

// Scaling returns a scale matrix with v on the diagonal.
func Scaling(v Vec3) Mat4 {
	m := Identity4()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Translation returns a translation matrix.
func Translation(v Vec3) Mat4 {
	m := Identity4()
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
	return m
}

// Rotation returns a right-handed rotation about a principal axis.
// angleDeg is in degrees.
func Rotation(angleDeg float32, axis Axis) Mat4 {
	rad := DegToRad(angleDeg)
	s, c := math32.Sin(rad), math32.Cos(rad)

	m := Identity4()
	switch axis {
	case AxisX:
		m[5], m[6] = c, -s
		m[9], m[10] = s, c
	case AxisY:
		m[0], m[2] = c, s
		m[8], m[10] = -s, c
	case AxisZ:
		m[0], m[1] = c, -s
		m[4], m[5] = s, c
	default:
		panic(fmt.Sprintf("math: invalid rotation axis %d", int(axis)))
	}
	return m
}

// Rotation3D composes Rotation(x, X) * Rotation(y, Y) * Rotation(z, Z).
// The order is fixed; rotations do not commute.
func Rotation3D(anglesDeg Vec3) Mat4 {
	return Rotation(anglesDeg.X, AxisX).
		Mul(Rotation(anglesDeg.Y, AxisY)).
		Mul(Rotation(anglesDeg.Z, AxisZ))
}

// Shear returns a shear matrix. The axis selects the row that receives the
// two factors: X sets (0,1),(0,2); Y sets (1,0),(1,2); Z sets (2,0),(2,1).
func Shear(axis Axis, factors Vec2) Mat4 {
	m := Identity4()
	switch axis {
	case AxisX:
		m[1], m[2] = factors.X, factors.Y
	case AxisY:
		m[4], m[6] = factors.X, factors.Y
	case AxisZ:
		m[8], m[9] = factors.X, factors.Y
	default:
		panic(fmt.Sprintf("math: invalid shear axis %d", int(axis)))
	}
	return m
}
