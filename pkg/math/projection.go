package math

import "github.com/chewxy/math32"

// LookAt returns a view matrix looking from eye towards target.
//
// The basis follows the right-handed convention: the camera looks down its
// local -Z, so dir points from target back to eye.
func LookAt(eye, target, up Vec3) Mat4 {
	dir := eye.Sub(target).Normalize()
	right := up.Cross(dir).Normalize()
	camUp := dir.Cross(right).Normalize()

	rot := Identity4()
	rot.FillRow(0, right).
		FillRow(1, camUp).
		FillRow(2, dir)

	return rot.Mul(Translation(eye.Negate()))
}

// PerspectiveFOV returns a symmetric perspective projection.
// fovYDeg is the vertical field of view in degrees, aspect is width/height.
func PerspectiveFOV(fovYDeg, aspect, near, far float32) Mat4 {
	top := math32.Tan(DegToRad(fovYDeg)/2) * near
	right := top * aspect

	var m Mat4
	m[0] = near / right
	m[5] = near / top
	m[10] = -(far + near) / (far - near)
	m[11] = -2 * far * near / (far - near)
	m[14] = -1
	return m
}

// Perspective returns a general (possibly off-centre) frustum projection.
func Perspective(right, left, top, bottom, near, far float32) Mat4 {
	var m Mat4
	m[0] = 2 * near / (right - left)
	m[2] = (right + left) / (right - left)
	m[5] = 2 * near / (top - bottom)
	m[6] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / (far - near)
	m[11] = -2 * far * near / (far - near)
	m[14] = -1
	return m
}
