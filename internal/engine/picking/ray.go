// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/pkg/math"
)

// Ray is a half-line Origin + t*Direction, t >= 0.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// UnitCube bounds the mesh every object is drawn with.
var UnitCube = AABB{
	Min: math.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
	Max: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
}

// NewAABB creates a box from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// ScreenToRay converts window pixel coordinates to a world-space ray.
// invViewProj is the inverse of projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // window y grows downward

	near := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1})
	far := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, ndc math.Vec4) math.Vec3 {
	p := inv.MulVec(ndc)
	if p.W != 0 {
		return p.Vec3().Scale(1 / p.W)
	}
	return p.Vec3()
}

// IntersectAABB tests the ray against box with the slab method. It returns
// the entry distance, or the exit distance when the origin is inside.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for i := 0; i < 3; i++ {
		o, d := r.Origin.At(i), r.Direction.At(i)
		lo, hi := box.Min.At(i), box.Max.At(i)
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Hit is a picked object and the ray distance to it.
type Hit struct {
	Object   *transform.Object
	Distance float32
}

// Pick returns the nearest object whose model-space unit cube the ray hits.
// The ray is moved into each object's space, so rotated and sheared objects
// pick exactly. Objects with a degenerate model matrix are skipped.
func Pick(r Ray, objects []*transform.Object) (Hit, bool) {
	var best Hit
	found := false
	for _, obj := range objects {
		model := obj.ModelMatrix()
		if math32.Abs(model.Mat3().Determinant()) < 1e-8 {
			continue
		}
		inv := model.Inverse()
		local := Ray{
			Origin:    inv.MulVec3(r.Origin),
			Direction: inv.TransformDirection(r.Direction),
		}
		// Direction stays unnormalized so t is the world distance.
		t, ok := local.IntersectAABB(UnitCube)
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Object: obj, Distance: t}
			found = true
		}
	}
	return best, found
}
