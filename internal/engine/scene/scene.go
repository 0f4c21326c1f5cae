// Package scene owns the objects, camera and light of a frame and evaluates
// their per-object matrices once per frame.
package scene

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/Faultbox/affinity/internal/engine/camera"
	"github.com/Faultbox/affinity/internal/engine/lighting"
	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/pkg/math"
)

// Camera supplies the view and projection for a frame.
type Camera interface {
	camera.View
	camera.Lens
}

// ErrDuplicateObject is returned when two objects share a name.
var ErrDuplicateObject = errors.New("duplicate object name")

// Scene is the explicit state a frame is evaluated from.
type Scene struct {
	Name   string
	Camera Camera
	Light  lighting.PointLight

	objects []*transform.Object
	byName  map[string]*transform.Object
}

// New creates an empty scene viewed through cam.
func New(name string, cam Camera) *Scene {
	return &Scene{
		Name:   name,
		Camera: cam,
		Light:  lighting.DefaultPointLight(),
		byName: make(map[string]*transform.Object),
	}
}

// Add appends obj. Unnamed objects are allowed and never collide.
func (s *Scene) Add(obj *transform.Object) error {
	if obj == nil {
		return errors.New("nil object")
	}
	if obj.Name != "" {
		if _, ok := s.byName[obj.Name]; ok {
			return errors.Wrapf(ErrDuplicateObject, "%q", obj.Name)
		}
		s.byName[obj.Name] = obj
	}
	s.objects = append(s.objects, obj)
	return nil
}

// Objects returns the objects in submission order.
func (s *Scene) Objects() []*transform.Object {
	return s.objects
}

// Object returns the object named name, or nil.
func (s *Scene) Object(name string) *transform.Object {
	return s.byName[name]
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Bounds returns the world-space box around every object's unit cube in its
// current pose. ok is false for an empty scene.
func (s *Scene) Bounds() (lo, hi math.Vec3, ok bool) {
	for _, obj := range s.objects {
		m := obj.ModelMatrix()
		for i := 0; i < 8; i++ {
			p := m.MulVec3(math.Vec3{
				X: float32(i&1) - 0.5,
				Y: float32(i>>1&1) - 0.5,
				Z: float32(i>>2&1) - 0.5,
			})
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
			hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
		}
	}
	return lo, hi, ok
}

// hasCamera reports whether c is set, treating a typed nil pointer as unset.
func hasCamera(c Camera) bool {
	if c == nil {
		return false
	}
	v := reflect.ValueOf(c)
	return v.Kind() != reflect.Pointer || !v.IsNil()
}
