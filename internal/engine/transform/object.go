package transform

import (
	"github.com/pkg/errors"

	"github.com/Faultbox/affinity/pkg/math"
)

// ErrDuplicateGroup is returned when an object gets two groups of one kind.
var ErrDuplicateGroup = errors.New("duplicate transform group")

// Object is a renderable thing with its transform groups. VertexCount,
// Primitive, Material and Color are passed through to the renderer untouched.
type Object struct {
	Name        string
	VertexCount int
	Primitive   string
	Material    string
	Color       math.Vec3

	groups [groupKinds]*Group
}

// NewObject creates an object from its groups; at most one group per kind.
func NewObject(name string, groups ...*Group) (*Object, error) {
	o := &Object{Name: name}
	for _, g := range groups {
		if err := o.SetGroup(g); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// SetGroup attaches g, failing if a group of that kind already exists.
func (o *Object) SetGroup(g *Group) error {
	if g == nil {
		return errors.Errorf("object %q: nil group", o.Name)
	}
	k := g.Kind()
	if k < 0 || int(k) >= groupKinds {
		return errors.Errorf("object %q: invalid group kind %d", o.Name, int(k))
	}
	if o.groups[k] != nil {
		return errors.Wrapf(ErrDuplicateGroup, "object %q: %s", o.Name, k)
	}
	o.groups[k] = g
	return nil
}

// Group returns the group of kind k, or nil.
func (o *Object) Group(k GroupKind) *Group {
	return o.groups[k]
}

// Advance steps every clip owned by the object's groups.
func (o *Object) Advance(dt float32) {
	for _, g := range o.groups {
		if g != nil {
			g.Advance(dt)
		}
	}
}

// ModelMatrix composes translation * rotation * scaling. Missing groups
// contribute identity.
func (o *Object) ModelMatrix() math.Mat4 {
	m := math.Identity4()
	for _, g := range o.groups {
		if g != nil {
			m = m.Mul(g.Matrix())
		}
	}
	return m
}
