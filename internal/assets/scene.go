package assets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/affinity/internal/engine/animation"
	"github.com/Faultbox/affinity/internal/engine/ease"
	"github.com/Faultbox/affinity/internal/engine/lighting"
	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/pkg/math"
)

// ErrInvalidScene wraps every validation failure of a scene description.
var ErrInvalidScene = errors.New("invalid scene")

// SceneFile is the YAML form of a scene.
type SceneFile struct {
	Name    string       `yaml:"name"`
	Light   *LightDesc   `yaml:"light,omitempty"`
	Objects []ObjectDesc `yaml:"objects"`
}

// LightDesc describes the point light.
type LightDesc struct {
	Position  Vec     `yaml:"position"`
	Color     Vec     `yaml:"color,omitempty"`
	Range     float32 `yaml:"range,omitempty"`
	Intensity float32 `yaml:"intensity,omitempty"`
}

// ObjectDesc describes one renderable object.
type ObjectDesc struct {
	Name      string      `yaml:"name"`
	Vertices  int         `yaml:"vertices"`
	Primitive string      `yaml:"primitive,omitempty"`
	Material  string      `yaml:"material,omitempty"`
	Color     Vec         `yaml:"color,omitempty"`
	Groups    []GroupDesc `yaml:"groups"`
}

// GroupDesc describes a transform group. Stage order is significant.
type GroupDesc struct {
	Kind   string      `yaml:"kind"`
	Stages []StageDesc `yaml:"stages"`
}

// StageDesc describes one affine stage. Value holds the angle for rotate,
// the XYZ vector for translate/scale/rotate3d and the two factors for shear.
type StageDesc struct {
	Kind    string    `yaml:"kind"`
	Axis    string    `yaml:"axis,omitempty"`
	Value   Vec       `yaml:"value"`
	Animate *ClipDesc `yaml:"animate,omitempty"`
}

// ClipDesc describes an animation bound to a stage.
type ClipDesc struct {
	Curve    string  `yaml:"curve"`
	Loop     string  `yaml:"loop,omitempty"`
	Duration float32 `yaml:"duration"`
	Delay    float32 `yaml:"delay,omitempty"`
	From     Vec     `yaml:"from"`
	To       Vec     `yaml:"to"`
}

// Vec is a 1 to 3 component vector. A bare scalar decodes as one component.
type Vec []float32

// UnmarshalYAML accepts either a scalar or a sequence.
func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float32
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Vec{f}
		return nil
	}
	var fs []float32
	if err := node.Decode(&fs); err != nil {
		return err
	}
	if len(fs) > 3 {
		return fmt.Errorf("line %d: vector has %d components, want at most 3", node.Line, len(fs))
	}
	*v = fs
	return nil
}

// Shape is the number of components a value needs. Broadcast lets a single
// scalar fill every component; Default is used when the value is absent.
type Shape struct {
	N         int
	Broadcast bool
	Default   math.Vec3
}

// Shapes of the values in a scene file.
var (
	PointShape = Shape{N: 3}
	ColorShape = Shape{N: 3, Broadcast: true, Default: math.Vec3{X: 1, Y: 1, Z: 1}}

	stageShapes = map[string]Shape{
		"translate": {N: 3},
		"scale":     {N: 3, Broadcast: true, Default: math.Vec3{X: 1, Y: 1, Z: 1}},
		"rotate":    {N: 1},
		"rotate3d":  {N: 3},
		"shear":     {N: 2},
	}
)

// Vec3 resolves v against sh. Unused trailing components are zero.
func (v Vec) Vec3(sh Shape) (math.Vec3, error) {
	switch {
	case len(v) == 0:
		return sh.Default, nil
	case len(v) == 1 && sh.Broadcast:
		return math.Vec3{X: v[0], Y: v[0], Z: v[0]}, nil
	case len(v) != sh.N:
		return math.Vec3{}, errors.Wrapf(ErrInvalidScene, "got %d components, want %d", len(v), sh.N)
	}
	var out math.Vec3
	for i, f := range v {
		switch i {
		case 0:
			out.X = f
		case 1:
			out.Y = f
		case 2:
			out.Z = f
		}
	}
	return out, nil
}

// ParseScene decodes a YAML scene. Unknown fields are rejected.
func ParseScene(r io.Reader) (*SceneFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f SceneFile
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return &f, nil
}

// ParseSceneBytes is ParseScene over a byte slice.
func ParseSceneBytes(data []byte) (*SceneFile, error) {
	return ParseScene(bytes.NewReader(data))
}

// Build creates the scene objects and clips described by f.
func (f *SceneFile) Build(cam scene.Camera) (*scene.Scene, error) {
	s := scene.New(f.Name, cam)
	if f.Light != nil {
		l, err := f.Light.build()
		if err != nil {
			return nil, errors.Wrapf(err, "scene %q", f.Name)
		}
		s.Light = l
	}
	for i := range f.Objects {
		obj, err := f.Objects[i].build()
		if err != nil {
			return nil, errors.Wrapf(err, "scene %q", f.Name)
		}
		if err := s.Add(obj); err != nil {
			return nil, errors.Wrapf(ErrInvalidScene, "scene %q: %v", f.Name, err)
		}
	}
	return s, nil
}

func (d *LightDesc) build() (lighting.PointLight, error) {
	l := lighting.DefaultPointLight()
	var err error
	if len(d.Position) > 0 {
		if l.Position, err = d.Position.Vec3(PointShape); err != nil {
			return l, errors.Wrap(err, "light position")
		}
	}
	if l.Color, err = d.Color.Vec3(ColorShape); err != nil {
		return l, errors.Wrap(err, "light color")
	}
	if d.Range > 0 {
		l.Range = d.Range
	}
	if d.Intensity > 0 {
		l.Intensity = d.Intensity
	}
	return l.Normalized(), nil
}

func (d *ObjectDesc) build() (*transform.Object, error) {
	if d.Vertices < 0 {
		return nil, errors.Wrapf(ErrInvalidScene, "object %q: negative vertex count", d.Name)
	}
	obj, err := transform.NewObject(d.Name)
	if err != nil {
		return nil, err
	}
	obj.VertexCount = d.Vertices
	obj.Primitive = d.Primitive
	if obj.Primitive == "" {
		obj.Primitive = "triangles"
	}
	obj.Material = d.Material
	if obj.Color, err = d.Color.Vec3(ColorShape); err != nil {
		return nil, errors.Wrapf(err, "object %q color", d.Name)
	}

	for gi, gd := range d.Groups {
		kind, err := transform.ParseGroupKind(gd.Kind)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidScene, "object %q group %d: %v", d.Name, gi, err)
		}
		g := transform.NewGroup(kind)
		for si, sd := range gd.Stages {
			if err := sd.addTo(g); err != nil {
				return nil, errors.Wrapf(err, "object %q %s stage %d", d.Name, kind, si)
			}
		}
		if err := obj.SetGroup(g); err != nil {
			return nil, errors.Wrapf(ErrInvalidScene, "%v", err)
		}
	}
	return obj, nil
}

func (d *StageDesc) stage() (transform.Stage, error) {
	sh, ok := stageShapes[d.Kind]
	if !ok {
		return transform.Stage{}, errors.Wrapf(ErrInvalidScene, "unknown stage kind %q", d.Kind)
	}
	var axis math.Axis
	if d.Axis != "" {
		a, err := math.ParseAxis(d.Axis)
		if err != nil {
			return transform.Stage{}, errors.Wrapf(ErrInvalidScene, "%v", err)
		}
		axis = a
	}
	v, err := d.Value.Vec3(sh)
	if err != nil {
		return transform.Stage{}, errors.Wrapf(err, "%s value", d.Kind)
	}
	switch d.Kind {
	case "translate":
		return transform.Translate(v), nil
	case "scale":
		return transform.Scale(v), nil
	case "rotate":
		if d.Axis == "" {
			return transform.Stage{}, errors.Wrap(ErrInvalidScene, "rotate needs an axis")
		}
		return transform.Rotate(v.X, axis), nil
	case "rotate3d":
		return transform.Rotate3D(v), nil
	case "shear":
		if d.Axis == "" {
			return transform.Stage{}, errors.Wrap(ErrInvalidScene, "shear needs an axis")
		}
		return transform.ShearAlong(axis, v.X, v.Y), nil
	}
	return transform.Stage{}, errors.Wrapf(ErrInvalidScene, "unknown stage kind %q", d.Kind)
}

func (d *StageDesc) addTo(g *transform.Group) error {
	st, err := d.stage()
	if err != nil {
		return err
	}
	if d.Animate == nil {
		return g.Add(st)
	}
	opts, err := d.Animate.options(stageShapes[d.Kind])
	if err != nil {
		return err
	}
	_, err = g.Animate(st, opts)
	return err
}

func (d *ClipDesc) options(sh Shape) (animation.Options, error) {
	from, err := d.From.Vec3(sh)
	if err != nil {
		return animation.Options{}, errors.Wrap(err, "animate from")
	}
	to, err := d.To.Vec3(sh)
	if err != nil {
		return animation.Options{}, errors.Wrap(err, "animate to")
	}
	curve, err := ease.ParseCurve(d.Curve)
	if err != nil {
		return animation.Options{}, errors.Wrapf(ErrInvalidScene, "%v", err)
	}
	loop := animation.LoopNone
	if d.Loop != "" {
		if loop, err = animation.ParseLoop(d.Loop); err != nil {
			return animation.Options{}, errors.Wrapf(ErrInvalidScene, "%v", err)
		}
	}
	return animation.Options{
		Curve:    curve,
		Loop:     loop,
		Duration: d.Duration,
		Delay:    d.Delay,
		From:     from,
		To:       to,
	}, nil
}
