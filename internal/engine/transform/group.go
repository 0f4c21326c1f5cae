package transform

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Faultbox/affinity/internal/engine/animation"
	"github.com/Faultbox/affinity/pkg/math"
)

// GroupKind orders groups inside an object's model matrix.
type GroupKind int

const (
	GroupTranslation GroupKind = iota
	GroupRotation
	GroupScaling

	groupKinds = 3
)

func (k GroupKind) String() string {
	switch k {
	case GroupTranslation:
		return "translation"
	case GroupRotation:
		return "rotation"
	case GroupScaling:
		return "scaling"
	}
	return fmt.Sprintf("GroupKind(%d)", int(k))
}

// ParseGroupKind parses "translation", "rotation" or "scaling".
func ParseGroupKind(s string) (GroupKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "translation":
		return GroupTranslation, nil
	case "rotation":
		return GroupRotation, nil
	case "scaling":
		return GroupScaling, nil
	}
	return 0, errors.Errorf("unknown transform group %q", s)
}

// Accepts reports whether a stage of kind sk may live in a group of kind k.
func (k GroupKind) Accepts(sk StageKind) bool {
	switch k {
	case GroupTranslation:
		return sk == KindTranslation
	case GroupRotation:
		return sk == KindRotation || sk == KindRotation3D
	case GroupScaling:
		return sk == KindScaling || sk == KindShear
	}
	return false
}

// ErrStageKind is returned when a stage does not belong in a group.
var ErrStageKind = errors.New("stage kind not allowed in group")

type slot struct {
	stage Stage
	clip  *animation.Clip
}

// Group is an ordered list of stages of one transformation kind, each
// optionally driven by an animation clip.
type Group struct {
	kind  GroupKind
	slots []slot
}

// NewGroup creates an empty group.
func NewGroup(kind GroupKind) *Group {
	return &Group{kind: kind}
}

// Kind returns the group kind.
func (g *Group) Kind() GroupKind {
	return g.kind
}

// Len returns the number of stages.
func (g *Group) Len() int {
	return len(g.slots)
}

// Stage returns stage i with its current parameters.
func (g *Group) Stage(i int) Stage {
	return g.slots[i].stage
}

// Clip returns the clip bound to stage i, or nil.
func (g *Group) Clip(i int) *animation.Clip {
	return g.slots[i].clip
}

// Add appends a static stage.
func (g *Group) Add(s Stage) error {
	return g.add(s, nil)
}

// AddAnimated appends a stage driven by clip. The stage's parameters are
// replaced by the clip's value every time the group advances.
func (g *Group) AddAnimated(s Stage, clip *animation.Clip) error {
	if clip == nil {
		return errors.New("animated stage needs a clip")
	}
	return g.add(s, clip)
}

// Animate builds a clip from opts and binds it to a new stage.
func (g *Group) Animate(s Stage, opts animation.Options) (*animation.Clip, error) {
	clip, err := animation.New(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s stage", s.Kind)
	}
	if err := g.AddAnimated(s, clip); err != nil {
		return nil, err
	}
	return clip, nil
}

func (g *Group) add(s Stage, clip *animation.Clip) error {
	if !g.kind.Accepts(s.Kind) {
		return errors.Wrapf(ErrStageKind, "%s stage in %s group", s.Kind, g.kind)
	}
	if clip != nil {
		s.Set(clip.Value())
	}
	g.slots = append(g.slots, slot{stage: s, clip: clip})
	return nil
}

// Advance steps every bound clip by dt and writes its value into the stage.
func (g *Group) Advance(dt float32) {
	for i := range g.slots {
		sl := &g.slots[i]
		if sl.clip == nil {
			continue
		}
		sl.clip.Advance(dt)
		sl.stage.Set(sl.clip.Value())
	}
}

// Matrix multiplies the stage matrices in insertion order.
func (g *Group) Matrix() math.Mat4 {
	m := math.Identity4()
	for _, sl := range g.slots {
		m = m.Mul(sl.stage.Matrix())
	}
	return m
}
