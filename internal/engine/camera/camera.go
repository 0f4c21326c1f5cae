// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"fmt"
	"strings"

	"github.com/Faultbox/affinity/pkg/math"
)

// View is what the frame evaluator needs from a camera.
type View interface {
	ViewMatrix() math.Mat4
	Position() math.Vec3
}

// Lens produces the projection matrix.
type Lens interface {
	Projection() math.Mat4
}

// Controller is a camera the viewer can steer from input.
type Controller interface {
	View
	Lens
	SetAspect(width, height int)
	HandleMovement(m Movement, dt float32)
	Look(dx, dy float32)
	Scroll(dy float32)
}

// New returns the default camera for mode.
func New(mode Mode) (Controller, error) {
	switch mode {
	case ModeFly, "":
		return NewFlyCamera(), nil
	case ModeOrbit:
		return NewOrbitCamera(), nil
	}
	return nil, fmt.Errorf("unknown camera mode %q", string(mode))
}

// Movement is a discrete movement command from the keyboard.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Movement(%d)", int(m))
}

// Mode selects the camera implementation.
type Mode string

const (
	ModeFly   Mode = "fly"
	ModeOrbit Mode = "orbit"
)

// ParseMode parses "fly" or "orbit".
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFly, "":
		return ModeFly, nil
	case ModeOrbit:
		return ModeOrbit, nil
	}
	return "", fmt.Errorf("unknown camera mode %q", s)
}

// Perspective holds projection parameters shared by camera modes.
type Perspective struct {
	FOV    float32 // vertical, degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32

	MinFOV float32
	MaxFOV float32
}

// DefaultPerspective returns a 45° projection for an 800x600 viewport.
func DefaultPerspective() Perspective {
	return Perspective{
		FOV:    45,
		Aspect: 800.0 / 600.0,
		Near:   0.1,
		Far:    50,
		MinFOV: 1,
		MaxFOV: 45,
	}
}

// Projection returns the perspective matrix.
func (p *Perspective) Projection() math.Mat4 {
	return math.PerspectiveFOV(p.FOV, p.Aspect, p.Near, p.Far)
}

// SetAspect updates the aspect ratio from a viewport size. Zero height is ignored.
func (p *Perspective) SetAspect(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	p.Aspect = float32(width) / float32(height)
}

// Zoom narrows the field of view by delta degrees within [MinFOV, MaxFOV].
func (p *Perspective) Zoom(delta float32) {
	p.FOV = clamp(p.FOV-delta, p.MinFOV, p.MaxFOV)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
