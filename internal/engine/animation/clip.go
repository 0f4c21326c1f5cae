// Package animation drives transform parameters over time with eased clips.
package animation

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/Faultbox/affinity/internal/engine/ease"
	"github.com/Faultbox/affinity/pkg/math"
)

// Loop selects what a clip does once it reaches the end of its duration.
type Loop int

const (
	// LoopNone holds the end value forever.
	LoopNone Loop = iota
	// LoopRepeat restarts from the start value.
	LoopRepeat
	// LoopInvert plays back towards the start value, then forwards again (ping-pong).
	LoopInvert
)

var loopNames = [...]string{
	LoopNone:   "none",
	LoopRepeat: "repeat",
	LoopInvert: "invert",
}

func (l Loop) String() string {
	if l < 0 || int(l) >= len(loopNames) {
		return fmt.Sprintf("Loop(%d)", int(l))
	}
	return loopNames[l]
}

// ParseLoop parses "none", "repeat" or "invert". "ping-pong" is accepted for invert.
func ParseLoop(s string) (Loop, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "ping-pong" || name == "pingpong" {
		return LoopInvert, nil
	}
	for i, n := range loopNames {
		if n == name {
			return Loop(i), nil
		}
	}
	return LoopNone, errors.Errorf("unknown loop policy %q", s)
}

// State is the phase of a clip.
type State int

const (
	// StateIdle means the delay has not elapsed yet.
	StateIdle State = iota
	// StateRunning means the clip is interpolating.
	StateRunning
	// StateCompleted means a LoopNone clip has reached its end value.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Setup errors.
var (
	ErrInvalidDuration = errors.New("animation duration must be positive")
	ErrInvalidDelay    = errors.New("animation delay must not be negative")
	ErrInvalidValue    = errors.New("animation value must be finite")
	ErrInvalidCurve    = errors.New("unknown easing curve")
	ErrInvalidLoop     = errors.New("unknown loop policy")
)

// Options configures a clip. Durations are in seconds.
type Options struct {
	Curve    ease.Curve
	Loop     Loop
	Duration float32
	Delay    float32
	From     math.Vec3
	To       math.Vec3
}

// Clip interpolates between two values over time.
//
// Scalar parameters (a single rotation angle) use the X component.
type Clip struct {
	opts Options

	// elapsed is total time since creation for Idle; once running it is
	// kept wrapped to one period for looping clips.
	elapsed float32
}

// New validates opts and returns a clip at time zero.
func New(opts Options) (*Clip, error) {
	if !(opts.Duration > 0) || math32.IsInf(opts.Duration, 0) {
		return nil, errors.Wrapf(ErrInvalidDuration, "got %v", opts.Duration)
	}
	if !(opts.Delay >= 0) || math32.IsInf(opts.Delay, 0) {
		return nil, errors.Wrapf(ErrInvalidDelay, "got %v", opts.Delay)
	}
	if !finite(opts.From) || !finite(opts.To) {
		return nil, errors.Wrapf(ErrInvalidValue, "from %v to %v", opts.From, opts.To)
	}
	if !opts.Curve.Valid() {
		return nil, errors.Wrapf(ErrInvalidCurve, "curve %d", int(opts.Curve))
	}
	if opts.Loop < LoopNone || opts.Loop > LoopInvert {
		return nil, errors.Wrapf(ErrInvalidLoop, "loop %d", int(opts.Loop))
	}
	return &Clip{opts: opts}, nil
}

func finite(v math.Vec3) bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Options returns the configuration the clip was built with.
func (c *Clip) Options() Options {
	return c.opts
}

// Elapsed returns the accumulated time in seconds, including the delay.
// Looping clips keep it wrapped to one period; a finished LoopNone clip
// stops accumulating.
func (c *Clip) Elapsed() float32 {
	return c.elapsed
}

// Reset rewinds the clip to time zero.
func (c *Clip) Reset() {
	c.elapsed = 0
}

// period is the length of one full loop after the delay.
func (c *Clip) period() float32 {
	if c.opts.Loop == LoopInvert {
		return 2 * c.opts.Duration
	}
	return c.opts.Duration
}

// Advance moves the clip forward by dt seconds. Negative dt is ignored.
func (c *Clip) Advance(dt float32) {
	if !(dt > 0) {
		return
	}
	c.elapsed += dt

	local := c.elapsed - c.opts.Delay
	switch c.opts.Loop {
	case LoopNone:
		if local > c.opts.Duration {
			c.elapsed = c.opts.Delay + c.opts.Duration
		}
	case LoopRepeat, LoopInvert:
		if p := c.period(); local >= p {
			c.elapsed = c.opts.Delay + math32.Mod(local, p)
		}
	}
}

// State reports the current phase.
func (c *Clip) State() State {
	local := c.elapsed - c.opts.Delay
	switch {
	case local < 0:
		return StateIdle
	case c.opts.Loop == LoopNone && local >= c.opts.Duration:
		return StateCompleted
	default:
		return StateRunning
	}
}

// Progress returns the linear progress through the current pass in [0,1]
// and whether the pass runs backwards (odd passes of an invert loop).
func (c *Clip) Progress() (p float32, reverse bool) {
	local := c.elapsed - c.opts.Delay
	if local <= 0 {
		return 0, false
	}
	d := c.opts.Duration
	if c.opts.Loop == LoopInvert && local >= d {
		return min((local-d)/d, 1), true
	}
	return min(local/d, 1), false
}

// Scalar builds a one-component range for single-axis rotations.
func Scalar(from, to float32) (math.Vec3, math.Vec3) {
	return math.Vec3{X: from}, math.Vec3{X: to}
}

// Value returns the interpolated value for the current time.
func (c *Clip) Value() math.Vec3 {
	p, reverse := c.Progress()
	k := c.opts.Curve.Ease(p)
	if reverse {
		return c.opts.To.Lerp(c.opts.From, k)
	}
	return c.opts.From.Lerp(c.opts.To, k)
}
