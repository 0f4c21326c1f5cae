// Package input turns SDL2 events into camera commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/affinity/internal/engine/camera"
)

// Bindings maps held keys to camera movements.
var Bindings = map[sdl.Scancode]camera.Movement{
	sdl.SCANCODE_W:     camera.Forward,
	sdl.SCANCODE_UP:    camera.Forward,
	sdl.SCANCODE_S:     camera.Backward,
	sdl.SCANCODE_DOWN:  camera.Backward,
	sdl.SCANCODE_A:     camera.Left,
	sdl.SCANCODE_LEFT:  camera.Left,
	sdl.SCANCODE_D:     camera.Right,
	sdl.SCANCODE_RIGHT: camera.Right,
}

// Frame is the input gathered during one frame.
type Frame struct {
	Quit bool

	Resized       bool
	Width, Height int

	// Look is the relative mouse motion; positive LookY means up.
	LookX, LookY float32
	// Scroll is the vertical wheel offset; positive means away from the user.
	Scroll float32

	// ToggleCapture is set when the capture key was pressed.
	ToggleCapture bool
	// Screenshot is set when the capture-frame key was pressed.
	Screenshot bool

	// Click is set on a left click, at window pixel ClickX, ClickY.
	Click          bool
	ClickX, ClickY int

	// Moves are the movements whose keys are held.
	Moves []camera.Movement
}

// Input accumulates SDL events into a Frame.
type Input struct {
	frame Frame
	held  map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		held: make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and returns this frame's input.
func (i *Input) Update() Frame {
	i.reset()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.Apply(event)
	}
	return i.Frame()
}

func (i *Input) reset() {
	moves := i.frame.Moves[:0]
	i.frame = Frame{Moves: moves}
}

// Apply folds one event into the current frame.
func (i *Input) Apply(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.frame.Quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.frame.Resized = true
			i.frame.Width = int(e.Data1)
			i.frame.Height = int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		code := e.Keysym.Scancode
		switch e.Type {
		case sdl.KEYDOWN:
			if e.Repeat == 0 {
				switch code {
				case sdl.SCANCODE_ESCAPE:
					i.frame.Quit = true
				case sdl.SCANCODE_TAB:
					i.frame.ToggleCapture = true
				case sdl.SCANCODE_F12:
					i.frame.Screenshot = true
				}
			}
			i.held[code] = true
		case sdl.KEYUP:
			delete(i.held, code)
		}

	case *sdl.MouseMotionEvent:
		i.frame.LookX += float32(e.XRel)
		i.frame.LookY -= float32(e.YRel) // window y grows downward

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			i.frame.Click = true
			i.frame.ClickX = int(e.X)
			i.frame.ClickY = int(e.Y)
		}

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		i.frame.Scroll += dy
	}
}

// Frame returns the current frame with held movements resolved. Moves is
// reused by the next Update.
func (i *Input) Frame() Frame {
	f := i.frame
	f.Moves = f.Moves[:0]
	seen := [4]bool{}
	for code := range i.held {
		m, ok := Bindings[code]
		if !ok || seen[m] {
			continue
		}
		seen[m] = true
	}
	for m, on := range seen {
		if on {
			f.Moves = append(f.Moves, camera.Movement(m))
		}
	}
	i.frame.Moves = f.Moves
	return f
}

// Steer applies a frame's input to a camera for dt seconds.
func Steer(c camera.Controller, f Frame, dt float32) {
	if f.LookX != 0 || f.LookY != 0 {
		c.Look(f.LookX, f.LookY)
	}
	if f.Scroll != 0 {
		c.Scroll(f.Scroll)
	}
	for _, m := range f.Moves {
		c.HandleMovement(m, dt)
	}
	if f.Resized {
		c.SetAspect(f.Width, f.Height)
	}
}
