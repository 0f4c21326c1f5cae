package scene

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/engine/lighting"
	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/internal/logger"
	"github.com/Faultbox/affinity/pkg/math"
)

// Sink receives the matrices of each object, typically a renderer.
type Sink interface {
	Submit(obj *transform.Object, set FrameMatrixSet) error
}

// Frame is the per-frame state shared by all objects.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3
	Light      lighting.PointLight
}

// FrameSink is a Sink that also wants the shared state before any object.
type FrameSink interface {
	Sink
	BeginFrame(f Frame) error
}

// Stats counts evaluated work.
type Stats struct {
	Frames    uint64
	Submitted uint64
	Time      float64 // simulated seconds
}

// statsInterval is how often frame stats are logged, in simulated seconds.
const statsInterval = 1.0

// Evaluator advances a scene's animation and hands per-object matrices to a
// sink. It is not safe for concurrent use and Evaluate must not be re-entered.
type Evaluator struct {
	scene *Scene
	stats Stats
	busy  bool

	windowFrames uint64
	windowTime   float64
}

// NewEvaluator creates an evaluator for s.
func NewEvaluator(s *Scene) *Evaluator {
	return &Evaluator{scene: s}
}

// Scene returns the evaluated scene.
func (e *Evaluator) Scene() *Scene {
	return e.scene
}

// Stats returns the counters so far.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

// Evaluate runs one frame: every clip advances by dt, then each object's
// model matrix is composed with the camera's view and projection and
// submitted to sink in scene order. A nil sink only advances time.
//
// All clips advance even if a submission fails; the first sink error is
// returned wrapped with the object name.
func (e *Evaluator) Evaluate(dt float32, sink Sink) error {
	if e.busy {
		panic("scene: Evaluate re-entered")
	}
	e.busy = true
	defer func() { e.busy = false }()

	s := e.scene
	if dt < 0 {
		dt = 0
	}
	for _, obj := range s.objects {
		obj.Advance(dt)
	}
	e.tick(dt)

	if sink == nil {
		return nil
	}
	if !hasCamera(s.Camera) {
		return errors.Errorf("scene %q: no camera", s.Name)
	}

	frame := Frame{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.Projection(),
		CameraPos:  s.Camera.Position(),
		Light:      s.Light,
	}
	if fs, ok := sink.(FrameSink); ok {
		if err := fs.BeginFrame(frame); err != nil {
			return errors.Wrap(err, "begin frame")
		}
	}

	for _, obj := range s.objects {
		set := FrameMatrixSet{
			Model:      obj.ModelMatrix(),
			View:       frame.View,
			Projection: frame.Projection,
		}
		if err := sink.Submit(obj, set); err != nil {
			return errors.Wrapf(err, "submit %q", obj.Name)
		}
		e.stats.Submitted++
	}
	return nil
}

func (e *Evaluator) tick(dt float32) {
	e.stats.Frames++
	e.stats.Time += float64(dt)

	e.windowFrames++
	e.windowTime += float64(dt)
	if e.windowTime < statsInterval {
		return
	}
	logger.Debug("frame stats",
		zap.String("scene", e.scene.Name),
		zap.Uint64("frames", e.stats.Frames),
		zap.Float64("fps", float64(e.windowFrames)/e.windowTime),
		zap.Int("objects", len(e.scene.objects)),
	)
	e.windowFrames = 0
	e.windowTime = 0
}
