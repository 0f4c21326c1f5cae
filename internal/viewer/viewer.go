// Package viewer runs the interactive scene viewer.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/bootstrap"
	"github.com/Faultbox/affinity/internal/config"
	"github.com/Faultbox/affinity/internal/engine/camera"
	"github.com/Faultbox/affinity/internal/engine/debug"
	"github.com/Faultbox/affinity/internal/engine/input"
	"github.com/Faultbox/affinity/internal/engine/picking"
	"github.com/Faultbox/affinity/internal/engine/renderer"
	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/engine/window"
	"github.com/Faultbox/affinity/internal/logger"
)

// Viewer is the main viewer instance.
type Viewer struct {
	config  *config.Config
	running bool

	window    *window.Window
	renderer  *renderer.Renderer
	input     *input.Input
	camera    camera.Controller
	evaluator *scene.Evaluator
	shots     *debug.Screenshots

	log *zap.Logger
}

// New creates the window, renderer and scene.
func New(cfg *config.Config) (*Viewer, error) {
	log := logger.Named("viewer")
	log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("scene", cfg.Scene.Name),
	)

	v := &Viewer{config: cfg, log: log}

	var err error
	v.camera, err = bootstrap.NewCamera(cfg.Camera, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}
	s, err := bootstrap.LoadScene(cfg.Scene, v.camera)
	if err != nil {
		return nil, err
	}
	v.evaluator = scene.NewEvaluator(s)

	// Window creates the OpenGL context.
	v.window, err = window.New(window.Config{
		Title:        "Affinity - " + s.Name,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Actual size may differ in fullscreen.
	w, h := v.window.GetSize()
	v.camera.SetAspect(w, h)

	v.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.shots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "affinity")

	log.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	var frameTime time.Duration
	if v.config.Graphics.FPSLimit > 0 {
		frameTime = time.Second / time.Duration(v.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting main loop")

	for v.running {
		start := time.Now()
		dt := float32(start.Sub(lastTime).Seconds())
		lastTime = start

		f := v.input.Update()
		if f.Quit {
			v.running = false
			break
		}
		if f.Resized {
			v.renderer.Resize(f.Width, f.Height)
		}
		if f.ToggleCapture {
			v.window.SetMouseCaptured(!v.window.MouseCaptured())
		}
		if !v.window.MouseCaptured() {
			f.LookX, f.LookY = 0, 0
		}
		input.Steer(v.camera, f, dt)
		if f.Click && !v.window.MouseCaptured() {
			v.pick(f.ClickX, f.ClickY)
		}

		if err := v.render(dt * v.config.Scene.TimeScale); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if f.Screenshot {
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("draw_calls", v.renderer.DrawCalls()),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameTime > 0 {
			if rest := frameTime - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	st := v.evaluator.Stats()
	v.log.Info("main loop stopped",
		zap.Uint64("frames", st.Frames),
		zap.Float64("time", st.Time),
	)
	return nil
}

// Close releases the renderer and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) render(dt float32) error {
	v.renderer.Begin()
	defer v.renderer.End()
	return v.evaluator.Evaluate(dt, v.renderer)
}

// pick logs the object under window pixel x, y.
func (v *Viewer) pick(x, y int) {
	w, h := v.window.GetSize()
	vp := v.camera.Projection().Mul(v.camera.ViewMatrix())
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), vp.Inverse())

	hit, ok := picking.Pick(ray, v.evaluator.Scene().Objects())
	if !ok {
		v.log.Info("picked nothing", zap.Int("x", x), zap.Int("y", y))
		return
	}
	v.log.Info("picked object",
		zap.String("name", hit.Object.Name),
		zap.Float32("distance", hit.Distance),
		zap.Stringer("model", hit.Object.ModelMatrix()),
	)
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	name, err := v.shots.Save(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("file", name))
}
