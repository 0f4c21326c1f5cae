// Package bootstrap builds the camera and scene described by a config.
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/assets"
	"github.com/Faultbox/affinity/internal/config"
	"github.com/Faultbox/affinity/internal/engine/camera"
	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/logger"
	"github.com/Faultbox/affinity/pkg/math"
)

// NewCamera builds the configured camera.
func NewCamera(cfg config.CameraConfig, width, height int) (camera.Controller, error) {
	mode, err := camera.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	lens := camera.DefaultPerspective()
	lens.FOV = cfg.FOV
	lens.MaxFOV = max(lens.MaxFOV, cfg.FOV)
	lens.Near = cfg.Near
	lens.Far = cfg.Far
	lens.SetAspect(width, height)

	pos := math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}

	switch mode {
	case camera.ModeOrbit:
		c := camera.NewOrbitCamera()
		c.Perspective = lens
		c.Distance = max(pos.Length(), c.MinDistance)
		c.Yaw = math.DegToRad(cfg.Yaw + 90)
		c.Pitch = math.DegToRad(-cfg.Pitch)
		c.PanSpeed = cfg.Speed
		c.DragSensitivity = math.DegToRad(cfg.Sensitivity)
		return c, nil
	default:
		c := camera.NewFlyCamera()
		c.Perspective = lens
		c.Pos = pos
		c.Yaw = cfg.Yaw
		c.Pitch = cfg.Pitch
		c.Speed = cfg.Speed
		c.Sensitivity = cfg.Sensitivity
		return c, nil
	}
}

func newManager(cfg config.SceneConfig) (*assets.Manager, error) {
	m := assets.NewManager()
	for _, dir := range cfg.Dirs {
		if err := m.AddDir(dir); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// SceneNames lists the scenes visible through the configured directories.
func SceneNames(cfg config.SceneConfig) ([]string, error) {
	m, err := newManager(cfg)
	if err != nil {
		return nil, err
	}
	return m.Scenes(), nil
}

// LoadScene resolves the configured scene and builds it around cam. An orbit
// camera is refit to frame the scene.
func LoadScene(cfg config.SceneConfig, cam scene.Camera) (*scene.Scene, error) {
	m, err := newManager(cfg)
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = assets.DefaultScene
	}
	f, err := m.LoadScene(name)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", name, err)
	}
	s, err := f.Build(cam)
	if err != nil {
		return nil, err
	}
	if orbit, ok := cam.(*camera.OrbitCamera); ok {
		if lo, hi, ok := s.Bounds(); ok {
			orbit.FitToBounds(lo, hi)
		}
	}

	logger.Info("scene ready",
		zap.String("scene", s.Name),
		zap.Int("objects", s.Len()),
		zap.Strings("available", m.Scenes()),
	)
	return s, nil
}
