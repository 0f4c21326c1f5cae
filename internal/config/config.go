// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"strings"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	FPSLimit      int        `yaml:"fps_limit"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// CameraConfig holds the initial camera state.
type CameraConfig struct {
	Mode        string     `yaml:"mode"` // fly or orbit
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`   // degrees
	Pitch       float32    `yaml:"pitch"` // degrees
	FOV         float32    `yaml:"fov"`   // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Speed       float32    `yaml:"speed"`       // units per second; orbit pan speed
	Sensitivity float32    `yaml:"sensitivity"` // degrees per mouse unit in both modes
}

// SceneConfig selects the scene to show.
type SceneConfig struct {
	Name      string   `yaml:"name"`
	Dirs      []string `yaml:"dirs"`       // extra scene directories
	TimeScale float32  `yaml:"time_scale"` // multiplies frame delta time
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         800,
			Height:        600,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Mode:        "fly",
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			FOV:         45,
			Near:        0.1,
			Far:         50,
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Scene: SceneConfig{
			Name:      "default",
			TimeScale: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", g.Width, g.Height)
	}
	if g.FPSLimit < 0 {
		return fmt.Errorf("graphics: negative fps_limit %d", g.FPSLimit)
	}

	cam := c.Camera
	switch strings.ToLower(cam.Mode) {
	case "", "fly", "orbit":
	default:
		return fmt.Errorf("camera: unknown mode %q", cam.Mode)
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("camera: fov %g out of range (0, 180)", cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("camera: need 0 < near < far, got near=%g far=%g", cam.Near, cam.Far)
	}
	if cam.Speed < 0 || cam.Sensitivity < 0 {
		return fmt.Errorf("camera: negative speed or sensitivity")
	}

	if c.Scene.Name == "" {
		return fmt.Errorf("scene: empty name")
	}
	if c.Scene.TimeScale < 0 {
		return fmt.Errorf("scene: negative time_scale %g", c.Scene.TimeScale)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	return nil
}
