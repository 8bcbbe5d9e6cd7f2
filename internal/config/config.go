// Package config handles engine configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all engine settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Input   InputConfig   `yaml:"input"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 means uncapped
}

// CameraConfig holds the starting camera and its projection.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`       // units per second
	Sensitivity float32    `yaml:"sensitivity"` // degrees per cursor pixel
	FOV         float32    `yaml:"fov"`         // vertical, degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// RenderConfig holds shader and frame settings.
type RenderConfig struct {
	ClearColor     [4]float32 `yaml:"clear_color"`
	VertexShader   string     `yaml:"vertex_shader"`   // empty uses the built-in shader
	FragmentShader string     `yaml:"fragment_shader"` // empty uses the built-in shader
	MaxObjects     int        `yaml:"max_objects"`
	SlowFrame      int        `yaml:"slow_frame_ms"` // frames slower than this are logged; 0 disables
}

// InputConfig maps action names to key names, e.g. forward: [w, up].
// Actions missing from the map keep their default keys. Tracked lists the
// actions polled each frame; empty tracks all of them.
type InputConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
	Tracked  []string            `yaml:"tracked"`
}

// SceneConfig describes the demo scene built at startup.
type SceneConfig struct {
	Shape     string  `yaml:"shape"`      // triangle, square, cube or sphere
	Grid      int     `yaml:"grid"`       // objects per side
	Spacing   float32 `yaml:"spacing"`    // distance between grid cells
	Texture   string  `yaml:"texture"`    // optional image applied to every object
	SpinSpeed float32 `yaml:"spin_speed"` // degrees per second around Y
	Sphere    bool    `yaml:"sphere"`     // add a sphere above the grid
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "mini-engine",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
			MaxObjects: 50000,
			SlowFrame:  50,
		},
		Input: InputConfig{},
		Scene: SceneConfig{
			Shape:     "cube",
			Grid:      5,
			Spacing:   2,
			SpinSpeed: 45,
			Sphere:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var ErrInvalid = errors.New("invalid config")

// Validate reports the first setting the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.Window.FPSLimit < 0:
		return fmt.Errorf("fps_limit %d: %w", c.Window.FPSLimit, ErrInvalid)
	case c.Camera.Speed <= 0 || c.Camera.Sensitivity <= 0:
		return fmt.Errorf("camera speed %v sensitivity %v: %w", c.Camera.Speed, c.Camera.Sensitivity, ErrInvalid)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("camera fov %v: %w", c.Camera.FOV, ErrInvalid)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera near %v far %v: %w", c.Camera.Near, c.Camera.Far, ErrInvalid)
	case (c.Render.VertexShader == "") != (c.Render.FragmentShader == ""):
		return fmt.Errorf("vertex and fragment shader must be set together: %w", ErrInvalid)
	case c.Scene.Grid < 0:
		return fmt.Errorf("scene grid %d: %w", c.Scene.Grid, ErrInvalid)
	}
	return nil
}
