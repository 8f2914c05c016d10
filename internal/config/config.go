// Package config provides YAML-based engine configuration loading and
// quality presets for the raycaster.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// RaycasterConfig contains all configuration for the renderer and its
// front ends.
type RaycasterConfig struct {
	Quality string        `yaml:"quality,omitempty"` // Optional preset applied on load
	Camera  CameraConfig  `yaml:"camera"`
	View    ViewConfig    `yaml:"view"`
	Minimap MinimapConfig `yaml:"minimap"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
	Window  WindowConfig  `yaml:"window"`
}

// CameraConfig defines movement parameters.
type CameraConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // Cells per second
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per second
	Normalize     bool    `yaml:"normalize"`      // Renormalize direction after turning
}

// ViewConfig defines projection parameters.
type ViewConfig struct {
	FOVDegrees  float64 `yaml:"fov_degrees"`
	ColumnWidth int     `yaml:"column_width"` // Pixels per ray
	MaxDistance float64 `yaml:"max_distance"` // Cells
	Falloff     float64 `yaml:"falloff"`      // k in 1/d - k
	StartOffset float64 `yaml:"start_offset"`
	Background  string  `yaml:"background"`
}

// MinimapConfig defines the debug overhead view.
type MinimapConfig struct {
	Enabled     bool   `yaml:"enabled"`
	CellSize    int    `yaml:"cell_size"`
	ShowRays    bool   `yaml:"show_rays"`
	GridColor   string `yaml:"grid_color"`
	PlayerColor string `yaml:"player_color"`
	RayColor    string `yaml:"ray_color"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last key event.
	// Terminals report presses and repeats but never releases.
	HoldMS int `yaml:"hold_ms"`
}

// RenderConfig defines rendering parameters.
type RenderConfig struct {
	Workers int `yaml:"workers"` // Column cast goroutines; 1 is sequential
}

// WindowConfig defines the desktop window front end.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"` // Window pixels per framebuffer pixel
	Title  string `yaml:"title"`
}

// Validate checks that the configuration can drive the engine.
func (c RaycasterConfig) Validate() error {
	if c.View.FOVDegrees <= 0 || c.View.FOVDegrees >= 180 {
		return fmt.Errorf("view.fov_degrees must be in (0, 180), got %v", c.View.FOVDegrees)
	}
	if c.View.ColumnWidth <= 0 {
		return fmt.Errorf("view.column_width must be positive, got %d", c.View.ColumnWidth)
	}
	if c.View.MaxDistance <= 0 {
		return fmt.Errorf("view.max_distance must be positive, got %v", c.View.MaxDistance)
	}
	if c.View.Falloff < 0 {
		return fmt.Errorf("view.falloff must not be negative, got %v", c.View.Falloff)
	}
	if c.Camera.MoveSpeed < 0 || c.Camera.RotationSpeed < 0 {
		return fmt.Errorf("camera speeds must not be negative")
	}
	if c.Minimap.CellSize <= 0 {
		return fmt.Errorf("minimap.cell_size must be positive, got %d", c.Minimap.CellSize)
	}
	if c.Input.HoldMS <= 0 {
		return fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.Scale <= 0 {
		return fmt.Errorf("window width, height and scale must be positive")
	}
	if c.Quality != "" && !IsValidQuality(QualityPreset(c.Quality)) {
		return fmt.Errorf("unknown quality preset %q", c.Quality)
	}

	for name, value := range map[string]string{
		"view.background":      c.View.Background,
		"minimap.grid_color":   c.Minimap.GridColor,
		"minimap.player_color": c.Minimap.PlayerColor,
		"minimap.ray_color":    c.Minimap.RayColor,
	} {
		if _, ok := core.ParseColor(value); !ok {
			return fmt.Errorf("%s: unknown color %q", name, value)
		}
	}
	return nil
}
