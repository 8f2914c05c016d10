package config

import (
	_ "embed"
)

//go:embed defaults/raycaster.yaml
var defaultRaycasterYAML []byte

// DefaultRaycasterConfig returns the default engine configuration.
func DefaultRaycasterConfig() RaycasterConfig {
	return RaycasterConfig{
		Camera: CameraConfig{
			MoveSpeed:     4.0,
			RotationSpeed: 2.0,
		},
		View: ViewConfig{
			FOVDegrees:  180 / 3.5,
			ColumnWidth: 1,
			MaxDistance: 20,
			Falloff:     0.75,
			StartOffset: 1e-6,
			Background:  "black",
		},
		Minimap: MinimapConfig{
			CellSize:    3,
			ShowRays:    true,
			GridColor:   "darkgray",
			PlayerColor: "green",
			RayColor:    "blue",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Render: RenderConfig{
			Workers: 1,
		},
		Window: WindowConfig{
			Width:  960,
			Height: 720,
			Scale:  3,
			Title:  "raycaster",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRaycasterYAML
}
