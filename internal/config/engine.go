package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// EngineOptions converts the configuration to frame pipeline options.
func (c RaycasterConfig) EngineOptions() (raycast.Options, error) {
	if err := c.Validate(); err != nil {
		return raycast.Options{}, fmt.Errorf("config: %w", err)
	}

	color := func(s string) core.Color {
		col, _ := core.ParseColor(s) // Validated above
		return col
	}

	return raycast.Options{
		FOV:         c.View.FOVDegrees * math.Pi / 180,
		ColumnWidth: c.View.ColumnWidth,
		MaxDistance: c.View.MaxDistance,
		Falloff:     c.View.Falloff,
		StartOffset: c.View.StartOffset,
		Background:  color(c.View.Background),
		Motion: raycast.Motion{
			MoveSpeed:     c.Camera.MoveSpeed,
			RotationSpeed: c.Camera.RotationSpeed,
			Normalize:     c.Camera.Normalize,
		},
		Minimap: raycast.MinimapOptions{
			CellSize:    c.Minimap.CellSize,
			ShowRays:    c.Minimap.ShowRays,
			GridColor:   color(c.Minimap.GridColor),
			PlayerColor: color(c.Minimap.PlayerColor),
			RayColor:    color(c.Minimap.RayColor),
		},
		Debug:   c.Minimap.Enabled,
		Workers: c.Render.Workers,
	}, nil
}
