package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// MinimapOptions configures the debug overhead view.
type MinimapOptions struct {
	CellSize    int // pixels per grid cell
	ShowRays    bool
	GridColor   core.Color
	PlayerColor core.Color
	RayColor    core.Color
}

// DefaultMinimapOptions returns the stock minimap look.
func DefaultMinimapOptions() MinimapOptions {
	return MinimapOptions{
		CellSize:    3,
		ShowRays:    true,
		GridColor:   core.DarkGray,
		PlayerColor: core.Green,
		RayColor:    core.Blue,
	}
}

// DrawMinimap draws w at the top-left of dst: occupied cells, grid lines,
// the traced ray segments and the camera.
func DrawMinimap(dst core.Renderer, w *world.World, cam Camera, rays [][]Step, opts MinimapOptions) {
	size := opts.CellSize
	if size <= 0 || w == nil {
		return
	}
	mw, mh := w.Cols()*size, w.Rows()*size

	for _, rc := range w.OccupiedCells() {
		cell, _ := w.At(rc.Row, rc.Col)
		dst.FillRect(rc.Col*size, rc.Row*size, size, size, cellColor(cell))
	}

	for col := 0; col <= w.Cols(); col++ {
		dst.Line(col*size, 0, col*size, mh, opts.GridColor)
	}
	for row := 0; row <= w.Rows(); row++ {
		dst.Line(0, row*size, mw, row*size, opts.GridColor)
	}

	if opts.ShowRays {
		for _, steps := range rays {
			for _, s := range steps {
				x0, y0 := toMinimap(s.From, size)
				x1, y1 := toMinimap(s.To, size)
				dst.Line(x0, y0, x1, y1, opts.RayColor)
			}
		}
	}

	px, py := toMinimap(cam.Pos, size)
	dst.Circle(px, py, core.Max(1, size/3), opts.PlayerColor)
}

func toMinimap(p core.Vec2, size int) (int, int) {
	s := float64(size)
	return int(math.Floor(p.X * s)), int(math.Floor(p.Y * s))
}

// cellColor is the flat color a cell shows on the minimap.
func cellColor(c world.Cell) core.Color {
	switch c.Kind() {
	case world.CellColor:
		col, _ := c.Color()
		return col
	case world.CellTexture:
		return TexturePlaceholder
	default:
		return core.Black
	}
}
