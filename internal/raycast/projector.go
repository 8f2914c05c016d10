package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// DefaultFalloff is the distance shading constant k in 1/d - k.
const DefaultFalloff = 0.75

// TexturePlaceholder is drawn for textured walls; texture sampling is not
// implemented.
var TexturePlaceholder = core.Magenta

// Slice is the vertical strip drawn for one screen column.
type Slice struct {
	Top    float64
	Height float64
	Color  core.Color
}

// Projector turns hit distances into screen slices.
type Projector struct {
	ScreenH float64
	Falloff float64
}

// Project returns the slice for a wall at distance. It reports false for
// empty cells and non-positive distances.
func (p Projector) Project(distance float64, cell world.Cell) (Slice, bool) {
	if distance <= 0 {
		return Slice{}, false
	}

	var base core.Color
	switch cell.Kind() {
	case world.CellColor:
		base, _ = cell.Color()
	case world.CellTexture:
		base = TexturePlaceholder
	case world.CellEmpty:
		return Slice{}, false
	default:
		return Slice{}, false
	}

	h := p.ScreenH / distance
	return Slice{
		Top:    (p.ScreenH - h) / 2,
		Height: h,
		Color:  base.Brightness(Shade(distance, p.Falloff)),
	}, true
}

// Shade is the brightness factor for a wall at distance. It is never
// positive, so walls only darken with distance.
func Shade(distance, k float64) float64 {
	return math.Min(0, 1/distance-k)
}
