package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

const (
	// Epsilon replaces zero direction components and nudges samples
	// across cell boundaries on negative axes.
	Epsilon = 1e-6

	// DefaultMaxDistance is the render distance in cells.
	DefaultMaxDistance = 20.0

	// minHitDistance keeps reported distances strictly positive.
	minHitDistance = 1e-4
)

// Hit is the result of casting one ray.
type Hit struct {
	OK       bool
	Cell     world.Cell
	Coord    world.Coord
	Distance float64   // perpendicular distance, scaled by 1/aspect
	Point    core.Vec2 // sample point inside the hit cell
}

// Step is one DDA advance through a cell that held no wall.
type Step struct {
	Cell     world.Coord
	From, To core.Vec2
}

// Caster walks rays through a world.
type Caster struct {
	World       *world.World
	MaxDistance float64 // cells; <= 0 means DefaultMaxDistance
	Aspect      float64 // screen width / height; <= 0 means 1
	StartOffset float64 // initial advance along the ray; <= 0 means Epsilon
}

// Cast returns the first wall along dir as seen from cam.
func (c Caster) Cast(cam Camera, dir core.Vec2) Hit {
	return c.Trace(cam, dir, nil)
}

// Trace is Cast that also reports every cell it steps through before the
// hit, in traversal order. fn may be nil.
func (c Caster) Trace(cam Camera, dir core.Vec2, fn func(Step)) Hit {
	maxDist := c.MaxDistance
	if maxDist <= 0 {
		maxDist = DefaultMaxDistance
	}
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	offset := c.StartOffset
	if offset <= 0 {
		offset = Epsilon
	}

	if dir.X == 0 {
		dir.X = Epsilon
	}
	if dir.Y == 0 {
		dir.Y = Epsilon
	}

	sample := cam.Pos.Add(dir.Normalize().Scale(offset))
	for sample.Sub(cam.Pos).Len() <= maxDist {
		cell := world.CellAt(sample)
		if c.World != nil {
			if wall, _ := c.World.At(cell.Row, cell.Col); wall.Occupied() {
				dist := sample.Sub(cam.Pos).Dot(cam.Dir) / aspect
				return Hit{
					OK:       true,
					Cell:     wall,
					Coord:    cell,
					Distance: math.Max(dist, minHitDistance),
					Point:    sample,
				}
			}
		}

		next := advance(sample, cell, dir)
		if fn != nil {
			fn(Step{Cell: cell, From: sample, To: next})
		}
		sample = next
	}

	return Hit{}
}

// advance moves p along dir to the nearest cell boundary.
func advance(p core.Vec2, cell world.Coord, dir core.Vec2) core.Vec2 {
	bx := boundary(cell.Col, dir.X)
	by := boundary(cell.Row, dir.Y)
	dx := bx - p.X
	dy := by - p.Y

	if math.Abs(dx/dir.X) < math.Abs(dy/dir.Y) {
		// Land exactly on the boundary so floor never lags behind
		return core.V(bx, p.Y+dx*dir.Y/dir.X)
	}
	return core.V(p.X+dy*dir.X/dir.Y, by)
}

// boundary is the next grid line along one axis.
func boundary(index int, d float64) float64 {
	if d >= 0 {
		return float64(index + 1)
	}
	return float64(index) - Epsilon
}
