package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Coord addresses a grid cell by row and column.
type Coord struct {
	Row int
	Col int
}

// RC is a convenience constructor for Coord.
func RC(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellAt returns the cell containing world point p in grid units.
func CellAt(p core.Vec2) Coord {
	return Coord{Row: int(math.Floor(p.Y)), Col: int(math.Floor(p.X))}
}

// World is a fixed-size grid of cells. One grid unit equals one cell width:
// cell (row, col) covers x in [col, col+1) and y in [row, row+1).
// A World is read-only once constructed and safe for concurrent reads.
type World struct {
	rows    int
	cols    int
	cells   []Cell // row-major, len rows*cols
	palette Palette
}

// New creates a world from a palette and a rows x cols grid of appearance
// codes. Every row must have cols entries and every code must exist in the
// palette.
func New(palette Palette, codes [][]int) (*World, error) {
	rows := len(codes)
	if rows == 0 {
		return nil, fmt.Errorf("world: grid has no rows")
	}
	cols := len(codes[0])
	if cols == 0 {
		return nil, fmt.Errorf("world: grid has no columns")
	}

	w := &World{
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, rows*cols),
		palette: palette,
	}
	for r, line := range codes {
		if len(line) != cols {
			return nil, fmt.Errorf("world: row %d has %d columns, expected %d", r, len(line), cols)
		}
		for c, code := range line {
			cell, ok := palette.Lookup(code)
			if !ok {
				return nil, fmt.Errorf("world: unknown appearance code %d at %v", code, RC(r, c))
			}
			w.cells[r*cols+c] = cell
		}
	}
	return w, nil
}

// NewFromCells creates a rows x cols world with the given occupied cells.
// Cells outside the grid are ignored. Useful for tests and generated maps.
func NewFromCells(rows, cols int, cells map[Coord]Cell) *World {
	w := &World{
		rows:  core.Max(rows, 0),
		cols:  core.Max(cols, 0),
		cells: make([]Cell, core.Max(rows, 0)*core.Max(cols, 0)),
	}
	for coord, cell := range cells {
		if w.InBounds(coord.Row, coord.Col) {
			w.cells[coord.Row*w.cols+coord.Col] = cell
		}
	}

	// Palette follows first appearance in row-major order.
	var entries []Cell
	seen := make(map[Cell]bool)
	for _, cell := range w.cells {
		if cell.Occupied() && !seen[cell] {
			seen[cell] = true
			entries = append(entries, cell)
		}
	}
	w.palette = NewPalette(entries...)
	return w
}

// Rows returns the grid height in cells.
func (w *World) Rows() int {
	return w.rows
}

// Cols returns the grid width in cells.
func (w *World) Cols() int {
	return w.cols
}

// Palette returns the appearance palette the grid was built from.
func (w *World) Palette() Palette {
	return w.palette
}

// InBounds returns true if (row, col) lies inside the grid.
func (w *World) InBounds(row, col int) bool {
	return row >= 0 && row < w.rows && col >= 0 && col < w.cols
}

// At returns the cell at (row, col). Coordinates outside the grid return
// an empty cell and false; out-of-bounds space is never a wall.
func (w *World) At(row, col int) (Cell, bool) {
	if !w.InBounds(row, col) {
		return Empty(), false
	}
	return w.cells[row*w.cols+col], true
}

// Occupied returns true if (row, col) is inside the grid and holds a wall.
func (w *World) Occupied(row, col int) bool {
	cell, ok := w.At(row, col)
	return ok && cell.Occupied()
}

// OccupiedCells returns the coordinates of all walls, ordered by row then column.
func (w *World) OccupiedCells() []Coord {
	coords := make([]Coord, 0)
	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			if w.cells[r*w.cols+c].Occupied() {
				coords = append(coords, RC(r, c))
			}
		}
	}
	return coords
}
