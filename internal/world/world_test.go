package world

import (
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func TestNewValidatesGrid(t *testing.T) {
	pal := NewPalette(Solid(core.Red))

	tests := []struct {
		name    string
		codes   [][]int
		wantErr bool
	}{
		{"valid", [][]int{{0, 1}, {1, 0}}, false},
		{"no rows", nil, true},
		{"no cols", [][]int{{}}, true},
		{"ragged", [][]int{{0, 1}, {1}}, true},
		{"unknown code", [][]int{{0, 2}}, true},
		{"negative code", [][]int{{-1, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(pal, tt.codes)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWorldAt(t *testing.T) {
	pal := NewPalette(Solid(core.Red), Textured(TextureBricks))
	w, err := New(pal, [][]int{
		{0, 1, 0},
		{2, 0, 0},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if w.Rows() != 2 || w.Cols() != 3 {
		t.Fatalf("expected 2x3, got %dx%d", w.Rows(), w.Cols())
	}

	cell, ok := w.At(0, 1)
	if !ok || cell != Solid(core.Red) {
		t.Errorf("At(0,1) = %v,%v; want red wall", cell, ok)
	}
	if c, isColor := cell.Color(); !isColor || c != core.Red {
		t.Errorf("Color() = %v,%v; want red", c, isColor)
	}

	cell, _ = w.At(1, 0)
	if id, ok := cell.Texture(); !ok || id != TextureBricks {
		t.Errorf("At(1,0) texture = %v,%v; want bricks", id, ok)
	}
	if _, ok := cell.Color(); ok {
		t.Error("textured cell should not report a color")
	}

	if w.Occupied(0, 0) {
		t.Error("(0,0) should be empty")
	}

	for _, rc := range []Coord{RC(-1, 0), RC(0, -1), RC(2, 0), RC(0, 3)} {
		cell, ok := w.At(rc.Row, rc.Col)
		if ok || cell.Occupied() {
			t.Errorf("At%v should be out of bounds and empty", rc)
		}
		if w.Occupied(rc.Row, rc.Col) {
			t.Errorf("Occupied%v should be false", rc)
		}
	}
}

func TestWorldOccupiedCells(t *testing.T) {
	w := NewFromCells(4, 4, map[Coord]Cell{
		RC(2, 1): Solid(core.Green),
		RC(0, 3): Solid(core.Red),
		RC(1, 0): Solid(core.Red),
		RC(9, 9): Solid(core.Blue), // ignored
	})

	got := w.OccupiedCells()
	want := []Coord{RC(0, 3), RC(1, 0), RC(2, 1)}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	entries := w.Palette().Entries()
	if len(entries) != 2 || entries[0] != Solid(core.Red) || entries[1] != Solid(core.Green) {
		t.Errorf("unexpected derived palette: %v", entries)
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		p    core.Vec2
		want Coord
	}{
		{core.V(2.5, 1.3), RC(1, 2)},
		{core.V(0, 0), RC(0, 0)},
		{core.V(3.999, 0.001), RC(0, 3)},
		{core.V(-0.1, 1), RC(1, -1)},
	}

	for _, tt := range tests {
		if got := CellAt(tt.p); got != tt.want {
			t.Errorf("CellAt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPaletteLookup(t *testing.T) {
	p := NewPalette(Solid(core.Yellow))

	if c, ok := p.Lookup(0); !ok || c.Occupied() {
		t.Error("code 0 should be empty space")
	}
	if c, ok := p.Lookup(1); !ok || c != Solid(core.Yellow) {
		t.Errorf("code 1 = %v,%v", c, ok)
	}
	if _, ok := p.Lookup(2); ok {
		t.Error("code 2 should be unknown")
	}
}

func TestCellString(t *testing.T) {
	if got := Empty().String(); got != "empty" {
		t.Errorf("Empty().String() = %q", got)
	}
	if got := Textured(TextureBricks).String(); got != "texture:bricks" {
		t.Errorf("Textured().String() = %q", got)
	}
	if Empty().Kind() != CellEmpty || Solid(core.Red).Kind() != CellColor {
		t.Error("unexpected kinds")
	}
}
