package world

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

const sampleMap = `
id: sample
name: Sample Room
palette:
  - color: red
  - color: "#00ff00"
  - texture: bricks
spawn:
  x: 2.5
  y: 1.3
layout:
  - "....."
  - "...12"
  - "....3"
metadata:
  author: test
`

func TestParseYAML(t *testing.T) {
	m, err := ParseYAML([]byte(sampleMap))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if m.ID != "sample" || m.Name != "Sample Room" {
		t.Errorf("unexpected id/name: %q %q", m.ID, m.Name)
	}
	if m.World.Rows() != 3 || m.World.Cols() != 5 {
		t.Fatalf("expected 3x5 grid, got %dx%d", m.World.Rows(), m.World.Cols())
	}
	if !m.Spawn.Pos.Near(core.V(2.5, 1.3), 1e-9) {
		t.Errorf("spawn pos = %v", m.Spawn.Pos)
	}
	if m.Spawn.Dir != core.V(1, 0) {
		t.Errorf("default spawn dir should face +x, got %v", m.Spawn.Dir)
	}
	if m.Metadata["author"] != "test" {
		t.Errorf("metadata not parsed: %v", m.Metadata)
	}

	cell, _ := m.World.At(1, 3)
	if cell != Solid(core.Red) {
		t.Errorf("(1,3) = %v, want red", cell)
	}
	cell, _ = m.World.At(1, 4)
	if cell != Solid(core.Color{G: 255}) {
		t.Errorf("(1,4) = %v, want #00ff00", cell)
	}
	cell, _ = m.World.At(2, 4)
	if id, ok := cell.Texture(); !ok || id != TextureBricks {
		t.Errorf("(2,4) = %v, want bricks", cell)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing id", "layout: ['.']", "no id"},
		{"empty layout", "id: x", "layout is empty"},
		{"bad char", "id: x\nlayout: ['.#']", "invalid character"},
		{"unknown code", "id: x\nlayout: ['.1']", "unknown appearance code"},
		{"unknown color", "id: x\npalette: [{color: mauve}]\nlayout: ['1']", "unknown color"},
		{"unknown texture", "id: x\npalette: [{texture: marble}]\nlayout: ['1']", "unknown texture"},
		{"both set", "id: x\npalette: [{color: red, texture: bricks}]\nlayout: ['1']", "both"},
		{"ragged", "id: x\npalette: [{color: red}]\nlayout: ['1.', '1']", "columns"},
		{"malformed", "id: [", "yaml unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseYAMLExplicitDir(t *testing.T) {
	m, err := ParseYAML([]byte("id: x\nspawn: {x: 1, y: 1, dir_x: 0, dir_y: -1}\nlayout: ['...']"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if m.Spawn.Dir != core.V(0, -1) {
		t.Errorf("spawn dir = %v", m.Spawn.Dir)
	}
	if m.Name != "x" {
		t.Errorf("name should default to id, got %q", m.Name)
	}
}

func TestParseYAMLDegenerateDir(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want core.Vec2
	}{
		{"tiny", "dir_x: 1e-12, dir_y: -1e-12", core.V(1, 0)},
		{"short but usable", "dir_x: 0, dir_y: 0.001", core.V(0, 0.001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "id: x\nspawn: {x: 1, y: 1, " + tt.dir + "}\nlayout: ['...']"
			m, err := ParseYAML([]byte(doc))
			if err != nil {
				t.Fatalf("ParseYAML failed: %v", err)
			}
			if !m.Spawn.Dir.Near(tt.want, 1e-15) {
				t.Errorf("spawn dir = %v, want %v", m.Spawn.Dir, tt.want)
			}
		})
	}
}

func TestFromLayout(t *testing.T) {
	pal := NewPalette(Solid(core.Red), Solid(core.Yellow))
	w, err := FromLayout([]string{
		"0 .",
		"1.2",
	}, pal)
	if err != nil {
		t.Fatalf("FromLayout failed: %v", err)
	}
	if got := w.OccupiedCells(); len(got) != 2 || got[0] != RC(1, 0) || got[1] != RC(1, 2) {
		t.Errorf("unexpected occupied cells %v", got)
	}
	if cell, _ := w.At(1, 2); cell != Solid(core.Yellow) {
		t.Errorf("(1,2) = %v, want yellow", cell)
	}
}
