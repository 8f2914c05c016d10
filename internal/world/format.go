package world

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// layoutCodes lists the layout characters for appearance codes 1, 2, ...
const layoutCodes = "123456789abcdefghijklmnopqrstuvwxyz"

// minSpawnDir is the shortest spawn direction kept; anything closer to zero
// would give degenerate rays and is replaced by the default facing.
const minSpawnDir = 1e-9

// YAMLMap represents the YAML structure of a map file.
type YAMLMap struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Palette     []YAMLAppearance  `yaml:"palette"`
	Spawn       YAMLSpawn         `yaml:"spawn"`
	Layout      []string          `yaml:"layout"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// YAMLAppearance is one palette entry: exactly one of Color or Texture.
type YAMLAppearance struct {
	Color   string `yaml:"color,omitempty"`
	Texture string `yaml:"texture,omitempty"`
}

// YAMLSpawn is the initial camera pose in grid units.
type YAMLSpawn struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	DirX float64 `yaml:"dir_x"`
	DirY float64 `yaml:"dir_y"`
}

// ParseYAML parses a map file.
//
// Layout rows use '.', ' ' or '0' for empty space and the characters
// 1-9 then a-z for palette codes 1, 2, ... in palette order.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return ym.Build()
}

// Build validates the YAML structure and constructs the Map.
func (ym YAMLMap) Build() (Map, error) {
	if ym.ID == "" {
		return Map{}, fmt.Errorf("map has no id")
	}

	palette, err := buildPalette(ym.Palette)
	if err != nil {
		return Map{}, fmt.Errorf("map %s: %w", ym.ID, err)
	}

	w, err := FromLayout(ym.Layout, palette)
	if err != nil {
		return Map{}, fmt.Errorf("map %s: %w", ym.ID, err)
	}

	spawn := Spawn{
		Pos: core.V(ym.Spawn.X, ym.Spawn.Y),
		Dir: core.V(ym.Spawn.DirX, ym.Spawn.DirY),
	}
	if spawn.Dir.Near(core.Vec2{}, minSpawnDir) {
		spawn.Dir = core.V(1, 0) // Face east by default
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	return Map{
		ID:          ym.ID,
		Name:        name,
		Description: ym.Description,
		World:       w,
		Spawn:       spawn,
		Metadata:    ym.Metadata,
	}, nil
}

// buildPalette converts YAML appearances to a Palette.
func buildPalette(entries []YAMLAppearance) (Palette, error) {
	if len(entries) > len(layoutCodes) {
		return Palette{}, fmt.Errorf("palette has %d entries, at most %d supported", len(entries), len(layoutCodes))
	}

	cells := make([]Cell, 0, len(entries))
	for i, e := range entries {
		switch {
		case e.Color != "" && e.Texture != "":
			return Palette{}, fmt.Errorf("palette entry %d sets both color and texture", i+1)
		case e.Color != "":
			c, ok := core.ParseColor(e.Color)
			if !ok {
				return Palette{}, fmt.Errorf("palette entry %d: unknown color %q", i+1, e.Color)
			}
			cells = append(cells, Solid(c))
		case e.Texture != "":
			id, ok := ParseTexture(e.Texture)
			if !ok {
				return Palette{}, fmt.Errorf("palette entry %d: unknown texture %q", i+1, e.Texture)
			}
			cells = append(cells, Textured(id))
		default:
			return Palette{}, fmt.Errorf("palette entry %d is empty", i+1)
		}
	}
	return NewPalette(cells...), nil
}

// FromLayout builds a world from text rows, one character per cell.
// '.', ' ' and '0' are empty; 1-9 then a-z select palette codes 1, 2, ...
func FromLayout(layout []string, palette Palette) (*World, error) {
	codes, err := parseLayout(layout)
	if err != nil {
		return nil, err
	}
	return New(palette, codes)
}

// parseLayout converts layout rows to appearance codes.
func parseLayout(rows []string) ([][]int, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	codes := make([][]int, len(rows))
	for r, row := range rows {
		line := make([]int, 0, len(row))
		for c, ch := range row {
			switch ch {
			case '.', ' ', '0':
				line = append(line, 0)
				continue
			}
			idx := strings.IndexRune(layoutCodes, ch)
			if idx < 0 {
				return nil, fmt.Errorf("layout row %d col %d: invalid character %q", r, c, ch)
			}
			line = append(line, idx+1)
		}
		codes[r] = line
	}
	return codes, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
