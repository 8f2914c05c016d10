// Package world holds the static grid the raycaster renders: cells, the
// appearance palette they index into, and the map file format that
// authors both.
package world

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// CellKind tags what occupies a grid cell.
type CellKind uint8

const (
	CellEmpty   CellKind = iota // Nothing; rays pass through
	CellColor                   // Wall with a flat color
	CellTexture                 // Wall with a texture (sampling not implemented)
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellColor:
		return "color"
	case CellTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// TextureID is an opaque handle to a texture asset.
type TextureID uint16

// NoTexture is the null texture handle.
const NoTexture TextureID = 0

// Known texture assets, in asset table order.
const (
	TextureBricks TextureID = iota + 1
)

var textureNames = map[string]TextureID{
	"bricks": TextureBricks,
}

// ParseTexture resolves a texture asset name.
func ParseTexture(name string) (TextureID, bool) {
	id, ok := textureNames[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// String returns the asset name of the texture.
func (t TextureID) String() string {
	for name, id := range textureNames {
		if id == t {
			return name
		}
	}
	return fmt.Sprintf("texture#%d", uint16(t))
}

// Cell is a single grid square: empty, a flat colored wall or a textured wall.
// The zero value is an empty cell. Cells are comparable.
type Cell struct {
	kind    CellKind
	color   core.Color
	texture TextureID
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// Solid returns a wall cell painted with c.
func Solid(c core.Color) Cell {
	return Cell{kind: CellColor, color: c}
}

// Textured returns a wall cell referencing texture id.
func Textured(id TextureID) Cell {
	return Cell{kind: CellTexture, texture: id}
}

// Kind returns the cell tag.
func (c Cell) Kind() CellKind {
	return c.kind
}

// Occupied returns true for any wall cell.
func (c Cell) Occupied() bool {
	return c.kind != CellEmpty
}

// Color returns the wall color of a CellColor cell.
func (c Cell) Color() (core.Color, bool) {
	return c.color, c.kind == CellColor
}

// Texture returns the texture handle of a CellTexture cell.
func (c Cell) Texture() (TextureID, bool) {
	return c.texture, c.kind == CellTexture
}

// String returns a short description of the cell.
func (c Cell) String() string {
	switch c.kind {
	case CellColor:
		return "color:" + c.color.String()
	case CellTexture:
		return "texture:" + c.texture.String()
	default:
		return "empty"
	}
}
