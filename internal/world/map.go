package world

import "github.com/vovakirdan/tui-raycaster/internal/core"

// Spawn is the initial camera pose of a map.
type Spawn struct {
	Pos core.Vec2
	Dir core.Vec2
}

// Map is a complete, ready-to-render map definition.
type Map struct {
	ID          string
	Name        string
	Description string
	World       *World
	Spawn       Spawn
	Metadata    map[string]string
	FilePath    string // Empty for built-in maps
}
