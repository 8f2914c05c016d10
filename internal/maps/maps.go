// Package maps registers the built-in maps shipped inside the binary.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-raycaster/internal/maps"
package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

//go:embed data/*.yaml
var mapFiles embed.FS

// DefaultID is the map played when none is named.
const DefaultID = "classic"

func init() {
	entries, err := fs.ReadDir(mapFiles, "data")
	if err != nil {
		panic(fmt.Sprintf("maps: reading embedded maps: %v", err))
	}

	for _, e := range entries {
		name := path.Join("data", e.Name())
		data, err := mapFiles.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("maps: reading %s: %v", name, err))
		}

		// Validate once so a broken built-in fails at startup
		m, err := world.ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("maps: %s: %v", name, err))
		}

		registry.Register(m.ID, func() world.Map {
			// World is immutable, so every factory call can share it
			return m
		})
	}
}
