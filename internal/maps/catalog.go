package maps

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Catalog merges the built-in maps with map files from an optional
// directory. Files override built-ins with the same ID.
type Catalog struct {
	loader *world.Loader
}

// NewCatalog creates a catalog. An empty dir means built-ins only.
func NewCatalog(dir string) *Catalog {
	c := &Catalog{}
	if dir != "" {
		c.loader = world.NewLoader(dir)
	}
	return c
}

// List returns every available map, sorted by ID.
func (c *Catalog) List() ([]registry.MapInfo, error) {
	byID := make(map[string]registry.MapInfo)
	for _, info := range registry.List() {
		byID[info.ID] = info
	}

	if c.loader != nil {
		files, err := c.loader.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("maps: %w", err)
		}
		for _, m := range files {
			byID[m.ID] = registry.Info(m)
		}
	}

	infos := make([]registry.MapInfo, 0, len(byID))
	for _, info := range byID {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}

// Load returns the map with the given ID. An empty id loads DefaultID.
func (c *Catalog) Load(id string) (world.Map, error) {
	if id == "" {
		id = DefaultID
	}

	if c.loader != nil {
		if m, err := c.loader.LoadByID(id); err == nil {
			return m, nil
		}
	}

	if !registry.Exists(id) {
		return world.Map{}, fmt.Errorf("maps: unknown map %q", id)
	}
	m, err := registry.Create(id)
	if err != nil {
		return world.Map{}, fmt.Errorf("maps: build %q: %w", id, err)
	}
	return m, nil
}
