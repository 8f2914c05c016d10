// Package registry provides a global registry for map factories.
// Built-in maps register themselves in init() functions, allowing the
// platform to discover and load maps without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	ID          string
	Name        string
	Description string
	Size        string // "rows x cols"
}

// Factory is a function that creates a fresh instance of a map.
type Factory func() world.Map

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]MapInfo)
	mu        sync.RWMutex
)

// Register adds a map factory to the registry.
// Typically called from an init() function.
// Panics if a map with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: map %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	m := f()
	infos[id] = Info(m)
}

// Info describes a map for listings.
func Info(m world.Map) MapInfo {
	info := MapInfo{ID: m.ID, Name: m.Name, Description: m.Description}
	if m.World != nil {
		info.Size = fmt.Sprintf("%dx%d", m.World.Rows(), m.World.Cols())
	}
	return info
}

// List returns information about all registered maps, sorted by ID.
func List() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(factories))
	for id := range factories {
		info := infos[id]
		info.ID = id
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a map by its ID.
// Returns an error if the map ID is not registered.
func Create(id string) (world.Map, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return world.Map{}, fmt.Errorf("registry: unknown map %q", id)
	}

	return f(), nil
}

// Exists checks if a map with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
