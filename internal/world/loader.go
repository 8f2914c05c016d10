package world

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading map files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		maps = append(maps, m)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})

	return maps, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path

	return m, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}

	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}

	return Map{}, fmt.Errorf("map not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
