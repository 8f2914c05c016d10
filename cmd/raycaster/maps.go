package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/maps"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps",
	Long: `Shows the built-in maps and any map files found under --maps-dir.
A file with the same id as a built-in map replaces it.`,
	Run: runMaps,
}

func runMaps(_ *cobra.Command, _ []string) {
	items, err := maps.NewCatalog(flagMapsDir).List()
	if err != nil {
		fail("%v", err)
	}

	if len(items) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, m := range items {
		maxIDLen = max(maxIDLen, len(m.ID))
		maxNameLen = max(maxNameLen, len(m.Name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "----")

	for _, m := range items {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, m.ID, maxNameLen, m.Name, m.Size)
	}

	fmt.Println()
	fmt.Println("Run 'raycaster play <id>' to explore a map.")
}
