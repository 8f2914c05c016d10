package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a map picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to explore a map.
Leaving a map with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select map
  Tab          - Session history
  Q            - Quit

Examples:
  raycaster menu
  raycaster menu --fps 20
  raycaster menu --maps-dir ./levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagQuality, "quality", "", "Quality preset: low, medium, high, ultra")
	menuCmd.Flags().BoolVar(&flagMinimap, "minimap", false, "Start with the minimap shown")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	cfg := loadConfig()
	catalog := maps.NewCatalog(flagMapsDir)
	items, err := catalog.List()
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(items, store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		rt.ScreenW, rt.ScreenH = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			break
		}

		if menuResult.WantsSessions {
			goBack, histErr := tui.RunSessions(store, items, rt.ScreenW, rt.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		if menuResult.MapID == "" {
			break
		}

		gameMap, err := catalog.Load(menuResult.MapID)
		if err != nil {
			logger.Error("could not load map", "map", menuResult.MapID, "error", err)
			continue
		}

		if err := tui.Run(gameMap, tui.Options{
			Config:   cfg,
			Runtime:  rt,
			Store:    store,
			Logger:   logger,
			User:     currentUser(),
			Frontend: "tui",
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running raycaster: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
