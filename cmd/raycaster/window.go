package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [map]",
	Short: "Explore a map in a desktop window",
	Long: `Open a desktop window rendering the map. Window size and pixel scale
come from the window section of the config.

Controls:
  W/S or Up/Down     - Move forward/back
  A/D or Left/Right  - Turn
  Q/E                - Strafe
  M/Tab              - Toggle minimap
  F12                - Save a PNG screenshot
  Esc                - Quit

Examples:
  raycaster window
  raycaster window courtyard --quality ultra`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagQuality, "quality", "", "Quality preset: low, medium, high, ultra")
	windowCmd.Flags().BoolVar(&flagMinimap, "minimap", false, "Start with the minimap shown")
}

func runWindow(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg := loadConfig()
	gameMap := loadMap(args)

	store := openStore(logger)

	runErr := window.Run(gameMap, window.Options{
		Config: cfg,
		FPS:    flagFPS,
		Store:  store,
		Logger: logger,
		User:   currentUser(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running window: %v", runErr)
	}
}
