package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Explore a map in the terminal",
	Long: `Render a map in the terminal using half-block characters, two pixels
per cell. Without a map argument the classic map is loaded.

Controls:
  W/S or Up/Down     - Move forward/back
  A/D or Left/Right  - Turn
  Q/E                - Strafe
  M/Tab              - Toggle minimap
  Ctrl+S             - Save a screenshot
  Esc                - Leave
  Ctrl+C             - Quit

Quality options:
  low    - 4 pixel columns, short view distance
  medium - 2 pixel columns
  high   - Full resolution, 2 workers
  ultra  - Full resolution, long view distance, 4 workers

Examples:
  raycaster play
  raycaster play corridor --quality low
  raycaster play courtyard --minimap
  raycaster play my-level --maps-dir ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagQuality, "quality", "", "Quality preset: low, medium, high, ultra")
	playCmd.Flags().BoolVar(&flagMinimap, "minimap", false, "Start with the minimap shown")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	cfg := loadConfig()
	gameMap := loadMap(args)

	store := openStore(logger)

	runErr := tui.Run(gameMap, tui.Options{
		Config:   cfg,
		Runtime:  runtimeConfig(),
		Store:    store,
		Logger:   logger,
		User:     currentUser(),
		Frontend: "tui",
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running raycaster: %v", runErr)
	}
}
