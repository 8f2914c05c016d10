// raycaster is a Wolfenstein-style first-person renderer for the terminal.
//
// Usage:
//
//	raycaster maps               - List available maps
//	raycaster play [map]         - Explore a map in the terminal
//	raycaster window [map]       - Explore a map in a desktop window
//	raycaster menu               - Pick maps interactively
//	raycaster serve              - Start SSH server for remote play
//	raycaster sessions [map]     - Show session history
//	raycaster bench [map]        - Measure headless render speed
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 30)
//	--config <path>     - Engine config YAML
//	--db <path>         - Set database path (default: ~/.raycaster/sessions.db)
//	--maps-dir <path>   - Extra directory of map files
//	--log-file <path>   - Write logs to a file
//	--debug             - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import built-in maps to register them
	_ "github.com/vovakirdan/tui-raycaster/internal/maps"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagDBPath  string
	flagMapsDir string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycaster",
	Short: "Raycaster - explore grid maps in first person from your terminal",
	Long: `Raycaster renders a 2D grid map as a pseudo-3D first-person view by
casting one ray per screen column, Wolfenstein style.

Available commands:
  maps      - Show all available maps
  play      - Explore a map in the terminal
  window    - Explore a map in a desktop window
  menu      - Interactive map picker
  serve     - Start SSH server for remote play
  sessions  - View session history
  bench     - Measure render speed without a display

Examples:
  raycaster maps
  raycaster play classic
  raycaster play courtyard --quality high --minimap
  raycaster window
  raycaster serve --ssh :2222
  raycaster sessions classic`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raycaster/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps-dir", "", "Directory with additional map files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(benchCmd)
}
