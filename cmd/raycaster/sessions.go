package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagClear       bool
	flagLimit       int
	flagInteractive bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [map]",
	Short: "Show session history",
	Long: `Display recent sessions, optionally for one map, with totals.

Examples:
  raycaster sessions
  raycaster sessions classic --limit 5
  raycaster sessions --interactive
  raycaster sessions corridor --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history instead of showing it")
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a full-screen table")
}

func runSessions(_ *cobra.Command, args []string) {
	mapID := ""
	if len(args) > 0 {
		mapID = args[0]
	}

	catalog := maps.NewCatalog(flagMapsDir)
	if mapID != "" {
		if _, err := catalog.Load(mapID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown map %q\n", mapID)
			fmt.Fprintln(os.Stderr, "Run 'raycaster maps' to see available maps.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening session database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(mapID); err != nil {
			store.Close()
			fail("clearing sessions: %v", err)
		}
		fmt.Println("Session history cleared.")
		return
	}

	if flagInteractive {
		items, err := catalog.List()
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		rt := runtimeConfig()
		if _, err := tui.RunSessions(store, items, rt.ScreenW, rt.ScreenH); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(mapID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving sessions: %v", err)
	}

	title := "all maps"
	if mapID != "" {
		title = mapID
	}
	fmt.Printf("Sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'raycaster play' to start exploring!")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-10s  %-6s  %7s  %5s  %6s\n", "Date", "Map", "User", "Via", "Time", "FPS", "Dist")
	fmt.Printf("  %-16s  %-12s  %-10s  %-6s  %7s  %5s  %6s\n", "----", "---", "----", "---", "----", "---", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %-10s  %-6s  %6.0fs  %5.0f  %6.1f\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.MapID, s.User, s.Frontend, s.Duration, s.FPS(), s.Distance)
	}

	if mapID != "" {
		if st, err := store.GetMapStats(mapID); err == nil && st != nil {
			fmt.Println()
			fmt.Printf("Total: %d sessions, %d frames, %.0fs, %.1f cells walked\n",
				st.Sessions, st.TotalFrames, st.TotalDuration, st.TotalDistance)
		}
	}
}
