package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagBenchFrames   int
	flagBenchDuration time.Duration
	flagBenchWidth    int
	flagBenchHeight   int
	flagBenchPaced    bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [map]",
	Short: "Measure headless render speed",
	Long: `Render frames into an off-screen framebuffer while the camera turns
in place, then report frames per second. Nothing is drawn to the terminal.

By default frames are rendered as fast as possible; --paced holds the loop
to --fps.

Examples:
  raycaster bench
  raycaster bench courtyard --frames 2000 --quality ultra
  raycaster bench --duration 5s --width 320 --height 200`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchFrames, "frames", 1000, "Number of frames to render (0 = no limit)")
	benchCmd.Flags().DurationVar(&flagBenchDuration, "duration", 0, "Stop after this long (0 = no limit)")
	benchCmd.Flags().IntVar(&flagBenchWidth, "width", 160, "Framebuffer width in pixels")
	benchCmd.Flags().IntVar(&flagBenchHeight, "height", 96, "Framebuffer height in pixels")
	benchCmd.Flags().BoolVar(&flagBenchPaced, "paced", false, "Pace frames to --fps")
	benchCmd.Flags().StringVar(&flagQuality, "quality", "", "Quality preset: low, medium, high, ultra")
	benchCmd.Flags().BoolVar(&flagMinimap, "minimap", false, "Draw the minimap every frame")
}

// headless is a platform that turns the camera and discards frames.
type headless struct {
	frames   int
	limit    int
	deadline time.Time
}

func (h *headless) Poll() core.InputFrame {
	return core.InputOf(core.ActionRotateRight)
}

func (h *headless) ShouldClose() bool {
	if h.limit > 0 && h.frames >= h.limit {
		return true
	}
	return !h.deadline.IsZero() && time.Now().After(h.deadline)
}

func (h *headless) Present(*core.Framebuffer) error {
	h.frames++
	return nil
}

func runBench(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	if flagBenchFrames <= 0 && flagBenchDuration <= 0 {
		fail("bench needs --frames or --duration")
	}

	cfg := loadConfig()
	gameMap := loadMap(args)

	opts, err := cfg.EngineOptions()
	if err != nil {
		fail("%v", err)
	}

	engine := raycast.NewEngine(gameMap.World, raycast.Camera{Pos: gameMap.Spawn.Pos, Dir: gameMap.Spawn.Dir}, opts)
	fb := core.NewFramebuffer(flagBenchWidth, flagBenchHeight)
	p := &headless{limit: flagBenchFrames}
	if flagBenchDuration > 0 {
		p.deadline = time.Now().Add(flagBenchDuration)
	}

	fps := 0
	if flagBenchPaced {
		fps = flagFPS
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("bench starting", "map", gameMap.ID, "width", flagBenchWidth, "height", flagBenchHeight,
		"columns", engine.Columns(flagBenchWidth), "workers", opts.Workers)

	start := time.Now()
	runErr := engine.Run(ctx, p, fb, core.NewClock(fps))
	elapsed := time.Since(start)
	if runErr != nil && ctx.Err() == nil {
		fail("bench: %v", runErr)
	}

	stats := engine.Stats()
	if stats.Frames == 0 {
		fmt.Println("No frames rendered.")
		return
	}
	rate := float64(stats.Frames) / elapsed.Seconds()
	fmt.Printf("Map:     %s (%s)\n", gameMap.Name, gameMap.ID)
	fmt.Printf("Frame:   %dx%d, %d columns\n", flagBenchWidth, flagBenchHeight, engine.Columns(flagBenchWidth))
	fmt.Printf("Frames:  %d in %s\n", stats.Frames, elapsed.Round(time.Millisecond))
	fmt.Printf("Rate:    %.1f fps (%.3f ms/frame)\n", rate, 1000/rate)

	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	// Record the measured rate, not the simulated turn time
	if _, err := store.SaveSession(storage.Session{
		MapID:    gameMap.ID,
		User:     currentUser(),
		Frontend: "bench",
		Frames:   stats.Frames,
		Duration: elapsed.Seconds(),
		Distance: stats.Distance,
	}); err != nil {
		logger.Warn("could not save session", "error", err)
	}
}
