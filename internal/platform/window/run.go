package window

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Options configures a window session.
type Options struct {
	Config        config.RaycasterConfig
	FPS           int
	Store         *storage.Store // May be nil
	Logger        *log.Logger    // May be nil
	User          string
	ScreenshotDir string // Empty means ~/.raycaster/screenshots
}

// Run opens a window exploring m and blocks until it is closed or Esc is
// pressed. The session is recorded in opts.Store when set.
func Run(m world.Map, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engineOpts, err := opts.Config.EngineOptions()
	if err != nil {
		return err
	}

	win := opts.Config.Window
	scale := max(win.Scale, 1)
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			shotDir = filepath.Join(home, ".raycaster", "screenshots")
		}
	}

	engine := raycast.NewEngine(m.World, raycast.Camera{Pos: m.Spawn.Pos, Dir: m.Spawn.Dir}, engineOpts)
	game := NewGame(engine, m.ID, max(win.Width/scale, 1), max(win.Height/scale, 1), shotDir)
	game.onScreenshot = func(path string, err error) {
		if err != nil {
			logger.Warn("could not save screenshot", "error", err)
			return
		}
		logger.Info("screenshot saved", "path", path)
	}

	title := win.Title
	if title == "" {
		title = "raycaster"
	}
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(title + " - " + m.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	logger.Debug("opening window", "map", m.ID, "width", win.Width, "height", win.Height, "scale", scale)
	err = ebiten.RunGame(game)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	saveSession(opts, logger, m.ID, engine.Stats())
	return nil
}

// saveSession records a finished session. Failures are logged only.
func saveSession(opts Options, logger *log.Logger, mapID string, stats raycast.Stats) {
	if opts.Store == nil || stats.Frames == 0 {
		return
	}
	_, err := opts.Store.SaveSession(storage.Session{
		MapID:    mapID,
		User:     opts.User,
		Frontend: "window",
		Frames:   stats.Frames,
		Duration: stats.Elapsed,
		Distance: stats.Distance,
	})
	if err != nil {
		logger.Warn("could not save session", "map", mapID, "error", err)
	}
}
