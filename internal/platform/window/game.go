// Package window runs the raycaster in a desktop window using Ebiten.
// The engine draws into a core.Framebuffer which is uploaded to the
// screen image once per frame and scaled up by Ebiten.
package window

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// Game adapts the engine to ebiten.Game.
type Game struct {
	engine  *raycast.Engine
	fb      *core.Framebuffer
	pixels  []byte
	mapID   string
	shotDir string

	// Overridable for tests
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
	tps         func() int
	now         func() time.Time

	onScreenshot func(path string, err error)
}

// NewGame creates a game drawing engine frames at width x height pixels.
func NewGame(engine *raycast.Engine, mapID string, width, height int, shotDir string) *Game {
	return &Game{
		engine:      engine,
		fb:          core.NewFramebuffer(width, height),
		mapID:       mapID,
		shotDir:     shotDir,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		tps:         ebiten.TPS,
		now:         time.Now,
	}
}

// Update implements ebiten.Game. It advances the camera by one tick.
func (g *Game) Update() error {
	in := pollInput(g.pressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if g.justPressed(screenshotKey) {
		path, err := WritePNG(g.shotDir, g.mapID, g.fb, g.now())
		if g.onScreenshot != nil {
			g.onScreenshot(path, err)
		}
	}

	dt := 0.0
	if tps := g.tps(); tps > 0 {
		dt = 1 / float64(tps)
	}
	g.engine.Update(in, dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Render(g.fb)
	g.pixels = g.fb.RGBA(g.pixels)
	screen.WritePixels(g.pixels)
}

// Layout implements ebiten.Game. The logical screen is the framebuffer;
// Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.fb.Size()
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *raycast.Engine {
	return g.engine
}

// WritePNG stores fb as a PNG under dir and returns the file path.
func WritePNG(dir, mapID string, fb *core.Framebuffer, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("window: create screenshot dir: %w", err)
	}

	w, h := fb.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Pix = fb.RGBA(img.Pix)

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", mapID, at.Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("window: create screenshot: %w", err)
	}
	if err := encodePNG(f, img); err != nil {
		return "", err
	}
	return path, nil
}

// encodePNG writes img to wc and closes it, reporting the first failure.
func encodePNG(wc io.WriteCloser, img image.Image) error {
	if err := png.Encode(wc, img); err != nil {
		_ = wc.Close()
		return fmt.Errorf("window: encode screenshot: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("window: close screenshot: %w", err)
	}
	return nil
}
