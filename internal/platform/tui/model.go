package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// Options holds the collaborators shared by every screen of a session.
type Options struct {
	Config   config.RaycasterConfig
	Runtime  core.RuntimeConfig // Terminal size and frame rate
	Store    *storage.Store     // May be nil; history is then not recorded
	Logger   *log.Logger        // May be nil
	Renderer *lipgloss.Renderer // May be nil for the local terminal
	User     string
	Frontend string // Recorded with the session, e.g. "tui" or "ssh"

	// ScreenshotDir is where ctrl+s writes frames. Empty means
	// ~/.raycaster/screenshots.
	ScreenshotDir string
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Model is the Bubble Tea model that renders one map.
type Model struct {
	gameMap   world.Map
	engine    *raycast.Engine
	fb        *core.Framebuffer
	presenter *Presenter
	keyState  *KeyState
	keys      KeyMap
	help      help.Model
	clock     *core.Clock
	opts      Options
	now       func() time.Time
	status    string // Transient message shown in the status bar
	quitting  bool
	back      bool
	saved     bool
}

// NewModel creates a model exploring m.
func NewModel(m world.Map, opts Options) (Model, error) {
	engineOpts, err := opts.Config.EngineOptions()
	if err != nil {
		return Model{}, err
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	cam := raycast.Camera{Pos: m.Spawn.Pos, Dir: m.Spawn.Dir}
	fbW, fbH := opts.Runtime.FrameSize()

	h := help.New()
	h.ShowAll = false

	return Model{
		gameMap:   m,
		engine:    raycast.NewEngine(m.World, cam, engineOpts),
		fb:        core.NewFramebuffer(fbW, fbH),
		presenter: NewPresenter(opts.Renderer),
		keyState:  NewKeyState(time.Duration(opts.Config.Input.HoldMS) * time.Millisecond),
		keys:      DefaultKeyMap(),
		help:      h,
		clock:     core.NewClock(opts.Runtime.TickRate),
		opts:      opts,
		now:       time.Now,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.fb.Resize(m.opts.Runtime.FrameSize())
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.saveSession()
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		m.saveSession()
		return m, nil
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionNone:
	default:
		m.keyState.Press(action, m.now())
	}

	return m, nil
}

// handleTick runs one engine frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}
	in := m.keyState.Frame(m.now())
	m.engine.Frame(m.fb, in, m.clock.Delta())
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveSession records the session statistics once.
func (m *Model) saveSession() {
	if m.saved || m.opts.Store == nil {
		return
	}
	m.saved = true

	stats := m.engine.Stats()
	if stats.Frames == 0 {
		return
	}
	_, err := m.opts.Store.SaveSession(storage.Session{
		MapID:    m.gameMap.ID,
		User:     m.opts.User,
		Frontend: m.opts.Frontend,
		Frames:   stats.Frames,
		Duration: stats.Elapsed,
		Distance: stats.Distance,
	})
	if err != nil {
		m.opts.logger().Warn("could not save session", "map", m.gameMap.ID, "error", err)
	}
}

// saveScreenshot writes the current frame as ANSI text.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed"
			return
		}
		dir = filepath.Join(home, ".raycaster", "screenshots")
	}

	path, err := WriteScreenshot(dir, m.gameMap.ID, m.presenter.Render(m.fb), m.now())
	if err != nil {
		m.opts.logger().Warn("could not save screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.opts.logger().Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// WriteScreenshot stores frame text under dir and returns the file path.
func WriteScreenshot(dir, mapID, frame string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.ans", mapID, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(frame+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.presenter.Render(m.fb))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine shows the map, pose and key hints below the view.
func (m Model) statusLine() string {
	cam := m.engine.Camera()
	left := fmt.Sprintf(" %s  pos %.1f,%.1f", m.gameMap.Name, cam.Pos.X, cam.Pos.Y)
	if m.engine.Debug() {
		left += "  [map]"
	}
	if m.status != "" {
		left += "  " + m.status
	}

	style := m.presenter.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	if m.help.ShowAll {
		return style.Render(left) + "\n" + m.help.View(m.keys)
	}
	return style.Render(left + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
}

// Stats returns the engine counters for the session so far.
func (m Model) Stats() raycast.Stats {
	return m.engine.Stats()
}

// Engine exposes the underlying engine.
func (m Model) Engine() *raycast.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts a standalone Bubble Tea program exploring gameMap.
// Esc ends the program like ctrl+c.
func Run(gameMap world.Map, opts Options) error {
	model, err := NewModel(gameMap, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		standalone{model},
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

// standalone quits the program when the model asks for the menu.
type standalone struct {
	Model
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.Model.Update(msg)
	s.Model = next.(Model)
	if s.Model.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
