package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

func testOptions(t *testing.T, store *storage.Store) Options {
	t.Helper()
	return Options{
		Config:        config.DefaultRaycasterConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 40, ScreenH: 13, TickRate: 30},
		Store:         store,
		Renderer:      lipgloss.NewRenderer(&bytes.Buffer{}),
		User:          "tester",
		Frontend:      "tui",
		ScreenshotDir: t.TempDir(),
	}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := registry.Create(maps.DefaultID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	model, err := NewModel(m, testOptions(t, store))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	fixed := time.Unix(1000, 0)
	model.now = func() time.Time { return fixed }
	return model
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelTickRendersFrame(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if got := m.Stats().Frames; got != 1 {
		t.Errorf("Frames = %d, want 1", got)
	}

	view := m.View()
	lines := strings.Split(view, "\n")
	// 12 frame lines plus the status line
	if len(lines) != 13 {
		t.Errorf("view has %d lines, want 13", len(lines))
	}
	if !strings.Contains(view, "Classic") {
		t.Errorf("status line should name the map:\n%s", view)
	}
}

func TestModelMovesForward(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.Engine().Camera().Pos

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg(time.Now()))
	time.Sleep(20 * time.Millisecond)
	m, _ = update(t, m, TickMsg(time.Now()))

	pos := m.Engine().Camera().Pos
	if pos.X <= start.X {
		t.Errorf("camera x = %v, want > %v after moving forward", pos.X, start.X)
	}
	if pos.Y != start.Y {
		t.Errorf("camera y = %v, want unchanged %v", pos.Y, start.Y)
	}
}

func TestModelToggleMinimap(t *testing.T) {
	m := newTestModel(t, nil)
	if m.Engine().Debug() {
		t.Fatal("minimap should start hidden")
	}

	m, _ = update(t, m, runeKey('m'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.Engine().Debug() {
		t.Error("m should show the minimap")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)

	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting should be true")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	sessions, err := store.RecentSessions(maps.DefaultID, 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.User != "tester" || s.Frontend != "tui" || s.Frames != 1 {
		t.Errorf("session = %+v", s)
	}
}

func TestModelBackSavesOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Fatal("esc should return to the menu")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	sessions, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("got %d sessions, want 1", len(sessions))
	}
}

func TestModelSkipsEmptySession(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	sessions, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, want none before the first frame", len(sessions))
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	path, err := WriteScreenshot(dir, "classic", "frame", at)
	if err != nil {
		t.Fatalf("WriteScreenshot: %v", err)
	}
	if filepath.Base(path) != "classic_20240309_140506.ans" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "frame\n" {
		t.Errorf("content = %q", data)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})

	if w, h := m.fb.Size(); w != 20 || h != 10 {
		t.Errorf("framebuffer = %dx%d, want 20x10", w, h)
	}
}
