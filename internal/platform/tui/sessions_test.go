package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/maps"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

func TestSessionRows(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	rows := SessionRows([]storage.Session{
		{MapID: "classic", Frontend: "ssh", Frames: 300, Duration: 10, Distance: 12.34, CreatedAt: at},
	})

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	want := []string{"Jan 02 03:04", "classic", "-", "ssh", "10s", "30", "12.3"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("column %d = %q, want %q", i, rows[0][i], cell)
		}
	}
}

func TestSessionsTabs(t *testing.T) {
	store := openTestStore(t)
	for _, id := range []string{"classic", "classic", "corridor"} {
		if _, err := store.SaveSession(storage.Session{MapID: id, Frontend: "tui", Frames: 1, Duration: 1}); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
	}

	items := []registry.MapInfo{
		{ID: "classic", Name: "Classic"},
		{ID: "corridor", Name: "Corridor"},
	}
	m := NewSessionsModel(store, items, 80, 24, lipgloss.NewRenderer(&bytes.Buffer{}))

	if len(m.sessions) != 3 {
		t.Errorf("all maps tab: %d sessions, want 3", len(m.sessions))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionsModel)
	if len(m.sessions) != 2 {
		t.Errorf("classic tab: %d sessions, want 2", len(m.sessions))
	}
	if !strings.Contains(m.View(), "SESSIONS - Classic") {
		t.Error("title should name the selected map")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(SessionsModel)
	if len(m.sessions) != 1 {
		t.Errorf("corridor tab: %d sessions, want 1", len(m.sessions))
	}
}

func TestSessionsEmptyAndBack(t *testing.T) {
	m := NewSessionsModel(nil, nil, 120, 30, lipgloss.NewRenderer(&bytes.Buffer{}))
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("empty history should say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(SessionsModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionModelFlow(t *testing.T) {
	store := openTestStore(t)
	opts := testOptions(t, store)
	opts.Frontend = "ssh"

	var m tea.Model = NewSessionModel(maps.NewCatalog(""), registry.List(), opts)
	step := func(msg tea.Msg) SessionModel {
		t.Helper()
		m, _ = m.Update(msg)
		return m.(SessionModel)
	}

	s := step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenPlay {
		t.Fatalf("screen = %v, want play", s.screen)
	}

	step(TickMsg(time.Now()))
	s = step(tea.KeyMsg{Type: tea.KeyEscape})
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after esc", s.screen)
	}

	sessions, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Frontend != "ssh" {
		t.Errorf("sessions = %+v", sessions)
	}

	s = step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenHistory {
		t.Fatalf("screen = %v, want history", s.screen)
	}
	s = step(tea.KeyMsg{Type: tea.KeyEscape})
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", s.screen)
	}

	step(runeKey('q'))
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
