package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// MenuModel is the Bubble Tea model for the map picker menu.
type MenuModel struct {
	items        []registry.MapInfo
	cursor       int
	width        int
	height       int
	store        *storage.Store
	stats        map[string]*storage.MapStats
	renderer     *lipgloss.Renderer
	quitting     bool
	selected     *registry.MapInfo // Set when user selects a map
	openSessions bool              // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model over the given maps.
func NewMenuModel(items []registry.MapInfo, store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	m := MenuModel{
		items:    items,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		store:    store,
		renderer: r,
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}
	if store != nil {
		// Best-effort; the menu works without history
		if stats, err := store.GetAllMapStats(); err == nil {
			m.stats = stats
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the map
		}

	case MenuActionSessions:
		m.openSessions = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  R A Y C A S T E R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render(centerText("No maps found.", m.width)))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := m.renderer.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		line := fmt.Sprintf("%s%-14s %7s", cursor, item.Name, item.Size)
		if s, ok := m.stats[item.ID]; ok && s.Sessions > 0 {
			line += fmt.Sprintf("  %d played", s.Sessions)
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	if len(m.items) > 0 && m.items[m.cursor].Description != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(centerText(m.items[m.cursor].Description, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected map, or nil if none selected.
func (m MenuModel) Selected() *registry.MapInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsSessions returns true if user requested the session history.
func (m MenuModel) WantsSessions() bool {
	return m.openSessions
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (int, int) {
	return m.width, m.height
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	MapID         string
	Width         int
	Height        int
	WantsSessions bool
	Quit          bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(items []registry.MapInfo, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(items, store, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: cfg.ScreenW, Height: cfg.ScreenH}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: cfg.ScreenW, Height: cfg.ScreenH, Quit: true}, nil
	}

	result := MenuResult{}
	result.Width, result.Height = m.Size()

	switch {
	case m.WantsSessions():
		result.WantsSessions = true
	case m.Selected() != nil:
		result.MapID = m.Selected().ID
	default:
		result.Quit = true
	}

	return result, nil
}
