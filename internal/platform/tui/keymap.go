package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	RotateLeft    key.Binding
	RotateRight   key.Binding
	Forward       key.Binding
	Back          key.Binding
	StrafeLeft    key.Binding
	StrafeRight   key.Binding
	ToggleMinimap key.Binding
	Screenshot    key.Binding
	Menu          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "forward"),
		),
		Back: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "back"),
		),
		StrafeLeft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "strafe left"),
		),
		StrafeRight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "strafe right"),
		),
		ToggleMinimap: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "minimap"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.RotateLeft, k.StrafeLeft, k.ToggleMinimap, k.Menu, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.RotateLeft, k.RotateRight},
		{k.StrafeLeft, k.StrafeRight, k.ToggleMinimap},
		{k.Screenshot, k.Menu, k.Help, k.Quit},
	}
}

// Action translates a key message to an engine action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Menu):
		return core.ActionBack
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.ToggleMinimap):
		return core.ActionToggleMinimap
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.Forward):
		return core.ActionMoveForward
	case key.Matches(msg, k.Back):
		return core.ActionMoveBack
	case key.Matches(msg, k.StrafeLeft):
		return core.ActionStrafeLeft
	case key.Matches(msg, k.StrafeRight):
		return core.ActionStrafeRight
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionSessions
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionSessions
	}

	return MenuActionNone
}
