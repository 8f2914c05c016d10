package tui

import (
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// opposite pairs controls that cancel each other. Terminals only repeat
// the most recently pressed key, so pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionRotateLeft:  core.ActionRotateRight,
	core.ActionRotateRight: core.ActionRotateLeft,
	core.ActionMoveForward: core.ActionMoveBack,
	core.ActionMoveBack:    core.ActionMoveForward,
	core.ActionStrafeLeft:  core.ActionStrafeRight,
	core.ActionStrafeRight: core.ActionStrafeLeft,
}

// KeyState derives held controls from key press events.
// Terminals report presses and auto-repeats but no releases, so a control
// counts as held until hold has passed since its last event.
type KeyState struct {
	hold time.Duration
	last map[core.Action]time.Time
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = 150 * time.Millisecond
	}
	return &KeyState{
		hold: hold,
		last: make(map[core.Action]time.Time),
	}
}

// Press records a key event for a at time now.
func (k *KeyState) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(k.last, o)
	}
	k.last[a] = now
}

// Frame returns the controls held at time now and forgets expired ones.
func (k *KeyState) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range k.last {
		if now.Sub(at) > k.hold {
			delete(k.last, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}
