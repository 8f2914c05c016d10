package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// binding maps a physical key to an engine control.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings are the held controls. Several keys may drive one action.
var bindings = []binding{
	{ebiten.KeyA, core.ActionRotateLeft},
	{ebiten.KeyArrowLeft, core.ActionRotateLeft},
	{ebiten.KeyD, core.ActionRotateRight},
	{ebiten.KeyArrowRight, core.ActionRotateRight},
	{ebiten.KeyW, core.ActionMoveForward},
	{ebiten.KeyArrowUp, core.ActionMoveForward},
	{ebiten.KeyS, core.ActionMoveBack},
	{ebiten.KeyArrowDown, core.ActionMoveBack},
	{ebiten.KeyQ, core.ActionStrafeLeft},
	{ebiten.KeyE, core.ActionStrafeRight},
	{ebiten.KeyM, core.ActionToggleMinimap},
	{ebiten.KeyTab, core.ActionToggleMinimap},
	{ebiten.KeyEscape, core.ActionQuit},
}

// screenshotKey saves the frame once per press.
const screenshotKey = ebiten.KeyF12

// pollInput builds the input frame from a key state query.
// Unlike a terminal, the window reports true held state.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		if pressed(b.key) {
			frame.Set(b.action)
		}
	}
	return frame
}
