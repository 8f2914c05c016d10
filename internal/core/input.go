package core

// Action represents a logical control, abstracted from physical keys.
// Front ends map keys to actions; the engine only sees actions.
type Action int

const (
	ActionNone          Action = iota
	ActionRotateLeft           // A, Left arrow
	ActionRotateRight          // D, Right arrow
	ActionMoveForward          // W, Up arrow
	ActionMoveBack             // S, Down arrow
	ActionStrafeLeft           // Q
	ActionStrafeRight          // E
	ActionToggleMinimap        // M, Tab - debug overhead view
	ActionScreenshot           // Ctrl+S
	ActionBack                 // B, Escape - back to menu
	ActionQuit                 // Ctrl+C - exit session
)

// MovementActions lists the controls that drive the camera.
var MovementActions = []Action{
	ActionRotateLeft,
	ActionRotateRight,
	ActionMoveForward,
	ActionMoveBack,
	ActionStrafeLeft,
	ActionStrafeRight,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionMoveForward:
		return "MoveForward"
	case ActionMoveBack:
		return "MoveBack"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionToggleMinimap:
		return "ToggleMinimap"
	case ActionScreenshot:
		return "Screenshot"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is a polled snapshot of which controls are active this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions active.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty returns true if no action is active.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
