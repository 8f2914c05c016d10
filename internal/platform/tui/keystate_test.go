package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func TestKeyStateHoldWindow(t *testing.T) {
	k := NewKeyState(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	k.Press(core.ActionMoveForward, t0)

	if !k.Frame(t0.Add(50 * time.Millisecond)).Has(core.ActionMoveForward) {
		t.Error("forward should be held inside the hold window")
	}
	if k.Frame(t0.Add(150 * time.Millisecond)).Has(core.ActionMoveForward) {
		t.Error("forward should be released after the hold window")
	}
	if !k.Frame(t0.Add(200 * time.Millisecond)).Empty() {
		t.Error("expired controls should be forgotten")
	}
}

func TestKeyStateRepeatExtendsHold(t *testing.T) {
	k := NewKeyState(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	k.Press(core.ActionRotateLeft, t0)
	k.Press(core.ActionRotateLeft, t0.Add(80*time.Millisecond))

	if !k.Frame(t0.Add(150 * time.Millisecond)).Has(core.ActionRotateLeft) {
		t.Error("auto-repeat should keep the control held")
	}
}

func TestKeyStateOppositeReleases(t *testing.T) {
	tests := []struct {
		first, second core.Action
	}{
		{core.ActionRotateLeft, core.ActionRotateRight},
		{core.ActionMoveForward, core.ActionMoveBack},
		{core.ActionStrafeRight, core.ActionStrafeLeft},
	}

	for _, tt := range tests {
		k := NewKeyState(time.Second)
		t0 := time.Unix(1000, 0)
		k.Press(tt.first, t0)
		k.Press(tt.second, t0)

		frame := k.Frame(t0)
		if frame.Has(tt.first) {
			t.Errorf("pressing %v should release %v", tt.second, tt.first)
		}
		if !frame.Has(tt.second) {
			t.Errorf("%v should be held", tt.second)
		}
	}
}

func TestKeyStateCombinedControls(t *testing.T) {
	k := NewKeyState(time.Second)
	t0 := time.Unix(1000, 0)
	k.Press(core.ActionMoveForward, t0)
	k.Press(core.ActionRotateRight, t0)
	k.Press(core.ActionNone, t0)

	frame := k.Frame(t0)
	if !frame.Has(core.ActionMoveForward) || !frame.Has(core.ActionRotateRight) {
		t.Error("independent controls should be held together")
	}
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone should never be held")
	}
}

func TestNewKeyStateDefaultHold(t *testing.T) {
	k := NewKeyState(0)
	if k.hold <= 0 {
		t.Errorf("hold = %v, want positive default", k.hold)
	}
}
