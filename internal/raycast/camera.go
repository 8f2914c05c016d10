// Package raycast is the rendering core: camera movement, grid DDA ray
// casting, distance projection and the per-frame pipeline that draws the
// pseudo-3D view and the debug minimap.
//
// All world coordinates are in grid units: cell (row, col) covers
// x in [col, col+1) and y in [row, row+1). Y points down.
package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Camera is the player pose. Dir is roughly unit length; it is only
// renormalized when Motion.Normalize is set.
type Camera struct {
	Pos core.Vec2
	Dir core.Vec2
}

// Motion holds movement tuning.
type Motion struct {
	MoveSpeed     float64 // cells per second
	RotationSpeed float64 // radians per second
	Normalize     bool    // renormalize Dir after rotating
}

// DefaultMotion returns the stock movement speeds.
func DefaultMotion() Motion {
	return Motion{
		MoveSpeed:     4.0,
		RotationSpeed: 2.0,
	}
}

// Update applies one frame of input and returns the new pose.
// Every active control contributes independently; there is no collision.
// Rotation is applied before translation.
func (c Camera) Update(in core.InputFrame, dt float64, m Motion) Camera {
	if dt <= 0 {
		return c
	}

	turn := m.RotationSpeed * dt
	if in.Has(core.ActionRotateLeft) {
		c.Dir = c.Dir.Rotate(-turn)
	}
	if in.Has(core.ActionRotateRight) {
		c.Dir = c.Dir.Rotate(turn)
	}
	if m.Normalize {
		c.Dir = c.Dir.Normalize()
	}

	step := m.MoveSpeed * dt
	if in.Has(core.ActionMoveForward) {
		c.Pos = c.Pos.Add(c.Dir.Scale(step))
	}
	if in.Has(core.ActionMoveBack) {
		c.Pos = c.Pos.Add(c.Dir.Scale(-step))
	}
	if in.Has(core.ActionStrafeRight) {
		c.Pos = c.Pos.Add(c.Dir.Rotate(math.Pi / 2).Scale(step))
	}
	if in.Has(core.ActionStrafeLeft) {
		c.Pos = c.Pos.Add(c.Dir.Rotate(-math.Pi / 2).Scale(step))
	}

	return c
}
