package raycast

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Platform is a front end that can drive the generic loop.
type Platform interface {
	// Poll returns the controls active right now. Must not block.
	Poll() core.InputFrame

	// ShouldClose reports whether the loop should stop.
	ShouldClose() bool

	// Present shows a finished frame. An error ends the loop.
	Present(fb *core.Framebuffer) error
}

// Run drives the engine until p asks to close or ctx is done:
// poll, update, draw, present, pace. It returns nil on a normal close.
func (e *Engine) Run(ctx context.Context, p Platform, fb *core.Framebuffer, clock *core.Clock) error {
	for !p.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in := p.Poll()
		e.Frame(fb, in, clock.Delta())

		if err := p.Present(fb); err != nil {
			return fmt.Errorf("raycast: present frame: %w", err)
		}
		clock.Pace()
	}
	return nil
}
