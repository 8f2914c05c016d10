package core

// RuntimeConfig contains configuration passed to a front end at start-up.
// Front ends use it to size the framebuffer and pace the frame loop.
type RuntimeConfig struct {
	ScreenW  int // Screen width in terminal cells (or window pixels)
	ScreenH  int // Screen height in terminal cells (or window pixels)
	TickRate int // Target frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameSize returns the pixel size of the framebuffer for a terminal of
// ScreenW x ScreenH cells. Each cell shows two vertically stacked pixels
// (a half block), and the last row is reserved for the status line.
func (c RuntimeConfig) FrameSize() (width, height int) {
	rows := c.ScreenH - 1
	if rows < 1 {
		rows = 1
	}
	return Max(c.ScreenW, 1), rows * 2
}
