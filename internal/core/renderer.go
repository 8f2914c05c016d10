package core

// Renderer is the drawing surface the engine paints a frame into.
// All coordinates are screen pixels with the origin at the top-left corner.
// Implementations must clip every operation to their bounds.
type Renderer interface {
	// Size returns the drawable width and height in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillRect fills the w x h rectangle whose top-left corner is (x, y).
	FillRect(x, y, w, h int, c Color)

	// Line draws a one pixel wide segment between (x0, y0) and (x1, y1).
	Line(x0, y0, x1, y1 int, c Color)

	// Circle draws a filled circle.
	Circle(cx, cy, radius int, c Color)
}
