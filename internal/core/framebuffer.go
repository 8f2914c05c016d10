package core

// Framebuffer is an owned, contiguous width*height pixel buffer.
// Pixels are stored in row-major order (index = y*width + x) and are only
// reachable through bounds-checked accessors.
type Framebuffer struct {
	width  int
	height int
	pixels []Color
}

// Ensure Framebuffer implements Renderer.
var _ Renderer = (*Framebuffer)(nil)

// NewFramebuffer creates a black framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	fb.pixels = make([]Color, fb.width*fb.height)
	return fb
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.width, fb.height
}

// Bounds returns the framebuffer area as a Rect at the origin.
func (fb *Framebuffer) Bounds() Rect {
	return NewRect(0, 0, fb.width, fb.height)
}

// Resize changes the dimensions, preserving the top-left content where possible.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == fb.width && height == fb.height {
		return
	}

	old := fb.pixels
	oldW := fb.width
	copyW := Min(oldW, width)
	copyH := Min(fb.height, height)

	fb.width = width
	fb.height = height
	fb.pixels = make([]Color, width*height)

	for y := 0; y < copyH; y++ {
		copy(fb.pixels[y*width:y*width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// Clear fills the entire framebuffer with c.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Set writes a single pixel. Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if !fb.Bounds().Contains(x, y) {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// At returns the pixel at (x, y) and whether the coordinate is in bounds.
func (fb *Framebuffer) At(x, y int) (Color, bool) {
	if !fb.Bounds().Contains(x, y) {
		return Black, false
	}
	return fb.pixels[y*fb.width+x], true
}

// FillRect fills a rectangle, clipped to the framebuffer bounds.
func (fb *Framebuffer) FillRect(x, y, w, h int, c Color) {
	r := NewRect(x, y, w, h).Intersect(fb.Bounds())
	if r.Empty() {
		return
	}
	for row := r.Y; row < r.Bottom(); row++ {
		line := fb.pixels[row*fb.width+r.X : row*fb.width+r.Right()]
		for i := range line {
			line[i] = c
		}
	}
}

// Line draws a segment using Bresenham's algorithm.
// Pixels outside the framebuffer are skipped.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, c Color) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a filled circle centered at (cx, cy).
func (fb *Framebuffer) Circle(cx, cy, radius int, c Color) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				fb.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// RGBA writes the framebuffer as opaque RGBA bytes into dst, growing it if
// needed, and returns the result. Suitable for uploading to GPU textures.
func (fb *Framebuffer) RGBA(dst []byte) []byte {
	n := len(fb.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range fb.pixels {
		dst[i*4] = p.R
		dst[i*4+1] = p.G
		dst[i*4+2] = p.B
		dst[i*4+3] = 0xff
	}
	return dst
}
