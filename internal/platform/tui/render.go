package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// halfBlock draws the top pixel in the foreground color and the bottom
// pixel in the background color, so one cell shows two pixels.
const halfBlock = "▀"

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// Presenter converts framebuffers to styled terminal text.
// A Presenter is not safe for concurrent use.
type Presenter struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
}

// NewPresenter creates a presenter writing with r. A nil r uses the
// default renderer for stdout.
func NewPresenter(r *lipgloss.Renderer) *Presenter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Presenter{
		renderer: r,
		styles:   make(map[cellColors]lipgloss.Style),
	}
}

// style returns the cached style for a pixel pair.
func (p *Presenter) style(c cellColors) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
	p.styles[c] = s
	return s
}

// Render converts fb to one text line per two pixel rows.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Presenter) Render(fb *core.Framebuffer) string {
	w, h := fb.Size()
	lines := (h + 1) / 2

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w*lines*8 + lines)

	for row := range lines {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			start := pixelPair(fb, x, row)

			// Collect consecutive cells with the same colors
			n := 0
			for x < w && pixelPair(fb, x, row) == start {
				n++
				x++
			}
			sb.WriteString(p.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// pixelPair reads the two pixels behind terminal cell (x, row).
// A missing bottom pixel on odd heights reads as black.
func pixelPair(fb *core.Framebuffer, x, row int) cellColors {
	top, _ := fb.At(x, row*2)
	bottom, _ := fb.At(x, row*2+1)
	return cellColors{top: top, bottom: bottom}
}
