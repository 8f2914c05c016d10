package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// plainPresenter renders without color so output is just glyphs.
func plainPresenter() *Presenter {
	return NewPresenter(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestPresenterLayout(t *testing.T) {
	tests := []struct {
		w, h      int
		wantLines int
	}{
		{4, 4, 2},
		{4, 3, 2},
		{10, 1, 1},
	}

	for _, tt := range tests {
		fb := core.NewFramebuffer(tt.w, tt.h)
		fb.FillRect(0, 0, tt.w/2, tt.h, core.Red)

		out := plainPresenter().Render(fb)
		lines := strings.Split(out, "\n")
		if len(lines) != tt.wantLines {
			t.Fatalf("%dx%d: got %d lines, want %d", tt.w, tt.h, len(lines), tt.wantLines)
		}
		for i, line := range lines {
			if got := strings.Count(line, halfBlock); got != tt.w {
				t.Errorf("%dx%d line %d: %d cells, want %d", tt.w, tt.h, i, got, tt.w)
			}
		}
	}
}

func TestPixelPair(t *testing.T) {
	fb := core.NewFramebuffer(2, 3)
	fb.Set(1, 0, core.Red)
	fb.Set(1, 1, core.Blue)
	fb.Set(0, 2, core.Green)

	if got := pixelPair(fb, 1, 0); got.top != core.Red || got.bottom != core.Blue {
		t.Errorf("pixelPair(1, 0) = %+v", got)
	}
	// Odd height: the missing bottom row reads as black
	if got := pixelPair(fb, 0, 1); got.top != core.Green || got.bottom != core.Black {
		t.Errorf("pixelPair(0, 1) = %+v", got)
	}
}

func TestPresenterCachesStyles(t *testing.T) {
	p := plainPresenter()
	fb := core.NewFramebuffer(6, 2)
	fb.FillRect(0, 0, 3, 2, core.Red)
	p.Render(fb)
	p.Render(fb)

	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(p.styles))
	}
}
