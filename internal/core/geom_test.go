package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
		empty    bool
	}{
		{"partial overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(2, 3, 4, 5), NewRect(2, 3, 4, 5), false},
		{"negative origin clipped", NewRect(-5, -5, 10, 10), NewRect(0, 0, 20, 20), NewRect(0, 0, 5, 5), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}, true},
		{"disjoint", NewRect(0, 0, 5, 5), NewRect(10, 10, 5, 5), Rect{}, true},
		{"negative width", NewRect(5, 5, -3, 4), NewRect(0, 0, 20, 20), Rect{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			if got.Empty() != tc.empty {
				t.Fatalf("Intersect().Empty() = %v, expected %v (got %+v)", got.Empty(), tc.empty, got)
			}
			if !tc.empty && got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsPixels(t *testing.T) {
	// A 4x3 framebuffer area: columns 0..3, rows 0..2
	r := NewRect(0, 0, 4, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 2, false},
		{3, 3, false},
		{-1, 1, false},
		{1, -1, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	if NewRect(2, 2, 0, 5).Contains(2, 3) {
		t.Error("zero-width rect should contain nothing")
	}
}

func TestRectRightBottom(t *testing.T) {
	r := NewRect(-2, 7, 5, 4)
	if r.Right() != 3 || r.Bottom() != 11 {
		t.Errorf("Right, Bottom = %d, %d; want 3, 11", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{128, 0, 255, 128},
		{-3.5, 0, 255, 0},
		{300, 0, 255, 255},
		{-1.5, -1, 1, -1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if Min(3, -2) != -2 || Max(3, -2) != 3 {
		t.Error("Min/Max picked the wrong operand")
	}
	if Abs(-7) != 7 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs returned a negative or changed value")
	}
}
