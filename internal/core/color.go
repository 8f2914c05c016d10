package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB is a convenience constructor for Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Named colors. Values follow the classic raylib palette so that maps
// authored against it look the same here.
var (
	Black     = RGB(0, 0, 0)
	White     = RGB(255, 255, 255)
	RayWhite  = RGB(245, 245, 245)
	Gray      = RGB(130, 130, 130)
	DarkGray  = RGB(80, 80, 80)
	LightGray = RGB(200, 200, 200)
	Red       = RGB(230, 41, 55)
	Maroon    = RGB(190, 33, 55)
	Orange    = RGB(255, 161, 0)
	Gold      = RGB(255, 203, 0)
	Yellow    = RGB(253, 249, 0)
	Green     = RGB(0, 228, 48)
	Lime      = RGB(0, 158, 47)
	DarkGreen = RGB(0, 117, 44)
	SkyBlue   = RGB(102, 191, 255)
	Blue      = RGB(0, 121, 241)
	DarkBlue  = RGB(0, 82, 172)
	Purple    = RGB(200, 122, 255)
	Violet    = RGB(135, 60, 190)
	Magenta   = RGB(255, 0, 255)
	Pink      = RGB(255, 109, 194)
	Beige     = RGB(211, 176, 131)
	Brown     = RGB(127, 106, 79)
)

var namedColors = map[string]Color{
	"black":     Black,
	"white":     White,
	"raywhite":  RayWhite,
	"gray":      Gray,
	"grey":      Gray,
	"darkgray":  DarkGray,
	"lightgray": LightGray,
	"red":       Red,
	"maroon":    Maroon,
	"orange":    Orange,
	"gold":      Gold,
	"yellow":    Yellow,
	"green":     Green,
	"lime":      Lime,
	"darkgreen": DarkGreen,
	"skyblue":   SkyBlue,
	"blue":      Blue,
	"darkblue":  DarkBlue,
	"purple":    Purple,
	"violet":    Violet,
	"magenta":   Magenta,
	"pink":      Pink,
	"beige":     Beige,
	"brown":     Brown,
}

// ParseColor converts a color name ("red") or a hex triplet ("#e62937")
// to a Color. Returns Black and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || hex == s {
		return Black, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Black, false
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// Brightness returns the color with its brightness adjusted by factor.
// The factor is clamped to [-1, 1]: negative values darken towards black,
// positive values lighten towards white. Channels saturate instead of
// wrapping.
func (c Color) Brightness(factor float64) Color {
	factor = ClampF(factor, -1.0, 1.0)

	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	if factor < 0 {
		factor = 1.0 + factor
		r *= factor
		g *= factor
		b *= factor
	} else {
		r = (255-r)*factor + r
		g = (255-g)*factor + g
		b = (255-b)*factor + b
	}

	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	for name, named := range namedColors {
		if named == c && name != "grey" {
			return name
		}
	}
	return c.Hex()
}

// channel converts a float channel value to a saturated byte.
func channel(v float64) uint8 {
	return uint8(ClampF(v, 0, 255))
}
