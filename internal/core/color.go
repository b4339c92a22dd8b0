package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with float channels nominally in [0, 1].
// Channels are not clamped: puzzle decoys may push a channel past 1.
// The zero value is fully transparent and renders as the terminal default.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Predefined colors for HUD and markers.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(1, 1, 1)
	ColorRed   = RGB(1, 0, 0)
	ColorNone  = Color{}
)

// Equal compares all four channels exactly.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// IsZero reports whether the color is the transparent zero value.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Clamped returns the color with every channel restricted to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: ClampF(c.R, 0, 1),
		G: ClampF(c.G, 0, 1),
		B: ClampF(c.B, 0, 1),
		A: ClampF(c.A, 0, 1),
	}
}

// Hex returns the color as #rrggbb, clamping out-of-range channels.
func (c Color) Hex() string {
	cc := c.Clamped()
	return colorful.Color{R: cc.R, G: cc.G, B: cc.B}.Hex()
}

// Lerp blends linearly from c to o; t=0 yields c and t=1 yields o.
func (c Color) Lerp(o Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mixed := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t)
	return Color{R: mixed.R, G: mixed.G, B: mixed.B, A: c.A + (o.A-c.A)*t}
}

// Luminance returns the relative luminance, used to pick readable text.
func (c Color) Luminance() float64 {
	cc := c.Clamped()
	_, _, l := colorful.Color{R: cc.R, G: cc.G, B: cc.B}.Hsl()
	return l
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Luminance() > 0.5 {
		return ColorBlack
	}
	return ColorWhite
}

// ParseHex parses a #rrggbb string into an opaque color.
func ParseHex(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return RGB(cc.R, cc.G, cc.B), nil
}
