package core

import "math"

// Color is an 8-bit-per-channel RGB color
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Scale multiplies every channel by factor. Results are clamped to [0, 255]
// and truncated toward zero; a NaN factor yields black.
func (c Color) Scale(factor float64) Color {
	if math.IsNaN(factor) {
		return Color{}
	}
	return Color{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

func scaleChannel(channel uint8, factor float64) uint8 {
	value := factor * float64(channel)
	value = min(255, max(0, value))
	return uint8(value)
}
