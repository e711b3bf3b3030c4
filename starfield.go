package starfield

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default star tint.
var ColorWhite = Color{1, 1, 1, 1}

// Palette is the fixed set of colors stars are rolled from at spawn time:
// plain white, a warm candle white, and a pale ice blue.
var Palette = []Color{
	{1, 1, 1, 1},
	{1, 0.914, 0.769, 1},
	{0.831, 0.984, 1, 1},
}

// toNRGBA converts to a non-premultiplied 8-bit color for drawing primitives.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// withAlpha returns the color with its alpha replaced.
func (c Color) withAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range used by spawn attribute rolls.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from r.
func (rg Range) Random(r *rand.Rand) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return rg.Min + r.Float64()*(rg.Max-rg.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 limits v to [0, 1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
