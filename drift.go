package drift

import (
	"image/color"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// HSL builds a fully opaque Color from hue (degrees, [0, 360)), saturation,
// and lightness (both in [0, 1]).
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// rgba converts to a premultiplied color.RGBA for use with ebiten.Image.Fill.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// expand returns the rectangle grown by d on every side.
func (r Rect) expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Range is a general-purpose min/max range used for randomized particle
// attributes.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng. Randomized
// generation takes an explicit source so spawn outcomes are reproducible.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Style selects how a particle's radial gradient is shaded.
type Style uint8

const (
	// StyleDisk paints solid color at the center fading to transparent at
	// the edge.
	StyleDisk Style = iota
	// StyleRing leaves the interior transparent and concentrates color in a
	// thin band near the edge, fading out again at the rim.
	StyleRing
)

// Palette selects the saturation/lightness band particles draw their colors
// from. Hue is always uniform over the full wheel.
type Palette uint8

const (
	// PaletteVivid uses high saturation and mid lightness.
	PaletteVivid Palette = iota
	// PalettePale uses low saturation and high lightness.
	PalettePale
)
