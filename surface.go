package drift

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxDeviceScale caps the density scaling so 3×+ displays don't quadruple
// the backing store for a background effect nobody looks at closely.
const maxDeviceScale = 2.0

// Surface keeps the drawing surface's pixel resolution matched to the
// viewport and device pixel density, while the logical coordinate system
// stays in layout pixels. It is owned by a Field; hosts feed it through
// Field.OnResize.
type Surface struct {
	layoutW float64
	layoutH float64
	scale   float64
}

// Resize records the current viewport size in layout pixels and the device
// pixel ratio. The effective scale is min(2, dpr), falling back to 1 for a
// zero or negative ratio. Calling Resize again with the same arguments is a
// no-op. Invoke once at startup and on every viewport resize.
func (s *Surface) Resize(w, h, dpr float64) {
	scale := dpr
	if scale <= 0 {
		scale = 1
	}
	if scale > maxDeviceScale {
		scale = maxDeviceScale
	}
	s.layoutW = w
	s.layoutH = h
	s.scale = scale
}

// LayoutSize returns the viewport size in layout pixels.
func (s *Surface) LayoutSize() (w, h float64) {
	return s.layoutW, s.layoutH
}

// BackingSize returns the backing resolution in physical pixels:
// floor(w*scale) × floor(h*scale).
func (s *Surface) BackingSize() (w, h int) {
	return int(math.Floor(s.layoutW * s.scale)), int(math.Floor(s.layoutH * s.scale))
}

// Scale returns the effective density scale. A surface that has never been
// resized reports 1.
func (s *Surface) Scale() float64 {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}

// Bounds returns the viewport rectangle in layout pixels.
func (s *Surface) Bounds() Rect {
	return Rect{Width: s.layoutW, Height: s.layoutH}
}

// Transform returns the uniform density-scale matrix. Concatenated into every
// draw so drawing commands are issued in layout-pixel coordinates.
func (s *Surface) Transform() ebiten.GeoM {
	var g ebiten.GeoM
	sc := s.Scale()
	g.Scale(sc, sc)
	return g
}
