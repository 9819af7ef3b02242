package drift

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// stampSize is the resolution of the prebuilt gradient textures. Particles
// scale the stamp to their diameter, so this only bounds sharpness, not
// particle size.
const stampSize = 256

// Ring style geometry, as fractions of the radius: transparent out to
// ringInner, peak color at ringPeak, transparent again past ringOuter.
const (
	ringInner = 0.60
	ringPeak  = 0.75
	ringOuter = 0.92
)

// Draw clears dst with the field's ClearColor and renders every active
// particle as a radial-gradient disk in layout-pixel coordinates, scaled
// through the surface transform. Opacity is applied per draw via the color
// scale, so no global opacity state survives the frame.
func (f *Field) Draw(dst *ebiten.Image) {
	dst.Fill(f.ClearColor.rgba())

	if f.stamp == nil {
		f.stamp = buildStamp(f.cfg.Style)
	}
	base := f.surface.Transform()

	for i := range f.particles {
		p := &f.particles[i]
		a := p.alpha() * dimming
		if a <= 0 {
			continue
		}

		var opts ebiten.DrawImageOptions
		opts.Filter = ebiten.FilterLinear
		s := (2 * p.radius) / stampSize
		opts.GeoM.Scale(s, s)
		opts.GeoM.Translate(p.pos.X-p.radius, p.pos.Y-p.radius)
		opts.GeoM.Concat(base)
		opts.ColorScale.Scale(float32(p.color.R), float32(p.color.G), float32(p.color.B), 1)
		opts.ColorScale.ScaleAlpha(float32(a))
		dst.DrawImage(f.stamp, &opts)
	}
}

// stampProfile returns the gradient opacity at normalized distance d from the
// stamp center (0 = center, 1 = rim) for the given style.
func stampProfile(style Style, d float64) float64 {
	if style == StyleRing {
		switch {
		case d < ringInner, d > ringOuter:
			return 0
		case d < ringPeak:
			return (d - ringInner) / (ringPeak - ringInner)
		default:
			return (ringOuter - d) / (ringOuter - ringPeak)
		}
	}
	return clamp01(1 - d)
}

// buildStamp rasterizes the gradient profile into a premultiplied white
// texture. Built once per field, on first draw, so fields that are never
// drawn (tests) touch no GPU resources.
func buildStamp(style Style) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, stampSize, stampSize))
	c := float64(stampSize-1) / 2
	for y := 0; y < stampSize; y++ {
		for x := 0; x < stampSize; x++ {
			dx := (float64(x) - c) / c
			dy := (float64(y) - c) / c
			d := dx*dx + dy*dy
			if d > 1 {
				continue
			}
			a := stampProfile(style, math.Sqrt(d))
			v := uint8(a*255 + 0.5)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return ebiten.NewImageFromImage(img)
}
