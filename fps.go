package drift

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay is a small stats readout drawn in the top-left corner when
// RunConfig.ShowFPS is set. Refreshed every ~0.5 seconds.
type fpsOverlay struct {
	field *Field
	img   *ebiten.Image
	since float64
	dirty bool
}

func newFPSOverlay(f *Field) *fpsOverlay {
	// 120x48 is enough for three DebugPrint lines.
	return &fpsOverlay{
		field: f,
		img:   ebiten.NewImage(120, 48),
		dirty: true,
	}
}

func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since < 0.5 && !o.dirty {
		return
	}
	o.since = 0
	o.dirty = false

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), o.field.Count()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	var opts ebiten.DrawImageOptions
	opts.GeoM.Translate(8, 8)
	screen.DrawImage(o.img, &opts)
}
