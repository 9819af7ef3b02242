package drift

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig controls the window Run creates.
type RunConfig struct {
	// Title is the window title. Defaults to "drift".
	Title string
	// Width and Height are the initial window size in layout pixels.
	// Defaults to 1280×720.
	Width  int
	Height int
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool
	// ShowFPS draws an FPS/particle-count overlay in the top-left corner.
	ShowFPS bool
}

// Run creates a resizable window and drives the field until the window is
// closed: the animation itself never terminates voluntarily. Viewport size
// and device scale are fed into the field on every layout pass, so resizes
// and monitor changes are picked up automatically.
func Run(field *Field, cfg RunConfig) error {
	title := cfg.Title
	if title == "" {
		title = "drift"
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	g := &game{field: field, clock: time.Now}
	if cfg.ShowFPS {
		g.overlay = newFPSOverlay(field)
	}
	return ebiten.RunGame(g)
}

// game adapts a Field to ebiten.Game. The host serializes Update, Draw, and
// layout callbacks onto one goroutine, so the field needs no locking.
type game struct {
	field   *Field
	clock   func() time.Time
	overlay *fpsOverlay
}

func (g *game) Update() error {
	if err := g.field.OnTick(g.clock()); err != nil {
		return err
	}
	if g.overlay != nil {
		g.overlay.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.field.Draw(screen)
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

// LayoutF sizes the backing store: layout pixels times the device scale
// factor, capped at 2×. Drawing stays in layout pixels via the surface
// transform.
func (g *game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	dsf := ebiten.Monitor().DeviceScaleFactor()
	g.field.OnResize(outsideWidth, outsideHeight, dsf)
	bw, bh := g.field.Surface().BackingSize()
	return float64(bw), float64(bh)
}

// Layout is unused when LayoutF is present but required by ebiten.Game.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}
