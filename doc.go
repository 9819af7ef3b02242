// Package drift renders an ambient backdrop of softly fading circles for
// [Ebitengine].
//
// A [Field] owns an unordered population of short-lived particles. Each
// particle appears somewhere in (or slightly beyond) the viewport with a
// random radius, hue, and lifetime, fades in over the first quarter of its
// life, holds, fades out over the last quarter, and is removed. Spawn cadence
// and lifetime bounds are fixed so the population reaches a small steady
// state on its own.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	field := drift.NewField(drift.FieldConfig{})
//	drift.Run(field, drift.RunConfig{
//		Title: "Ambient", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Field.OnResize], [Field.OnTick], and [Field.Draw] directly:
//
//	type Game struct{ field *drift.Field }
//
//	func (g *Game) Update() error        { return g.field.OnTick(time.Now()) }
//	func (g *Game) Draw(s *ebiten.Image) { g.field.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// All drawing is issued in layout pixels; the field scales its output for
// high-density displays (capped at 2×) through its [Surface].
//
// # Styles
//
// Two self-consistent rendering styles are provided: [StyleDisk] paints each
// particle as a solid-center radial gradient, and [StyleRing] concentrates
// the color in a thin glowing band near the particle's edge. Color comes
// from an HSL palette, either [PaletteVivid] or [PalettePale].
//
// [Ebitengine]: https://ebitengine.org
package drift
