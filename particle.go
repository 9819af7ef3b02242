package drift

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
)

// Fade fractions are fixed: a quarter of the lifetime ramping in, a quarter
// ramping out, half holding at full opacity.
const (
	fadeInFraction  = 0.25
	fadeOutFraction = 0.25
)

// Radius bounds relative to the viewport. The floor keeps particles visible
// on degenerate or tiny viewports.
const (
	radiusFloor   = 20.0
	radiusMinFrac = 0.01
	radiusMaxFrac = 0.08
)

// lifetimeRange is the band particle lifetimes are drawn from, in seconds.
var lifetimeRange = Range{Min: 6, Max: 14}

var (
	vividSaturation = Range{Min: 0.55, Max: 0.85}
	vividLightness  = Range{Min: 0.50, Max: 0.65}
	paleSaturation  = Range{Min: 0.20, Max: 0.45}
	paleLightness   = Range{Min: 0.75, Max: 0.90}
)

// phase is a particle's position in its lifecycle. Transitions are driven
// purely by elapsed time against the lifetime; nothing cancels a particle
// early.
type phase uint8

const (
	phaseFadingIn phase = iota
	phaseHeld
	phaseFadingOut
	phaseExpired
)

// particle holds per-particle state. Unexported; owned by a Field's active
// collection, mutated only by the passage of animation time.
type particle struct {
	pos       Vec2    // center in layout pixels; may overhang the viewport by up to radius
	radius    float64 // layout pixels
	color     Color   // fully opaque base color; alpha applied at render time
	lifetime  float64 // total lifetime in seconds
	age       float64 // accumulated clamped frame deltas since spawn
	createdAt time.Time
}

// radiusRange returns the spawn radius bounds for a w×h viewport. If the
// upper bound falls below the floor (tiny or zero viewport), the floor wins.
func radiusRange(w, h float64) Range {
	lo := math.Max(radiusFloor, math.Min(w, h)*radiusMinFrac)
	hi := math.Max(w, h) * radiusMaxFrac
	if hi < lo {
		hi = lo
	}
	return Range{Min: lo, Max: hi}
}

// newParticle draws randomized attributes for a particle spawning into
// bounds. The position range is expanded by the radius on every side so
// particles can fade in and out across the viewport edge instead of popping
// in fully inside it.
func newParticle(rng *rand.Rand, bounds Rect, pal Palette, now time.Time) particle {
	radius := radiusRange(bounds.Width, bounds.Height).Random(rng)
	spawn := bounds.expand(radius)
	return particle{
		pos: Vec2{
			X: spawn.X + rng.Float64()*spawn.Width,
			Y: spawn.Y + rng.Float64()*spawn.Height,
		},
		radius:    radius,
		color:     paletteColor(rng, pal),
		lifetime:  lifetimeRange.Random(rng),
		createdAt: now,
	}
}

// paletteColor draws a color with hue uniform over the full wheel and
// saturation/lightness uniform within the palette's band.
func paletteColor(rng *rand.Rand, pal Palette) Color {
	hue := rng.Float64() * 360
	if pal == PalettePale {
		return HSL(hue, paleSaturation.Random(rng), paleLightness.Random(rng))
	}
	return HSL(hue, vividSaturation.Random(rng), vividLightness.Random(rng))
}

// alpha computes the particle's opacity before the global dimming multiplier:
// a linear ramp 0→1 over the fade-in window, 1 through the hold, and 1→0 over
// the fade-out window. Non-finite progress (zero-duration lifetime) yields 0,
// and the result is clamped to [0, 1].
func (p *particle) alpha() float64 {
	t := p.age / p.lifetime
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	fadeIn := p.lifetime * fadeInFraction
	fadeOut := p.lifetime * fadeOutFraction

	var a float64
	switch {
	case t < fadeInFraction:
		a = float64(ease.Linear(float32(p.age), 0, 1, float32(fadeIn)))
	case t > 1-fadeOutFraction:
		a = float64(ease.Linear(float32(p.age-(p.lifetime-fadeOut)), 1, -1, float32(fadeOut)))
	default:
		a = 1
	}
	return clamp01(a)
}

// phase reports the particle's lifecycle phase.
func (p *particle) phase() phase {
	t := p.age / p.lifetime
	switch {
	case math.IsNaN(t) || math.IsInf(t, 0) || t >= 1:
		return phaseExpired
	case t < fadeInFraction:
		return phaseFadingIn
	case t > 1-fadeOutFraction:
		return phaseFadingOut
	default:
		return phaseHeld
	}
}

// clamp01 clamps to [0, 1], mapping non-finite values to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
