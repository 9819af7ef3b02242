package drift

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Timing tunables. These are deliberately constants, not configuration: the
// field is a backdrop, and its cadence is part of the look.
const (
	// spawnInterval is the minimum animation time between spawn checks.
	spawnInterval = 0.4
	// maxFrameDelta clamps per-frame elapsed time so frame-rate hiccups
	// don't make particles visually jump.
	maxFrameDelta = 0.05
	// burstChance is the probability that a spawn check produces a burst of
	// burstMin..burstMax particles instead of a single one.
	burstChance = 0.2
	burstMin    = 2
	burstMax    = 3
	// dimming is the global opacity multiplier keeping the effect subtle.
	dimming = 0.22
)

// FieldConfig carries the seams a Field can be built with. The zero value is
// ready to use: a fresh random source, StyleDisk, and PaletteVivid.
type FieldConfig struct {
	// Rand is the random source for all spawn attributes. When nil, a
	// freshly seeded source is used. Inject a seeded source for reproducible
	// output.
	Rand *rand.Rand
	// Style selects the particle gradient shading.
	Style Style
	// Palette selects the color band particles draw from.
	Palette Palette
}

// Field is the particle field animator. It owns the active particle
// collection, the drawing surface, and all timing state. All mutation happens
// on the host's single update thread: spawn appends and expiry removes occur
// only inside OnTick.
type Field struct {
	// ClearColor fills the surface at the start of every frame.
	ClearColor Color

	cfg     FieldConfig
	rng     *rand.Rand
	surface Surface

	particles  []particle
	sinceSpawn float64
	lastTick   time.Time
	ticked     bool

	updateFn func() error
	stamp    *ebiten.Image
}

// NewField creates a Field with the given configuration. The surface starts
// at zero size; call OnResize (or let Run do it) before particles are worth
// looking at.
func NewField(cfg FieldConfig) *Field {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{
		ClearColor: Color{R: 0.02, G: 0.02, B: 0.05, A: 1},
		cfg:        cfg,
		rng:        rng,
	}
	f.surface.Resize(0, 0, 1)
	return f
}

// Surface returns the field's drawing surface state.
func (f *Field) Surface() *Surface {
	return &f.surface
}

// Count returns the number of active particles.
func (f *Field) Count() int {
	return len(f.particles)
}

// SetUpdateFunc registers a callback invoked at the end of every OnTick,
// after simulation. A non-nil error return propagates out of OnTick.
func (f *Field) SetUpdateFunc(fn func() error) {
	f.updateFn = fn
}

// OnResize records the viewport size in layout pixels and the device pixel
// ratio. Safe to call between any two ticks; existing particles keep their
// positions and only new spawns use the new geometry.
func (f *Field) OnResize(w, h, dpr float64) {
	f.surface.Resize(w, h, dpr)
}

// OnTick advances the field by one frame. The elapsed time since the previous
// tick is clamped to [0, 50ms] and accumulated into every particle's age
// (and into the spawn-check timer), so a stalled frame slows the animation
// down rather than jumping it forward. Expired particles are removed before
// the spawn check runs.
func (f *Field) OnTick(now time.Time) error {
	var dt float64
	if f.ticked {
		dt = now.Sub(f.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	f.lastTick = now
	f.ticked = true

	f.advance(dt)

	f.sinceSpawn += dt
	if f.sinceSpawn >= spawnInterval {
		f.sinceSpawn = 0
		f.spawnEvent(now)
	}

	if f.updateFn != nil {
		return f.updateFn()
	}
	return nil
}

// advance ages every particle by dt and swap-removes the expired ones. The
// collection is unordered, so swapping the last particle into the hole is a
// safe in-place removal.
func (f *Field) advance(dt float64) {
	i := 0
	for i < len(f.particles) {
		p := &f.particles[i]
		p.age += dt
		if p.age >= p.lifetime {
			last := len(f.particles) - 1
			f.particles[i] = f.particles[last]
			f.particles = f.particles[:last]
			continue
		}
		i++
	}
}

// spawnEvent appends one particle, or a small burst, with attributes drawn
// from the field's random source.
func (f *Field) spawnEvent(now time.Time) {
	n := 1
	if f.rng.Float64() < burstChance {
		n = burstMin + f.rng.IntN(burstMax-burstMin+1)
	}
	bounds := f.surface.Bounds()
	for ; n > 0; n-- {
		f.particles = append(f.particles, newParticle(f.rng, bounds, f.cfg.Palette, now))
	}
}
