package stage

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/demoncoin"
)

// particle holds per-particle simulation state. Unexported; managed by ParticleEmitter.
type particle struct {
	x, y       float64
	vx, vy     float64
	life       float64 // remaining lifetime in seconds
	maxLife    float64 // initial lifetime (for computing t)
	startScale float64
	endScale   float64
	scale      float64
	alpha      float64
}

// EmitterConfig controls how particles are spawned and behave. Positions
// are in world space.
type EmitterConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int
	// X is the range of spawn x positions; Y is the spawn y.
	X demoncoin.Range
	Y float64
	// SpeedX and SpeedY are the ranges of initial velocity in pixels per second.
	SpeedX, SpeedY demoncoin.Range
	// StartScale is the scale at birth, interpolated to EndScale over lifetime.
	StartScale, EndScale float64
	// GravityY is the constant downward acceleration.
	GravityY float64
	// Lifetime is each particle's lifetime in seconds. Particles fade out
	// over it.
	Lifetime float64
	// Quantity particles are spawned per emission.
	Quantity int
	// Interval is the time between emissions in seconds. Zero emits one
	// burst, after which the emitter finishes once its particles die.
	Interval float64
	// Image is drawn for each particle.
	Image *ebiten.Image
	// Additive selects additive blending.
	Additive bool
}

// ParticleEmitter manages a pool of particles with CPU-based simulation.
type ParticleEmitter struct {
	config    EmitterConfig
	particles []particle
	alive     int
	emitAccum float64
	emitted   bool
}

// newParticleEmitter creates a ParticleEmitter with a preallocated pool.
func newParticleEmitter(cfg EmitterConfig) *ParticleEmitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	return &ParticleEmitter{
		config:    cfg,
		particles: make([]particle, max),
	}
}

// AliveCount returns the number of alive particles.
func (e *ParticleEmitter) AliveCount() int {
	return e.alive
}

// Finished reports whether a burst emitter has emitted and all its
// particles have died. Interval emitters never finish.
func (e *ParticleEmitter) Finished() bool {
	return e.config.Interval <= 0 && e.emitted && e.alive == 0
}

// update advances particle simulation by dt seconds.
func (e *ParticleEmitter) update(dt float64) {
	gy := e.config.GravityY * dt

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}
		p.vy += gy
		p.x += p.vx * dt
		p.y += p.vy * dt

		t := 1.0 - p.life/p.maxLife
		p.scale = lerp(p.startScale, p.endScale, t)
		p.alpha = 1 - t
		i++
	}

	if e.config.Interval <= 0 {
		if !e.emitted {
			e.emitted = true
			e.emit()
		}
		return
	}
	e.emitAccum += dt
	for e.emitAccum >= e.config.Interval {
		e.emitAccum -= e.config.Interval
		e.emit()
	}
	if !e.emitted {
		e.emitted = true
		e.emit()
	}
}

func (e *ParticleEmitter) emit() {
	for n := 0; n < e.config.Quantity && e.alive < len(e.particles); n++ {
		e.spawnParticle()
	}
}

// spawnParticle initializes the particle at slot e.alive and increments alive.
func (e *ParticleEmitter) spawnParticle() {
	p := &e.particles[e.alive]
	p.x = random(e.config.X)
	p.y = e.config.Y
	p.vx = random(e.config.SpeedX)
	p.vy = random(e.config.SpeedY)

	p.life = e.config.Lifetime
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life
	p.startScale = e.config.StartScale
	p.endScale = e.config.EndScale
	p.scale = p.startScale
	p.alpha = 1

	e.alive++
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// random returns a random float64 in [r.Min, r.Max].
func random(r demoncoin.Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

func emitterConfig(p demoncoin.Particles, img *ebiten.Image) EmitterConfig {
	cfg := EmitterConfig{
		X:          p.X,
		Y:          p.Y,
		SpeedX:     p.SpeedX,
		SpeedY:     p.SpeedY,
		StartScale: p.StartScale,
		EndScale:   p.EndScale,
		GravityY:   p.GravityY,
		Lifetime:   p.Lifetime.Seconds(),
		Quantity:   p.Quantity,
		Interval:   p.Interval.Seconds(),
		Image:      img,
		Additive:   p.Additive,
	}
	if cfg.Interval > 0 && cfg.Lifetime > 0 {
		// Enough room for every particle alive at steady state.
		cfg.MaxParticles = p.Quantity * (int(cfg.Lifetime/cfg.Interval) + 2)
	}
	return cfg
}
