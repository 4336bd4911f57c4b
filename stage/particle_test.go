package stage

import (
	"testing"
	"time"

	"github.com/phanxgames/demoncoin"
)

func TestEmitterBurstOnce(t *testing.T) {
	e := newParticleEmitter(EmitterConfig{Quantity: 5, Lifetime: 0.5})
	e.update(1.0 / 60)
	if e.AliveCount() != 5 {
		t.Fatalf("alive = %d, want 5", e.AliveCount())
	}
	e.update(1.0 / 60)
	if e.AliveCount() != 5 {
		t.Errorf("burst emitted again: alive = %d", e.AliveCount())
	}
	if e.Finished() {
		t.Error("finished while particles alive")
	}
	for i := 0; i < 40; i++ {
		e.update(1.0 / 60)
	}
	if !e.Finished() {
		t.Errorf("not finished, alive = %d", e.AliveCount())
	}
}

func TestEmitterIntervalNeverFinishes(t *testing.T) {
	e := newParticleEmitter(EmitterConfig{Quantity: 2, Lifetime: 0.1, Interval: 0.3, MaxParticles: 16})
	for i := 0; i < 120; i++ {
		e.update(1.0 / 60)
	}
	if e.Finished() {
		t.Error("interval emitter finished")
	}
}

func TestEmitterPoolLimit(t *testing.T) {
	e := newParticleEmitter(EmitterConfig{Quantity: 50, Lifetime: 1, MaxParticles: 10})
	e.update(1.0 / 60)
	if e.AliveCount() != 10 {
		t.Errorf("alive = %d, want pool size 10", e.AliveCount())
	}
}

func TestParticleMotionAndFade(t *testing.T) {
	e := newParticleEmitter(EmitterConfig{
		Quantity:   1,
		Lifetime:   1,
		X:          demoncoin.Range{Min: 100, Max: 100},
		Y:          50,
		SpeedX:     demoncoin.Range{Min: 60, Max: 60},
		StartScale: 1,
	})
	e.update(0.25)
	e.update(0.5)
	p := e.particles[0]
	if p.x != 130 || p.y != 50 {
		t.Errorf("position = (%f, %f), want (130, 50)", p.x, p.y)
	}
	if p.alpha != 0.5 || p.scale != 0.5 {
		t.Errorf("alpha = %f scale = %f, want 0.5 each", p.alpha, p.scale)
	}
}

func TestEmitterConfigSizesPool(t *testing.T) {
	cfg := emitterConfig(demoncoin.Particles{
		Quantity: 3, Lifetime: time.Second, Interval: 300 * time.Millisecond,
	}, nil)
	if cfg.Lifetime != 1 || cfg.Interval != 0.3 {
		t.Errorf("durations = %f, %f", cfg.Lifetime, cfg.Interval)
	}
	if cfg.MaxParticles != 3*(3+2) {
		t.Errorf("MaxParticles = %d, want 15", cfg.MaxParticles)
	}
	if burst := emitterConfig(demoncoin.Particles{Quantity: 5}, nil); burst.MaxParticles != 0 {
		t.Errorf("burst MaxParticles = %d, want default", burst.MaxParticles)
	}
}
