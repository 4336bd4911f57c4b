package demoncoin

import (
	"sort"
	"time"
)

// fakeEntity is the recorder's view of a spawned entity.
type fakeEntity struct {
	Entity
	tweens      []Tween
	interactive bool
	dropped     *Event
}

// scheduled is a pending After or Every call.
type scheduled struct {
	id     TimerID
	delay  time.Duration
	ev     Event
	repeat bool
}

// recorder is an in-memory Presenter. Nothing fires on its own; tests flush
// completions and timers explicitly.
type recorder struct {
	entities  map[EntityID]*fakeEntity
	destroyed map[EntityID]bool
	timers    []scheduled
	cancelled map[TimerID]bool
	nextTimer TimerID
	sounds    []string
	particles []Particles
}

func newRecorder() *recorder {
	return &recorder{
		entities:  make(map[EntityID]*fakeEntity),
		destroyed: make(map[EntityID]bool),
		cancelled: make(map[TimerID]bool),
	}
}

func (r *recorder) Spawn(e Entity) {
	r.entities[e.ID] = &fakeEntity{Entity: e, interactive: e.Interactive}
}

func (r *recorder) Destroy(id EntityID) {
	delete(r.entities, id)
	r.destroyed[id] = true
}

func (r *recorder) get(id EntityID) *fakeEntity {
	return r.entities[id]
}

func (r *recorder) SetText(id EntityID, text string) {
	if e := r.get(id); e != nil {
		e.Text = text
	}
}

func (r *recorder) SetTexture(id EntityID, texture string) {
	if e := r.get(id); e != nil {
		e.Texture = texture
	}
}

func (r *recorder) SetVisible(id EntityID, visible bool) {
	if e := r.get(id); e != nil {
		e.Hidden = !visible
	}
}

func (r *recorder) SetInteractive(id EntityID, interactive bool) {
	if e := r.get(id); e != nil {
		e.interactive = interactive
	}
}

func (r *recorder) SetAlpha(id EntityID, alpha float64) {
	if e := r.get(id); e != nil {
		e.Alpha = alpha
	}
}

func (r *recorder) SetPosition(id EntityID, x, y float64) {
	if e := r.get(id); e != nil {
		e.X, e.Y = x, y
	}
}

func (r *recorder) SetRotation(id EntityID, degrees float64) {}

func (r *recorder) SetScale(id EntityID, scale float64) {
	if e := r.get(id); e != nil {
		e.Scale = scale
	}
}

func (r *recorder) Position(id EntityID) (float64, float64, bool) {
	e := r.get(id)
	if e == nil {
		return 0, 0, false
	}
	return e.X, e.Y, true
}

func (r *recorder) Tween(id EntityID, tw Tween) {
	if e := r.get(id); e != nil {
		e.tweens = append(e.tweens, tw)
	}
}

func (r *recorder) KillTweens(id EntityID) {
	if e := r.get(id); e != nil {
		e.tweens = nil
		e.dropped = nil
	}
}

func (r *recorder) Drop(id EntityID, floorY float64, landed Event) {
	if e := r.get(id); e != nil {
		ev := landed
		e.dropped = &ev
	}
}

func (r *recorder) Emit(p Particles) {
	r.particles = append(r.particles, p)
}

func (r *recorder) PlaySound(name string) {
	r.sounds = append(r.sounds, name)
}

func (r *recorder) After(d time.Duration, ev Event) TimerID {
	r.nextTimer++
	r.timers = append(r.timers, scheduled{id: r.nextTimer, delay: d, ev: ev})
	return r.nextTimer
}

func (r *recorder) Every(d time.Duration, ev Event) TimerID {
	r.nextTimer++
	r.timers = append(r.timers, scheduled{id: r.nextTimer, delay: d, ev: ev, repeat: true})
	return r.nextTimer
}

func (r *recorder) Cancel(id TimerID) {
	r.cancelled[id] = true
}

// completeTweens finishes every finite tween with a Done event on id and
// returns those events in start order.
func (r *recorder) completeTweens(id EntityID) []Event {
	e := r.get(id)
	if e == nil {
		return nil
	}
	var out []Event
	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		if tw.Done != nil && tw.Repeat != Forever {
			out = append(out, *tw.Done)
			continue
		}
		kept = append(kept, tw)
	}
	e.tweens = kept
	return out
}

// takeOneShots removes and returns pending After events of the given kind.
func (r *recorder) takeOneShots(kind EventKind) []Event {
	var out []Event
	kept := r.timers[:0]
	for _, t := range r.timers {
		if !t.repeat && t.ev.Kind == kind && !r.cancelled[t.id] {
			out = append(out, t.ev)
			continue
		}
		kept = append(kept, t)
	}
	r.timers = kept
	return out
}

// activeRepeating returns the live repeating timers.
func (r *recorder) activeRepeating() []scheduled {
	var out []scheduled
	for _, t := range r.timers {
		if t.repeat && !r.cancelled[t.id] {
			out = append(out, t)
		}
	}
	return out
}

func (r *recorder) soundCount(name string) int {
	n := 0
	for _, s := range r.sounds {
		if s == name {
			n++
		}
	}
	return n
}

// live returns the ids of live entities with the given name, sorted.
func (r *recorder) live(name string) []EntityID {
	var ids []EntityID
	for id, e := range r.entities {
		if e.Name == name {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
