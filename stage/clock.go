package stage

import (
	"time"

	"github.com/phanxgames/demoncoin"
)

// timer is a scheduled event. Repeating timers re-arm with their period.
type timer struct {
	id        demoncoin.TimerID
	remaining time.Duration
	period    time.Duration
	ev        demoncoin.Event
	repeat    bool
}

// clock schedules events against frame time, so timers pause with the game
// loop and stay deterministic under test.
type clock struct {
	timers []*timer
	nextID demoncoin.TimerID
	now    time.Duration
}

func (c *clock) after(d time.Duration, ev demoncoin.Event, repeat bool) demoncoin.TimerID {
	c.nextID++
	if repeat && d <= 0 {
		d = time.Millisecond
	}
	c.timers = append(c.timers, &timer{id: c.nextID, remaining: d, period: d, ev: ev, repeat: repeat})
	return c.nextID
}

func (c *clock) cancel(id demoncoin.TimerID) {
	for i, t := range c.timers {
		if t.id == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// advance moves time forward by dt and calls fire for every due event,
// ordered by timer creation within a frame.
func (c *clock) advance(dt time.Duration, fire func(demoncoin.Event)) {
	c.now += dt
	var due []demoncoin.Event
	kept := c.timers[:0]
	for _, t := range c.timers {
		t.remaining -= dt
		for t.remaining <= 0 {
			due = append(due, t.ev)
			if !t.repeat {
				break
			}
			t.remaining += t.period
		}
		if t.repeat || t.remaining > 0 {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = kept
	for _, ev := range due {
		fire(ev)
	}
}

// pending returns the number of scheduled timers.
func (c *clock) pending() int {
	return len(c.timers)
}

// After posts ev once d has elapsed.
func (s *Scene) After(d time.Duration, ev demoncoin.Event) demoncoin.TimerID {
	return s.clock.after(d, ev, false)
}

// Every posts ev each time d elapses until cancelled.
func (s *Scene) Every(d time.Duration, ev demoncoin.Event) demoncoin.TimerID {
	return s.clock.after(d, ev, true)
}

// Cancel stops a timer. Unknown ids are ignored.
func (s *Scene) Cancel(id demoncoin.TimerID) {
	s.clock.cancel(id)
}

// Now returns the scene's elapsed frame time.
func (s *Scene) Now() time.Duration {
	return s.clock.now
}
