package ecs

import (
	"github.com/phanxgames/demoncoin"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type carrying demoncoin events.
var EventType = events.NewEventType[demoncoin.Event]()

// maxFlushRounds bounds how many times Flush re-drains events that
// subscribers posted while handling earlier ones.
const maxFlushRounds = 8

// Dispatcher receives events from the queue. *demoncoin.Controller
// satisfies it.
type Dispatcher interface {
	Dispatch(demoncoin.Event)
}

// Queue buffers events and publishes them into a Donburi world. It is not
// safe for concurrent use; post and flush from the game loop.
type Queue struct {
	world   donburi.World
	pending []demoncoin.Event
}

// NewQueue creates a queue publishing into world.
func NewQueue(world donburi.World) *Queue {
	return &Queue{world: world}
}

// World returns the backing world.
func (q *Queue) World() donburi.World {
	return q.world
}

// Post buffers ev until the next Flush.
func (q *Queue) Post(ev demoncoin.Event) {
	q.pending = append(q.pending, ev)
}

// Pending returns the number of buffered events.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Subscribe forwards every flushed event to d.
func (q *Queue) Subscribe(d Dispatcher) {
	EventType.Subscribe(q.world, func(_ donburi.World, ev demoncoin.Event) {
		d.Dispatch(ev)
	})
}

// Flush publishes buffered events and processes them. Events posted by
// subscribers during the flush are delivered in the same call, up to a
// fixed number of rounds; the rest wait for the next frame. Flush returns
// the number of events delivered.
func (q *Queue) Flush() int {
	n := 0
	for round := 0; round < maxFlushRounds && len(q.pending) > 0; round++ {
		batch := q.pending
		q.pending = nil
		for _, ev := range batch {
			EventType.Publish(q.world, ev)
		}
		EventType.ProcessEvents(q.world)
		n += len(batch)
	}
	return n
}
