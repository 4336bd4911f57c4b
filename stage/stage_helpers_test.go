package stage

import (
	"github.com/phanxgames/demoncoin"
)

// sinkRecorder collects posted events.
type sinkRecorder struct {
	events []demoncoin.Event
}

func (r *sinkRecorder) Post(ev demoncoin.Event) {
	r.events = append(r.events, ev)
}

func (r *sinkRecorder) take() []demoncoin.Event {
	out := r.events
	r.events = nil
	return out
}

func (r *sinkRecorder) kinds() []demoncoin.EventKind {
	var out []demoncoin.EventKind
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (r *sinkRecorder) count(kind demoncoin.EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// fakeInput is a scripted InputSource.
type fakeInput struct {
	x, y    float64
	pressed bool
	confirm bool
}

func (f *fakeInput) Pointer() (float64, float64, bool) { return f.x, f.y, f.pressed }

func (f *fakeInput) ConfirmPressed() bool {
	c := f.confirm
	f.confirm = false
	return c
}
