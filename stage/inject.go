package stage

import "github.com/phanxgames/demoncoin"

// syntheticEvent represents a single injected input event. Coordinates are
// world coordinates, identical to real pointer input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	confirm bool
}

// InjectPress queues a pointer press at the given coordinates. The event is
// consumed on the next frame's Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames
// is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectConfirm queues a confirm key press.
func (s *Scene) InjectConfirm() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{confirm: true})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the input state machine. Returns true if an event was consumed
// (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.confirm {
		s.post(demoncoin.Event{Kind: demoncoin.EventConfirm})
		return true
	}
	s.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
