package stage

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/demoncoin"
)

// Sink receives events produced by the scene: input, timers, animation
// completions and landings. ecs.Queue satisfies it.
type Sink interface {
	Post(ev demoncoin.Event)
}

// Scene is the top-level object that owns the nodes, animations, timers,
// input state and render buffers.
type Scene struct {
	nodes     map[demoncoin.EntityID]*Node
	list      []*Node // insertion order
	drawBuf   []*Node
	nextOrder int

	tweens []*TweenGroup
	clock  clock

	sink  Sink
	debug bool
	fps   fpsOverlay

	// Input state
	input       InputSource
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticEvent

	// Shared render images, created on first draw
	whitePixel *ebiten.Image
	disc       *ebiten.Image
}

// NewScene creates an empty scene posting events to sink.
func NewScene(sink Sink) *Scene {
	return &Scene{
		nodes: make(map[demoncoin.EntityID]*Node),
		sink:  sink,
	}
}

// SetInput sets where pointer and keyboard state is read from. A nil
// source leaves the scene driven only by injected input.
func (s *Scene) SetInput(in InputSource) {
	s.input = in
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// stats and stale-id warnings are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

func (s *Scene) post(ev demoncoin.Event) {
	if s.sink != nil {
		s.sink.Post(ev)
	}
}

// Add inserts n under id. An existing node with the same id is replaced.
func (s *Scene) Add(id demoncoin.EntityID, n *Node) {
	if old := s.nodes[id]; old != nil {
		s.Remove(id)
	}
	n.ID = id
	n.order = s.nextOrder
	s.nextOrder++
	s.nodes[id] = n
	s.list = append(s.list, n)
}

// Remove disposes the node with id. Unknown ids are ignored.
func (s *Scene) Remove(id demoncoin.EntityID) {
	n := s.nodes[id]
	if n == nil {
		return
	}
	delete(s.nodes, id)
	n.Dispose()
	for i, c := range s.list {
		if c == n {
			copy(s.list[i:], s.list[i+1:])
			s.list[len(s.list)-1] = nil
			s.list = s.list[:len(s.list)-1]
			break
		}
	}
}

// Node returns the node with id, or nil.
func (s *Scene) Node(id demoncoin.EntityID) *Node {
	return s.nodes[id]
}

// Len returns the number of live nodes.
func (s *Scene) Len() int {
	return len(s.list)
}

// Tween starts animating n. A finite tween with a Done event posts it on
// completion.
func (s *Scene) Tween(n *Node, tw demoncoin.Tween) *TweenGroup {
	if n == nil || n.IsDisposed() {
		return nil
	}
	g := NewTweenGroup(n, tw)
	if tw.Done != nil && tw.Repeat != demoncoin.Forever {
		ev := *tw.Done
		g.OnDone = func() { s.post(ev) }
	}
	s.tweens = append(s.tweens, g)
	return g
}

// KillTweensOf stops every tween and fall on n without posting completions.
func (s *Scene) KillTweensOf(n *Node) {
	if n == nil {
		return
	}
	for _, g := range s.tweens {
		if g.target == n {
			g.Stop()
		}
	}
	n.body = nil
}

// TweenCount returns the number of running tweens on n.
func (s *Scene) TweenCount(n *Node) int {
	count := 0
	for _, g := range s.tweens {
		if g.target == n && !g.Done {
			count++
		}
	}
	return count
}

// Update processes input, advances animations, physics, particles and
// timers by dt seconds.
func (s *Scene) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.processInput()
	s.updateTweens(float32(dt))
	s.updateBodies(dt)
	s.updateParticles(dt)
	s.clock.advance(time.Duration(dt*float64(time.Second)), s.post)

	if s.debug {
		s.fps.update(dt)
		s.debugLog(debugStats{
			updateTime: time.Since(t0),
			nodeCount:  len(s.list),
			tweenCount: len(s.tweens),
			timerCount: s.clock.pending(),
		})
	}
}

func (s *Scene) updateTweens(dt float32) {
	// Tweens started by completion handlers run from the next frame.
	n := len(s.tweens)
	for i := 0; i < n; i++ {
		s.tweens[i].Update(dt)
	}
	kept := s.tweens[:0]
	for _, g := range s.tweens {
		if !g.Done {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = kept
}

// updateParticles simulates every emitter and removes finished bursts.
func (s *Scene) updateParticles(dt float64) {
	var done []demoncoin.EntityID
	for _, n := range s.list {
		if n.Emitter == nil {
			continue
		}
		n.Emitter.update(dt)
		if n.Emitter.Finished() {
			done = append(done, n.ID)
		}
	}
	for _, id := range done {
		s.Remove(id)
	}
}

// sorted returns the live nodes in painter order: ZIndex, then insertion.
func (s *Scene) sorted() []*Node {
	s.drawBuf = append(s.drawBuf[:0], s.list...)
	sort.SliceStable(s.drawBuf, func(i, j int) bool {
		a, b := s.drawBuf[i], s.drawBuf[j]
		if a.ZIndex != b.ZIndex {
			return a.ZIndex < b.ZIndex
		}
		return a.order < b.order
	})
	return s.drawBuf
}
