package stage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/demoncoin"
)

// InputSource reports the raw input state for one frame.
type InputSource interface {
	// Pointer returns the primary pointer position in world coordinates and
	// whether it is pressed.
	Pointer() (x, y float64, pressed bool)
	// ConfirmPressed reports whether the confirm key went down this frame.
	ConfirmPressed() bool
}

// EbitenInput reads the mouse, the first touch and the Enter keys.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
	lastX    float64
	lastY    float64
}

// Pointer implements InputSource. An active touch takes precedence over
// the mouse.
func (in *EbitenInput) Pointer() (float64, float64, bool) {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(in.touchIDs[0])
		in.lastX, in.lastY = float64(tx), float64(ty)
		return in.lastX, in.lastY, true
	}
	mx, my := ebiten.CursorPosition()
	in.lastX, in.lastY = float64(mx), float64(my)
	return in.lastX, in.lastY, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// ConfirmPressed implements InputSource.
func (in *EbitenInput) ConfirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	down         bool
	lastX, lastY float64
	hoverNode    *Node
	hitNode      *Node
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's bounds.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	w, h := n.Dimensions()
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.hitBuf[:0]
	for _, n := range s.sorted() {
		if n.Visible && n.Interactable && !n.disposed {
			s.hitBuf = append(s.hitBuf, n)
		}
	}
	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to turn input into events.
// Injected input replaces real input for the frames it covers.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.input == nil {
		return
	}
	x, y, pressed := s.input.Pointer()
	s.processPointer(x, y, pressed)
	if s.input.ConfirmPressed() {
		s.post(demoncoin.Event{Kind: demoncoin.EventConfirm})
	}
}

func nodeID(n *Node) demoncoin.EntityID {
	if n == nil || n.disposed {
		return 0
	}
	return n.ID
}

// processPointer runs the pointer state machine for the primary pointer.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	ps := &s.pointer
	if ps.hoverNode != nil && ps.hoverNode.disposed {
		ps.hoverNode = nil
	}
	target := s.hitTest(wx, wy)

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.post(demoncoin.Event{Kind: demoncoin.EventPointerOut, Target: ps.hoverNode.ID, X: wx, Y: wy})
		}
		if target != nil {
			s.post(demoncoin.Event{Kind: demoncoin.EventPointerOver, Target: target.ID, X: wx, Y: wy})
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitNode = target
		ps.lastX, ps.lastY = wx, wy
		s.post(demoncoin.Event{Kind: demoncoin.EventPointerDown, Target: nodeID(target), X: wx, Y: wy})
	case !pressed && ps.down:
		ps.down = false
		s.post(demoncoin.Event{Kind: demoncoin.EventPointerUp, Target: nodeID(ps.hitNode), X: wx, Y: wy})
		ps.hitNode = nil
		ps.lastX, ps.lastY = wx, wy
	case wx != ps.lastX || wy != ps.lastY:
		// Held or hovering, moved.
		s.post(demoncoin.Event{Kind: demoncoin.EventPointerMove, Target: nodeID(ps.hitNode), X: wx, Y: wy})
		ps.lastX, ps.lastY = wx, wy
	}
}
