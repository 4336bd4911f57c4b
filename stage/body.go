package stage

import "github.com/phanxgames/demoncoin"

// body is a gravity fall toward a floor line. Velocity starts at rest.
type body struct {
	vy      float64
	gravity float64
	floorY  float64
	landed  demoncoin.Event
}

// Drop starts n falling under gravity until its Y reaches floorY. ev is
// posted when it lands. Any previous fall is replaced.
func (s *Scene) Drop(n *Node, floorY, gravity float64, ev demoncoin.Event) {
	if n == nil || n.IsDisposed() {
		return
	}
	n.body = &body{gravity: gravity, floorY: floorY, landed: ev}
}

// updateBodies integrates every falling node.
func (s *Scene) updateBodies(dt float64) {
	for _, n := range s.list {
		b := n.body
		if b == nil {
			continue
		}
		b.vy += b.gravity * dt
		n.Y += b.vy * dt
		n.transformDirty = true
		if n.Y >= b.floorY {
			n.Y = b.floorY
			n.body = nil
			s.post(b.landed)
		}
	}
}

// Falling reports whether n is currently falling.
func (n *Node) Falling() bool {
	return n.body != nil
}
