package stage

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/demoncoin"
)

// track animates one property of the target node.
type track struct {
	tween    *gween.Tween
	from, to float32
	apply    func(n *Node, v float64)
}

// TweenGroup animates several properties of a Node together. Create one via
// NewTweenGroup and call Update(dt) each frame. If the target node is
// disposed, the group stops immediately without calling OnDone.
type TweenGroup struct {
	tracks   []track
	target   *Node
	duration float32
	fn       ease.TweenFunc

	// Yoyo plays each cycle forward then backward.
	Yoyo bool
	// Repeat is the number of extra cycles; demoncoin.Forever loops.
	Repeat int
	// OnDone runs once when a finite group completes.
	OnDone func()

	reverse bool
	cycles  int
	Done    bool
}

// NewTweenGroup creates a group animating node as tw describes. Props
// without a From value start at the node's current value.
func NewTweenGroup(node *Node, tw demoncoin.Tween) *TweenGroup {
	g := &TweenGroup{
		target:   node,
		duration: float32(tw.Duration.Seconds()),
		fn:       easeFunc(tw.Ease),
		Yoyo:     tw.Yoyo,
		Repeat:   tw.Repeat,
	}
	for _, p := range tw.Props {
		get, set := accessor(p.Prop)
		from := get(node)
		if p.HasFrom {
			from = p.From
			set(node, from)
		}
		g.tracks = append(g.tracks, track{from: float32(from), to: float32(p.To), apply: set})
	}
	g.restart()
	return g
}

func (g *TweenGroup) restart() {
	for i := range g.tracks {
		t := &g.tracks[i]
		from, to := t.from, t.to
		if g.reverse {
			from, to = to, from
		}
		t.tween = gween.New(from, to, g.duration, g.fn)
	}
}

// Update advances the group by dt seconds and writes values to the target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	finished := true
	for i := range g.tracks {
		t := &g.tracks[i]
		val, ok := t.tween.Update(dt)
		t.apply(g.target, float64(val))
		if !ok {
			finished = false
		}
	}
	g.target.MarkDirty()
	if !finished {
		return
	}

	if g.Yoyo && !g.reverse {
		g.reverse = true
		g.restart()
		return
	}
	if g.Repeat == demoncoin.Forever || g.cycles < g.Repeat {
		g.cycles++
		g.reverse = false
		g.restart()
		return
	}
	g.Done = true
	if g.OnDone != nil {
		g.OnDone()
	}
}

// Stop ends the group without calling OnDone.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// accessor returns the getter and setter for an animatable property.
func accessor(p demoncoin.Prop) (func(*Node) float64, func(*Node, float64)) {
	switch p {
	case demoncoin.PropX:
		return func(n *Node) float64 { return n.X }, func(n *Node, v float64) { n.X = v }
	case demoncoin.PropY:
		return func(n *Node) float64 { return n.Y }, func(n *Node, v float64) { n.Y = v }
	case demoncoin.PropScale:
		return func(n *Node) float64 { return n.ScaleX },
			func(n *Node, v float64) { n.ScaleX, n.ScaleY = v, v }
	case demoncoin.PropAlpha:
		return func(n *Node) float64 { return n.Alpha }, func(n *Node, v float64) { n.Alpha = v }
	case demoncoin.PropRotation:
		return func(n *Node) float64 { return n.Rotation * 180 / math.Pi },
			func(n *Node, v float64) { n.Rotation = v * math.Pi / 180 }
	case demoncoin.PropRadius:
		return func(n *Node) float64 { return n.Radius }, func(n *Node, v float64) { n.Radius = v }
	}
	return func(*Node) float64 { return 0 }, func(*Node, float64) {}
}

// easeFunc maps an easing name to its gween curve.
func easeFunc(e demoncoin.Ease) ease.TweenFunc {
	switch e {
	case demoncoin.EaseInOutSine:
		return ease.InOutSine
	case demoncoin.EaseOutSine:
		return ease.OutSine
	case demoncoin.EaseOutElastic:
		return ease.OutElastic
	case demoncoin.EaseInBack:
		return ease.InBack
	}
	return ease.Linear
}
