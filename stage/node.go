package stage

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/demoncoin"
)

// NodeType identifies how a node is drawn.
type NodeType uint8

const (
	NodeTypeSprite NodeType = iota
	NodeTypeText
	NodeTypeRect
	NodeTypeCircle
	NodeTypeEmitter
)

// Node is a drawable scene element. A single flat struct is used for all
// node types to avoid interface dispatch on the hot path. The scene is flat:
// nodes have no parent and their transform is their world transform.
type Node struct {
	// Identity
	ID   demoncoin.EntityID
	Name string
	Type NodeType

	// Transform
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	// OriginX and OriginY anchor the node within its own bounds, 0.5 is
	// centered.
	OriginX, OriginY float64

	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Ordering: ZIndex first, then insertion order.
	ZIndex int
	order  int

	Color    Color
	Additive bool

	// Sprite fields (NodeTypeSprite)
	Image *ebiten.Image

	// Rect fields (NodeTypeRect)
	Width, Height float64

	// Circle fields (NodeTypeCircle)
	Radius float64

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// Particle fields (NodeTypeEmitter)
	Emitter *ParticleEmitter

	// Gravity fall, set by Drop
	body *body

	disposed bool
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

func colorOf(c demoncoin.Color) Color {
	return Color{c.R, c.G, c.B, c.A}
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = Color{1, 1, 1, 1}
	n.Visible = true
	n.transformDirty = true
}

// NewSprite creates a sprite node drawing img.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	return n
}

// NewRect creates a solid rectangle node.
func NewRect(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewCircle creates a solid circle node. Circles are centered on their
// position and drawn additively.
func NewCircle(name string, radius float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Radius: radius, OriginX: 0.5, OriginY: 0.5}
	nodeDefaults(n)
	n.Color = c
	n.Additive = true
	return n
}

// NewText creates a text node.
func NewText(name string, tb *TextBlock) *Node {
	n := &Node{Name: name, Type: NodeTypeText, TextBlock: tb}
	nodeDefaults(n)
	return n
}

// NewEmitter creates a particle emitter node.
func NewEmitter(name string, cfg EmitterConfig) *Node {
	n := &Node{Name: name, Type: NodeTypeEmitter, Emitter: newParticleEmitter(cfg)}
	nodeDefaults(n)
	n.Additive = cfg.Additive
	return n
}

// Dimensions returns the node's unscaled local size.
func (n *Node) Dimensions() (w, h float64) {
	switch n.Type {
	case NodeTypeSprite:
		if n.Image == nil {
			return 0, 0
		}
		b := n.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	case NodeTypeRect:
		return n.Width, n.Height
	case NodeTypeCircle:
		return n.Radius * 2, n.Radius * 2
	case NodeTypeText:
		if n.TextBlock == nil {
			return 0, 0
		}
		return n.TextBlock.Measure()
	}
	return 0, 0
}

// Dispose marks the node as disposed and drops its resources. Tweens
// targeting a disposed node stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.body = nil
	n.Emitter = nil
	if n.TextBlock != nil {
		n.TextBlock.dispose()
		n.TextBlock = nil
	}
	n.Image = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
