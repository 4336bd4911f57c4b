package stage

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// discSize is the diameter of the shared circle image.
const discSize = 128

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// colorScale applies c premultiplied by alpha.
func colorScale(op *ebiten.DrawImageOptions, c Color, alpha float64) {
	a := c.A * alpha
	op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
}

// newDiscImage rasterizes a white disc with a one-pixel soft edge.
func newDiscImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			cov := math.Max(0, math.Min(1, r-math.Hypot(dx, dy)))
			a := uint8(cov * 255)
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}

func (s *Scene) ensureImages() {
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(color.White)
	}
	if s.disc == nil {
		s.disc = ebiten.NewImageFromImage(newDiscImage(discSize))
	}
}

// Draw renders every visible node in painter order.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.ensureImages()

	draws := 0
	for _, n := range s.sorted() {
		if !n.Visible || n.disposed {
			continue
		}
		draws += s.drawNode(screen, n)
	}

	if s.debug {
		s.fps.draw(screen, len(s.list))
		s.debugLog(debugStats{drawTime: time.Since(t0), nodeCount: len(s.list), drawCount: draws})
	}
}

// drawNode draws n and returns the number of draw calls issued.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node) int {
	if n.Type == NodeTypeEmitter {
		return s.drawParticles(dst, n)
	}
	if n.Alpha <= 0 {
		return 0
	}
	updateTransform(n)

	var img *ebiten.Image
	op := &ebiten.DrawImageOptions{}
	switch n.Type {
	case NodeTypeSprite:
		img = n.Image
	case NodeTypeRect:
		img = s.whitePixel
		op.GeoM.Scale(n.Width, n.Height)
	case NodeTypeCircle:
		if n.Radius <= 0 {
			return 0
		}
		img = s.disc
		op.GeoM.Scale(2*n.Radius/discSize, 2*n.Radius/discSize)
	case NodeTypeText:
		if n.TextBlock != nil {
			img = n.TextBlock.render()
		}
	}
	if img == nil {
		return 0
	}
	op.GeoM.Concat(geoM(n.worldTransform))
	colorScale(op, n.Color, n.Alpha)
	if n.Additive {
		op.Blend = ebiten.BlendLighter
	}
	dst.DrawImage(img, op)
	return 1
}

func (s *Scene) drawParticles(dst *ebiten.Image, n *Node) int {
	e := n.Emitter
	if e == nil || e.config.Image == nil {
		return 0
	}
	img := e.config.Image
	b := img.Bounds()
	hw, hh := float64(b.Dx())/2, float64(b.Dy())/2
	for i := 0; i < e.alive; i++ {
		p := &e.particles[i]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-hw, -hh)
		op.GeoM.Scale(p.scale, p.scale)
		op.GeoM.Translate(p.x, p.y)
		colorScale(op, n.Color, n.Alpha*p.alpha)
		if n.Additive {
			op.Blend = ebiten.BlendLighter
		}
		dst.DrawImage(img, op)
	}
	return e.alive
}
