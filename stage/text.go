package stage

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/demoncoin"
)

// --- Font ---

// Font wraps Ebitengine's text/v2 face source and caches one face per size.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data.
func LoadTTFFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("stage: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// DefaultFont loads the Go Regular font.
func DefaultFont() (*Font, error) {
	return LoadTTFFont(goregular.TTF)
}

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// --- Outline ---

// Outline defines a text stroke rendered behind the fill.
type Outline struct {
	Color     Color
	Thickness float64
}

// --- TextBlock ---

// TextAlign controls horizontal alignment of wrapped lines.
type TextAlign = demoncoin.TextAlign

// TextBlock holds text content, formatting, and cached layout state.
type TextBlock struct {
	Content   string
	Face      *text.GoTextFace
	Align     TextAlign
	WrapWidth float64
	Color     Color
	Outline   *Outline

	// Cached layout (unexported)
	layoutDirty bool
	lines       []textLine
	measuredW   float64
	measuredH   float64
	lineHeight  float64

	// Rendered cache (unexported)
	image      *ebiten.Image
	imageDirty bool
}

type textLine struct {
	text  string
	width float64
}

// NewTextBlock creates a text block with white fill.
func NewTextBlock(content string, face *text.GoTextFace) *TextBlock {
	return &TextBlock{
		Content:     content,
		Face:        face,
		Color:       Color{1, 1, 1, 1},
		layoutDirty: true,
	}
}

// SetContent replaces the text and invalidates the layout.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.layoutDirty = true
}

// Measure returns the block's size including any outline padding.
func (tb *TextBlock) Measure() (w, h float64) {
	tb.layout()
	pad := tb.padding()
	return tb.measuredW + 2*pad, tb.measuredH + 2*pad
}

// Lines returns the laid-out lines.
func (tb *TextBlock) Lines() []string {
	tb.layout()
	out := make([]string, len(tb.lines))
	for i, l := range tb.lines {
		out[i] = l.text
	}
	return out
}

func (tb *TextBlock) padding() float64 {
	if tb.Outline == nil {
		return 0
	}
	return math.Ceil(tb.Outline.Thickness)
}

// layout recomputes line breaks if dirty.
func (tb *TextBlock) layout() {
	if !tb.layoutDirty {
		return
	}
	tb.layoutDirty = false
	tb.imageDirty = true
	tb.lines = tb.lines[:0]
	tb.measuredW, tb.measuredH = 0, 0
	if tb.Face == nil {
		return
	}

	m := tb.Face.Metrics()
	tb.lineHeight = m.HAscent + m.HDescent + m.HLineGap

	for _, para := range strings.Split(tb.Content, "\n") {
		tb.wrapParagraph(para)
	}
	for _, l := range tb.lines {
		tb.measuredW = math.Max(tb.measuredW, l.width)
	}
	tb.measuredH = float64(len(tb.lines)) * tb.lineHeight
}

// wrapParagraph greedily breaks para at spaces so no line exceeds WrapWidth.
// A single word wider than WrapWidth gets a line of its own.
func (tb *TextBlock) wrapParagraph(para string) {
	if tb.WrapWidth <= 0 {
		tb.lines = append(tb.lines, textLine{para, text.Advance(para, tb.Face)})
		return
	}
	words := strings.Fields(para)
	if len(words) == 0 {
		tb.lines = append(tb.lines, textLine{})
		return
	}
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if text.Advance(next, tb.Face) > tb.WrapWidth {
			tb.lines = append(tb.lines, textLine{cur, text.Advance(cur, tb.Face)})
			cur = w
			continue
		}
		cur = next
	}
	tb.lines = append(tb.lines, textLine{cur, text.Advance(cur, tb.Face)})
}

// lineOffset returns the x offset of a line of width lw.
func (tb *TextBlock) lineOffset(lw float64) float64 {
	switch tb.Align {
	case demoncoin.AlignCenter:
		return (tb.measuredW - lw) / 2
	case demoncoin.AlignRight:
		return tb.measuredW - lw
	}
	return 0
}

// render draws the block into its cached image, re-rendering only when the
// layout changed.
func (tb *TextBlock) render() *ebiten.Image {
	w, h := tb.Measure()
	if w < 1 || h < 1 {
		return nil
	}
	if !tb.imageDirty && tb.image != nil {
		return tb.image
	}
	tb.imageDirty = false

	iw, ih := int(math.Ceil(w))+1, int(math.Ceil(h))+1
	if tb.image != nil {
		if b := tb.image.Bounds(); b.Dx() != iw || b.Dy() != ih {
			tb.image.Deallocate()
			tb.image = nil
		} else {
			tb.image.Clear()
		}
	}
	if tb.image == nil {
		tb.image = ebiten.NewImage(iw, ih)
	}

	pad := tb.padding()
	if tb.Outline != nil && tb.Outline.Thickness > 0 {
		const steps = 8
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / steps
			tb.drawLines(pad+math.Cos(a)*tb.Outline.Thickness, pad+math.Sin(a)*tb.Outline.Thickness, tb.Outline.Color)
		}
	}
	tb.drawLines(pad, pad, tb.Color)
	return tb.image
}

func (tb *TextBlock) drawLines(x, y float64, c Color) {
	for i, l := range tb.lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+tb.lineOffset(l.width), y+float64(i)*tb.lineHeight)
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		text.Draw(tb.image, l.text, tb.Face, op)
	}
}

func (tb *TextBlock) dispose() {
	if tb.image != nil {
		tb.image.Deallocate()
		tb.image = nil
	}
}
