package stage

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/demoncoin"
)

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	return f
}

func TestLoadTTFFont_InvalidData(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a font"))
	if err == nil {
		t.Error("expected error for invalid TTF data")
	}
}

func TestFontFaceCached(t *testing.T) {
	f := testFont(t)
	if f.Face(24) != f.Face(24) {
		t.Error("same size returned different faces")
	}
	if f.Face(24) == f.Face(32) {
		t.Error("different sizes share a face")
	}
}

func TestTextBlock_WordWrap(t *testing.T) {
	face := testFont(t).Face(24)
	tb := NewTextBlock("With each demon you send into the coin, you gain more knowledge.", face)
	tb.WrapWidth = 200

	lines := tb.Lines()
	if len(lines) < 2 {
		t.Fatalf("lines = %q, want wrapping", lines)
	}
	for _, l := range lines {
		if w := text.Advance(l, face); w > 200 {
			t.Errorf("line %q is %f wide, exceeds 200", l, w)
		}
	}
	_, h := tb.Measure()
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	if math.Abs(h-float64(len(lines))*lh) > 0.001 {
		t.Errorf("height = %f, want %d lines of %f", h, len(lines), lh)
	}
}

func TestTextBlock_NoWrap_WhenZeroWrapWidth(t *testing.T) {
	tb := NewTextBlock("one two three four five six seven", testFont(t).Face(24))
	if got := len(tb.Lines()); got != 1 {
		t.Errorf("lines = %d, want 1", got)
	}
}

func TestTextBlock_Newlines(t *testing.T) {
	tb := NewTextBlock("first\nsecond\n\nfourth", testFont(t).Face(16))
	tb.WrapWidth = 500
	if got := tb.Lines(); len(got) != 4 || got[2] != "" {
		t.Errorf("lines = %q", got)
	}
}

func TestTextBlock_LongWordOwnLine(t *testing.T) {
	tb := NewTextBlock("a Supercalifragilisticexpialidocious b", testFont(t).Face(24))
	tb.WrapWidth = 50
	lines := tb.Lines()
	if len(lines) != 3 || lines[1] != "Supercalifragilisticexpialidocious" {
		t.Errorf("lines = %q", lines)
	}
}

func TestTextBlock_AlignOffsets(t *testing.T) {
	face := testFont(t).Face(24)
	tb := NewTextBlock("short\na much longer line", face)
	tb.Align = demoncoin.AlignCenter
	tb.layout()

	short := tb.lines[0].width
	if got, want := tb.lineOffset(short), (tb.measuredW-short)/2; math.Abs(got-want) > 0.001 {
		t.Errorf("center offset = %f, want %f", got, want)
	}
	tb.Align = demoncoin.AlignRight
	if got, want := tb.lineOffset(short), tb.measuredW-short; math.Abs(got-want) > 0.001 {
		t.Errorf("right offset = %f, want %f", got, want)
	}
	tb.Align = demoncoin.AlignLeft
	if tb.lineOffset(short) != 0 {
		t.Error("left offset not zero")
	}
}

func TestTextBlock_OutlinePadding(t *testing.T) {
	face := testFont(t).Face(32)
	plain := NewTextBlock("ACHIEVEMENT", face)
	outlined := NewTextBlock("ACHIEVEMENT", face)
	outlined.Outline = &Outline{Color: Color{0, 0, 0, 1}, Thickness: 4}

	pw, ph := plain.Measure()
	ow, oh := outlined.Measure()
	if math.Abs(ow-pw-8) > 0.001 || math.Abs(oh-ph-8) > 0.001 {
		t.Errorf("outlined = (%f, %f), plain = (%f, %f), want +8 each way", ow, oh, pw, ph)
	}
}

func TestTextBlock_LayoutCaching(t *testing.T) {
	tb := NewTextBlock("Demons: 0/100", testFont(t).Face(18))
	w1, _ := tb.Measure()
	if tb.layoutDirty {
		t.Fatal("layout still dirty after Measure")
	}
	tb.SetContent("Demons: 0/100")
	if tb.layoutDirty {
		t.Error("same content invalidated the layout")
	}
	tb.SetContent("Demons: 100/100")
	w2, _ := tb.Measure()
	if w2 <= w1 {
		t.Errorf("width %f did not grow from %f", w2, w1)
	}
}

func TestTextBlock_NilFace(t *testing.T) {
	tb := NewTextBlock("hidden", nil)
	if w, h := tb.Measure(); w != 0 || h != 0 {
		t.Errorf("Measure = (%f, %f), want zero", w, h)
	}
}
