package stage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows FPS, TPS and the node count in the top-left corner while
// debug mode is on.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	dirty bool
}

func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since >= fpsRefresh {
		o.since = 0
		o.dirty = true
	}
}

func (o *fpsOverlay) draw(dst *ebiten.Image, nodes int) {
	if o.img == nil {
		// Room for three lines of debug font.
		o.img = ebiten.NewImage(120, 48)
		o.dirty = true
	}
	if o.dirty {
		o.dirty = false
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nNodes: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), nodes))
	}
	dst.DrawImage(o.img, nil)
}
