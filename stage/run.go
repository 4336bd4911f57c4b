package stage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds the window parameters for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Game adapts a Stage to ebiten.Game. OnFrame runs after the stage has
// updated each frame; a non-nil error ends the loop.
type Game struct {
	Stage   *Stage
	Width   int
	Height  int
	OnFrame func(dt float64) error
}

var _ ebiten.Game = (*Game)(nil)

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.Stage.Update(dt)
	if g.OnFrame != nil {
		return g.OnFrame(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.Stage.Draw(screen)
}

// Layout implements ebiten.Game. The world keeps its size and the window
// letterboxes it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Width, g.Height
}

// Run opens the window and blocks until the game ends.
func Run(cfg RunConfig, g *Game) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("stage: run: %w", err)
	}
	return nil
}
