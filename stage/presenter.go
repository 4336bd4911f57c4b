package stage

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/demoncoin"
)

// burstIDBase starts the id range for particle bursts the controller does
// not name. Controller ids are allocated from 1 upward.
const burstIDBase demoncoin.EntityID = 1 << 31

// defaultTextSize is used when a text style leaves Size zero.
const defaultTextSize = 16

// Stage implements demoncoin.Presenter on a Scene.
type Stage struct {
	scene   *Scene
	font    *Font
	assets  *Assets
	mixer   *Mixer
	gravity float64
	nextFX  demoncoin.EntityID
}

// StageConfig wires a Stage's resources. Nil Assets get an empty set; a nil
// Mixer is silent.
type StageConfig struct {
	Font    *Font
	Assets  *Assets
	Mixer   *Mixer
	Gravity float64 // pixels per second squared for Drop
}

var _ demoncoin.Presenter = (*Stage)(nil)

// NewStage creates a stage drawing into scene.
func NewStage(scene *Scene, cfg StageConfig) *Stage {
	if cfg.Assets == nil {
		cfg.Assets = NewAssets()
	}
	return &Stage{
		scene:   scene,
		font:    cfg.Font,
		assets:  cfg.Assets,
		mixer:   cfg.Mixer,
		gravity: cfg.Gravity,
		nextFX:  burstIDBase,
	}
}

// Scene returns the underlying scene.
func (s *Stage) Scene() *Scene {
	return s.scene
}

// Update advances the scene by dt seconds.
func (s *Stage) Update(dt float64) {
	s.scene.Update(dt)
}

// Draw renders the scene.
func (s *Stage) Draw(screen *ebiten.Image) {
	s.scene.Draw(screen)
}

func (s *Stage) node(op string, id demoncoin.EntityID) *Node {
	n := s.scene.Node(id)
	if n == nil {
		s.scene.debugUnknown(op, id)
	}
	return n
}

// Spawn implements demoncoin.Presenter.
func (s *Stage) Spawn(e demoncoin.Entity) {
	var n *Node
	switch e.Kind {
	case demoncoin.KindSprite:
		n = NewSprite(e.Name, s.assets.Image(e.Texture))
	case demoncoin.KindText:
		n = NewText(e.Name, s.textBlock(e.Text, e.Style))
	case demoncoin.KindRect:
		n = NewRect(e.Name, e.Width, e.Height, colorOf(e.Color))
	case demoncoin.KindCircle:
		n = NewCircle(e.Name, e.Radius, colorOf(e.Color))
	default:
		return
	}
	n.X, n.Y = e.X, e.Y
	if e.Kind != demoncoin.KindCircle {
		n.OriginX, n.OriginY = e.OriginX, e.OriginY
	}
	n.ScaleX, n.ScaleY = e.Scale, e.Scale
	if e.FitWidth > 0 && e.FitHeight > 0 {
		if w, h := n.Dimensions(); w > 0 && h > 0 {
			n.ScaleX, n.ScaleY = e.FitWidth/w, e.FitHeight/h
		}
	}
	n.Alpha = e.Alpha
	n.ZIndex = e.Depth
	n.Visible = !e.Hidden
	n.Interactable = e.Interactive
	n.MarkDirty()
	s.scene.Add(e.ID, n)
}

func (s *Stage) textBlock(content string, st demoncoin.TextStyle) *TextBlock {
	if s.font == nil {
		return NewTextBlock(content, nil)
	}
	size := st.Size
	if size <= 0 {
		size = defaultTextSize
	}
	tb := NewTextBlock(content, s.font.Face(size))
	tb.Align = st.Align
	tb.WrapWidth = st.WrapWidth
	tb.Color = colorOf(st.Color)
	if st.StrokeWidth > 0 {
		tb.Outline = &Outline{Color: colorOf(st.Stroke), Thickness: st.StrokeWidth}
	}
	return tb
}

// Destroy implements demoncoin.Presenter.
func (s *Stage) Destroy(id demoncoin.EntityID) {
	if n := s.scene.Node(id); n != nil {
		s.scene.KillTweensOf(n)
	}
	s.scene.Remove(id)
}

// SetText implements demoncoin.Presenter.
func (s *Stage) SetText(id demoncoin.EntityID, text string) {
	if n := s.node("SetText", id); n != nil && n.TextBlock != nil {
		n.TextBlock.SetContent(text)
		n.MarkDirty()
	}
}

// SetTexture implements demoncoin.Presenter.
func (s *Stage) SetTexture(id demoncoin.EntityID, texture string) {
	if n := s.node("SetTexture", id); n != nil && n.Type == NodeTypeSprite {
		n.Image = s.assets.Image(texture)
		n.MarkDirty()
	}
}

// SetVisible implements demoncoin.Presenter.
func (s *Stage) SetVisible(id demoncoin.EntityID, visible bool) {
	if n := s.node("SetVisible", id); n != nil {
		n.Visible = visible
	}
}

// SetInteractive implements demoncoin.Presenter.
func (s *Stage) SetInteractive(id demoncoin.EntityID, interactive bool) {
	if n := s.node("SetInteractive", id); n != nil {
		n.Interactable = interactive
	}
}

// SetAlpha implements demoncoin.Presenter.
func (s *Stage) SetAlpha(id demoncoin.EntityID, alpha float64) {
	if n := s.node("SetAlpha", id); n != nil {
		n.Alpha = alpha
	}
}

// SetPosition implements demoncoin.Presenter.
func (s *Stage) SetPosition(id demoncoin.EntityID, x, y float64) {
	if n := s.node("SetPosition", id); n != nil {
		n.SetPosition(x, y)
	}
}

// SetRotation implements demoncoin.Presenter. Degrees are converted to the
// scene's radians.
func (s *Stage) SetRotation(id demoncoin.EntityID, degrees float64) {
	if n := s.node("SetRotation", id); n != nil {
		n.SetRotation(degrees * math.Pi / 180)
	}
}

// SetScale implements demoncoin.Presenter.
func (s *Stage) SetScale(id demoncoin.EntityID, scale float64) {
	if n := s.node("SetScale", id); n != nil {
		n.SetScale(scale, scale)
	}
}

// Position implements demoncoin.Presenter.
func (s *Stage) Position(id demoncoin.EntityID) (float64, float64, bool) {
	n := s.scene.Node(id)
	if n == nil {
		return 0, 0, false
	}
	return n.X, n.Y, true
}

// Tween implements demoncoin.Presenter.
func (s *Stage) Tween(id demoncoin.EntityID, tw demoncoin.Tween) {
	if n := s.node("Tween", id); n != nil {
		s.scene.Tween(n, tw)
	}
}

// KillTweens implements demoncoin.Presenter.
func (s *Stage) KillTweens(id demoncoin.EntityID) {
	s.scene.KillTweensOf(s.scene.Node(id))
}

// Drop implements demoncoin.Presenter.
func (s *Stage) Drop(id demoncoin.EntityID, floorY float64, landed demoncoin.Event) {
	if n := s.node("Drop", id); n != nil {
		s.scene.Drop(n, floorY, s.gravity, landed)
	}
}

// Emit implements demoncoin.Presenter. Bursts without an ID remove
// themselves when their particles die.
func (s *Stage) Emit(p demoncoin.Particles) {
	id := p.ID
	if id == 0 {
		id = s.nextFX
		s.nextFX++
	}
	n := NewEmitter("particles", emitterConfig(p, s.assets.Image(p.Texture)))
	n.ZIndex = p.Depth
	s.scene.Add(id, n)
}

// PlaySound implements demoncoin.Presenter.
func (s *Stage) PlaySound(name string) {
	if !s.mixer.Play(name) {
		s.scene.debugWarn("sound %q not loaded", name)
	}
}

// After implements demoncoin.Presenter.
func (s *Stage) After(d time.Duration, ev demoncoin.Event) demoncoin.TimerID {
	return s.scene.After(d, ev)
}

// Every implements demoncoin.Presenter.
func (s *Stage) Every(d time.Duration, ev demoncoin.Event) demoncoin.TimerID {
	return s.scene.Every(d, ev)
}

// Cancel implements demoncoin.Presenter.
func (s *Stage) Cancel(id demoncoin.TimerID) {
	s.scene.Cancel(id)
}
