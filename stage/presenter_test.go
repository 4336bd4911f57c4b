package stage

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/demoncoin"
)

func newTestStage(t *testing.T) (*Stage, *sinkRecorder) {
	t.Helper()
	rec := &sinkRecorder{}
	assets := NewAssets()
	assets.AddImage(demoncoin.TexDemon, ebiten.NewImage(200, 100))
	assets.AddImage(demoncoin.TexCoinUltra, ebiten.NewImage(40, 40))
	assets.AddSound(demoncoin.SoundWin, make([]byte, 16))
	st := NewStage(NewScene(rec), StageConfig{
		Font:    testFont(t),
		Assets:  assets,
		Mixer:   NewMixer(nil, assets, 1),
		Gravity: 1000,
	})
	return st, rec
}

func TestStageSpawnSprite(t *testing.T) {
	st, _ := newTestStage(t)
	st.Spawn(demoncoin.Entity{
		ID: 3, Name: "demon", Kind: demoncoin.KindSprite, Texture: demoncoin.TexDemon,
		X: 100, Y: 595, Scale: 0.2, OriginX: 0.5, OriginY: 1,
		Alpha: 1, Depth: 2, Interactive: true,
	})

	n := st.Scene().Node(3)
	if n == nil {
		t.Fatal("sprite not spawned")
	}
	if n.Name != "demon" || n.ScaleX != 0.2 || n.OriginY != 1 || n.ZIndex != 2 {
		t.Errorf("node = %+v", n)
	}
	if !n.Visible || !n.Interactable {
		t.Error("spawned sprite not visible and interactive")
	}
	if x, y, ok := st.Position(3); !ok || x != 100 || y != 595 {
		t.Errorf("Position = (%f, %f, %v)", x, y, ok)
	}
}

func TestStageSpawnFitsSize(t *testing.T) {
	st, _ := newTestStage(t)
	st.Spawn(demoncoin.Entity{
		ID: 1, Kind: demoncoin.KindSprite, Texture: demoncoin.TexDemon,
		Scale: 1, Alpha: 1, FitWidth: 800, FitHeight: 600,
	})
	n := st.Scene().Node(1)
	if n.ScaleX != 4 || n.ScaleY != 6 {
		t.Errorf("scale = (%f, %f), want (4, 6)", n.ScaleX, n.ScaleY)
	}
}

func TestStageSpawnHidden(t *testing.T) {
	st, _ := newTestStage(t)
	st.Spawn(demoncoin.Entity{ID: 1, Kind: demoncoin.KindRect, Width: 10, Height: 10, Alpha: 1, Hidden: true})
	if st.Scene().Node(1).Visible {
		t.Error("hidden entity spawned visible")
	}
	st.SetVisible(1, true)
	if !st.Scene().Node(1).Visible {
		t.Error("SetVisible(true) ignored")
	}
}

func TestStageSpawnText(t *testing.T) {
	st, _ := newTestStage(t)
	st.Spawn(demoncoin.Entity{
		ID: 9, Name: "counter", Kind: demoncoin.KindText, Text: "Demons: 0/100",
		Style: demoncoin.TextStyle{Size: 24, WrapWidth: 300, Align: demoncoin.AlignCenter, StrokeWidth: 3},
		Scale: 1, Alpha: 1,
	})
	n := st.Scene().Node(9)
	if n.TextBlock == nil || n.TextBlock.Content != "Demons: 0/100" {
		t.Fatal("text block missing")
	}
	if n.TextBlock.Outline == nil || n.TextBlock.Align != demoncoin.AlignCenter {
		t.Error("style not applied")
	}
	st.SetText(9, "Demons: 1/100")
	if n.TextBlock.Content != "Demons: 1/100" {
		t.Errorf("content = %q", n.TextBlock.Content)
	}
}

func TestStageDefaultTextSize(t *testing.T) {
	st, _ := newTestStage(t)
	st.Spawn(demoncoin.Entity{ID: 1, Kind: demoncoin.KindText, Text: "x", Scale: 1, Alpha: 1})
	if got := st.Scene().Node(1).TextBlock.Face.Size; got != defaultTextSize {
		t.Errorf("face size = %f, want %d", got, defaultTextSize)
	}
}

func TestStageSetters(t *testing.T) {
	st, _ := newTestStage(t)
	st.Spawn(demoncoin.Entity{ID: 1, Kind: demoncoin.KindSprite, Texture: demoncoin.TexDemon, Scale: 1, Alpha: 1})
	n := st.Scene().Node(1)

	st.SetRotation(1, 90)
	if math.Abs(n.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("rotation = %f rad, want pi/2", n.Rotation)
	}
	st.SetScale(1, 0.5)
	if n.ScaleX != 0.5 || n.ScaleY != 0.5 {
		t.Error("SetScale not applied to both axes")
	}
	st.SetAlpha(1, 0.25)
	if n.Alpha != 0.25 {
		t.Error("SetAlpha ignored")
	}
	st.SetInteractive(1, true)
	if !n.Interactable {
		t.Error("SetInteractive ignored")
	}
	st.SetTexture(1, demoncoin.TexCoinUltra)
	if w, _ := n.Dimensions(); w != 40 {
		t.Errorf("width after SetTexture = %f, want 40", w)
	}
}

func TestStageUnknownIDs(t *testing.T) {
	st, _ := newTestStage(t)
	st.SetText(42, "x")
	st.SetTexture(42, demoncoin.TexCoin)
	st.SetPosition(42, 1, 1)
	st.SetRotation(42, 1)
	st.Tween(42, demoncoin.Tween{Props: []demoncoin.TweenProp{demoncoin.To(demoncoin.PropX, 1)}})
	st.KillTweens(42)
	st.Drop(42, 100, demoncoin.Event{Kind: demoncoin.EventLanded})
	st.Destroy(42)
	if _, _, ok := st.Position(42); ok {
		t.Error("unknown id reported a position")
	}
}

func TestStageTweenDone(t *testing.T) {
	st, rec := newTestStage(t)
	st.Spawn(demoncoin.Entity{ID: 1, Kind: demoncoin.KindRect, Width: 10, Height: 10, Alpha: 1, Scale: 1})

	done := demoncoin.Event{Kind: demoncoin.EventCaptureDone, Target: 1, Gen: 4}
	st.Tween(1, demoncoin.Tween{
		Props:    []demoncoin.TweenProp{demoncoin.To(demoncoin.PropY, 90)},
		Duration: 500 * time.Millisecond,
		Done:     &done,
	})
	for i := 0; i < 40; i++ {
		st.Update(1.0 / 60)
	}
	if rec.count(demoncoin.EventCaptureDone) != 1 {
		t.Fatalf("events = %v, want one CaptureDone", rec.kinds())
	}
	if got := rec.events[0]; got != done {
		t.Errorf("posted %+v, want %+v", got, done)
	}
	if _, y, _ := st.Position(1); y != 90 {
		t.Errorf("y = %f, want 90", y)
	}
}

func TestStageKillTweensSuppressesDone(t *testing.T) {
	st, rec := newTestStage(t)
	st.Spawn(demoncoin.Entity{ID: 1, Kind: demoncoin.KindRect, Width: 10, Height: 10, Alpha: 1, Scale: 1})
	st.Tween(1, demoncoin.Tween{
		Props:    []demoncoin.TweenProp{demoncoin.To(demoncoin.PropY, 90)},
		Duration: 100 * time.Millisecond,
		Done:     &demoncoin.Event{Kind: demoncoin.EventCaptureDone, Target: 1},
	})
	st.Update(1.0 / 60)
	st.KillTweens(1)
	for i := 0; i < 20; i++ {
		st.Update(1.0 / 60)
	}
	if len(rec.events) != 0 {
		t.Errorf("events after KillTweens = %v", rec.kinds())
	}
}

func TestStageDropUsesGravity(t *testing.T) {
	st, rec := newTestStage(t)
	st.Spawn(demoncoin.Entity{ID: 1, Kind: demoncoin.KindRect, Width: 10, Height: 10, Y: 200, Alpha: 1, Scale: 1})
	landed := demoncoin.Event{Kind: demoncoin.EventLanded, Target: 1, Gen: 1}
	st.Drop(1, 595, landed)

	// 395px at 1000px/s^2 takes about 0.89s.
	for i := 0; i < 50; i++ {
		st.Update(1.0 / 60)
	}
	if rec.count(demoncoin.EventLanded) != 0 {
		t.Fatal("landed too early")
	}
	for i := 0; i < 10; i++ {
		st.Update(1.0 / 60)
	}
	if rec.count(demoncoin.EventLanded) != 1 {
		t.Fatalf("events = %v, want one Landed", rec.kinds())
	}
	if _, y, _ := st.Position(1); y != 595 {
		t.Errorf("y = %f, want 595", y)
	}
}

func TestStageEmitBurst(t *testing.T) {
	st, _ := newTestStage(t)
	st.Emit(demoncoin.Particles{
		Texture: demoncoin.TexDemon, Quantity: 5, Lifetime: 100 * time.Millisecond,
		SpeedX: demoncoin.Range{Min: -60, Max: 60}, StartScale: 0.15,
	})
	st.Emit(demoncoin.Particles{Texture: demoncoin.TexDemon, Quantity: 5, Lifetime: 100 * time.Millisecond})

	a, b := st.Scene().Node(burstIDBase), st.Scene().Node(burstIDBase+1)
	if a == nil || b == nil || a.Emitter == nil {
		t.Fatal("bursts not registered in the burst id range")
	}
	for i := 0; i < 20; i++ {
		st.Update(1.0 / 60)
	}
	if st.Scene().Len() != 0 {
		t.Errorf("%d nodes left after bursts died", st.Scene().Len())
	}
}

func TestStageEmitNamedStream(t *testing.T) {
	st, _ := newTestStage(t)
	st.Emit(demoncoin.Particles{
		ID: 50, Texture: demoncoin.TexDemon, Quantity: 2,
		Lifetime: 100 * time.Millisecond, Interval: 50 * time.Millisecond,
	})
	for i := 0; i < 30; i++ {
		st.Update(1.0 / 60)
	}
	if st.Scene().Node(50) == nil {
		t.Fatal("stream emitter removed while running")
	}
	st.Destroy(50)
	if st.Scene().Node(50) != nil {
		t.Error("Destroy left the emitter")
	}
}

func TestStageTimers(t *testing.T) {
	st, rec := newTestStage(t)
	st.After(100*time.Millisecond, demoncoin.Event{Kind: demoncoin.EventRevealDue})
	id := st.Every(50*time.Millisecond, demoncoin.Event{Kind: demoncoin.EventTick})
	st.Update(0.1)
	st.Cancel(id)
	st.Update(0.1)

	if rec.count(demoncoin.EventRevealDue) != 1 || rec.count(demoncoin.EventTick) != 2 {
		t.Errorf("events = %v", rec.kinds())
	}
}

func TestStagePlaySound(t *testing.T) {
	st, _ := newTestStage(t)
	st.PlaySound(demoncoin.SoundWin)
	st.PlaySound("missing")

	if !st.mixer.Play(demoncoin.SoundWin) {
		t.Error("loaded sound reported missing")
	}
	if st.mixer.Play("missing") {
		t.Error("missing sound reported played")
	}
	var nilMixer *Mixer
	if nilMixer.Play(demoncoin.SoundWin) {
		t.Error("nil mixer played a sound")
	}
}
