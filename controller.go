package demoncoin

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Controller owns the session and turns events into state transitions plus
// presenter commands. It is single-threaded: call Dispatch from one goroutine
// and let each call run to completion.
type Controller struct {
	p      Presenter
	tuning Tuning
	log    *slog.Logger
	rng    *rand.Rand

	state  SessionState
	nextID EntityID

	// Entities outside the demon list.
	ui struct {
		intro, prompt, message     EntityID
		background, coin, light    EntityID
		counter, clock             EntityID
		button                     EntityID
		overlay, trophy, fireworks EntityID
	}
	coinX, coinY float64
	countdown    TimerID
	buttonBusy   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTuning replaces DefaultTuning.
func WithTuning(t Tuning) Option {
	return func(c *Controller) { c.tuning = t }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithRand sets the random source used for animation jitter and roaming.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// NewController creates a controller driving p. Call Start to show the intro.
func NewController(p Presenter, opts ...Option) *Controller {
	c := &Controller{
		p:      p,
		tuning: DefaultTuning(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// State returns the live session. Callers must not mutate it.
func (c *Controller) State() *SessionState {
	return &c.state
}

// Tuning returns the constants in effect.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Start shows the intro screen.
func (c *Controller) Start() {
	c.showIntro()
}

// Dispatch handles one event. Events that do not apply to the current phase,
// entity generation or epoch are ignored.
func (c *Controller) Dispatch(ev Event) {
	switch ev.Kind {
	case EventConfirm:
		c.confirm()
	case EventPointerDown:
		c.pointerDown(ev)
	case EventPointerMove:
		c.pointerMove(ev)
	case EventPointerUp:
		c.pointerUp()
	case EventPointerOver:
		c.hover(ev, true)
	case EventPointerOut:
		c.hover(ev, false)
	case EventTick:
		c.tick(ev)
	case EventFrame:
		c.frame(ev.DT)
	case EventCaptureDone:
		c.captureDone(ev)
	case EventRespawnDue:
		c.respawn(ev)
	case EventLanded:
		c.landed(ev)
	case EventRevealDue:
		c.revealDue(ev)
	case EventPulsePeak:
		c.pulsePeak(ev)
	case EventButtonSquashed:
		c.buttonSquashed(ev)
	case EventButtonBounced:
		c.buttonBounced(ev)
	case EventAssetFailed:
		c.assetFailed(ev)
	}
}

func (c *Controller) confirm() {
	switch c.state.Phase {
	case PhaseIntro:
		c.startGame()
	case PhaseReveal:
		c.dismissReveal()
	case PhaseRestartPrompt:
		if !c.buttonBusy {
			c.restart()
		}
	case PhaseAchievement:
		c.dismissAchievement()
	}
}

func (c *Controller) setPhase(p Phase) {
	old := c.state.Phase
	c.state.Phase = p
	c.log.Debug("phase change", "from", old, "to", p,
		"epoch", c.state.Epoch, "run", c.state.RunID)
}

func (c *Controller) alloc() EntityID {
	c.nextID++
	return c.nextID
}

func (c *Controller) destroy(id *EntityID) {
	if *id == 0 {
		return
	}
	c.p.KillTweens(*id)
	c.p.Destroy(*id)
	*id = 0
}

func (c *Controller) stopCountdown() {
	if c.countdown != 0 {
		c.p.Cancel(c.countdown)
		c.countdown = 0
	}
}

// teardownWorld destroys the playfield: demons, coin, counters and any
// overlay. The background survives restarts.
func (c *Controller) teardownWorld() {
	c.stopCountdown()
	for _, d := range c.state.Demons {
		c.destroy(&d.ID)
	}
	c.state.Demons = c.state.Demons[:0]
	c.state.Dragged = nil
	for _, id := range []*EntityID{
		&c.ui.coin, &c.ui.light, &c.ui.counter, &c.ui.clock,
		&c.ui.button, &c.ui.message, &c.ui.prompt,
		&c.ui.overlay, &c.ui.trophy, &c.ui.fireworks,
	} {
		c.destroy(id)
	}
	c.buttonBusy = false
}

func (c *Controller) newRun() {
	c.state.RunID = uuid.NewString()
}

// --- Intro ---

func (c *Controller) showIntro() {
	c.teardownWorld()
	c.destroy(&c.ui.intro)
	c.destroy(&c.ui.background)
	c.state.resetPlaythrough(c.tuning.GameDuration)

	w, h := c.tuning.WorldWidth, c.tuning.WorldHeight
	c.ui.intro = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.intro, Name: "intro", Kind: KindText, Text: introMessage,
		Style: TextStyle{Size: 24, Color: ColorWhite, WrapWidth: 600, Align: AlignCenter},
		X: w / 2, Y: h/2 - 50, OriginX: 0.5, OriginY: 0.5, Scale: 1, Alpha: 1, Depth: 1001,
	})
	c.ui.prompt = c.spawnPrompt(h/2 + 70)
	c.setPhase(PhaseIntro)
}

// spawnPrompt creates a blinking "PRESS ENTER" label centered at y.
func (c *Controller) spawnPrompt(y float64) EntityID {
	id := c.alloc()
	c.p.Spawn(Entity{
		ID: id, Name: "prompt", Kind: KindText, Text: promptMessage,
		Style: TextStyle{Size: 32, Color: ColorYellow, Align: AlignCenter},
		X: c.tuning.WorldWidth / 2, Y: y, OriginX: 0.5, OriginY: 0.5, Scale: 1, Alpha: 1, Depth: 1001,
	})
	c.p.Tween(id, Tween{
		Props:    []TweenProp{To(PropAlpha, 0.3)},
		Duration: 800 * time.Millisecond,
		Yoyo:     true,
		Repeat:   Forever,
	})
	return id
}

func (c *Controller) startGame() {
	c.destroy(&c.ui.intro)
	c.destroy(&c.ui.prompt)
	c.state.resetPlaythrough(c.tuning.GameDuration)
	c.newRun()

	w, h := c.tuning.WorldWidth, c.tuning.WorldHeight
	c.ui.background = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.background, Name: "background", Kind: KindSprite, Texture: TexBackground,
		X: w / 2, Y: h / 2, OriginX: 0.5, OriginY: 0.5, Scale: 1, Alpha: 1, Depth: -1000,
		FitWidth: w, FitHeight: h,
	})
	c.spawnWorld()
	c.log.Info("playthrough started", "run", c.state.RunID, "play_count", c.state.PlayCount)
	c.setPhase(PhasePlaying)
}

// spawnWorld creates the coin, light sphere, demons and counters.
func (c *Controller) spawnWorld() {
	t := c.tuning
	w, h := t.WorldWidth, t.WorldHeight

	c.coinX, c.coinY = w/2, h*0.15
	c.ui.coin = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.coin, Name: "coin", Kind: KindSprite, Texture: TexCoin,
		X: c.coinX, Y: c.coinY, OriginX: 0.5, OriginY: 0.5, Scale: t.CoinScale, Alpha: 1,
	})
	c.p.Tween(c.ui.coin, Tween{
		Props:    []TweenProp{FromTo(PropY, c.coinY-t.CoinBob, c.coinY+t.CoinBob)},
		Duration: 1200 * time.Millisecond,
		Ease:     EaseInOutSine,
		Yoyo:     true,
		Repeat:   Forever,
	})

	c.ui.light = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.light, Name: "light", Kind: KindCircle,
		X: c.coinX, Y: c.coinY, Scale: 1, Color: ColorWhite, Depth: -1,
	})

	homeY := h - 5
	for i := 0; i < t.DemonCount; i++ {
		x := w * (0.15 + float64(i)*0.08)
		tex := TexDemon
		if i%2 == 1 {
			tex = TexDemonAlt
		}
		d := &Demon{
			ID: c.alloc(), Index: i,
			X: x, Y: homeY, HomeX: x, HomeY: homeY,
			Scale: t.DemonScale,
		}
		c.p.Spawn(Entity{
			ID: d.ID, Name: "demon", Kind: KindSprite, Texture: tex,
			X: x, Y: homeY, OriginX: 0.5, OriginY: 1, Scale: t.DemonScale, Alpha: 1,
			Interactive: true,
		})
		c.state.Demons = append(c.state.Demons, d)
		c.dance(d)
	}

	label := TextStyle{Size: 18, Color: ColorWhite}
	c.ui.counter = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.counter, Name: "counter", Kind: KindText, Text: c.counterText(),
		Style: label, X: 20, Y: 20, Scale: 1, Alpha: 1, Depth: 900,
	})
	c.ui.clock = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.clock, Name: "clock", Kind: KindText, Text: timeText("Time", c.state.TimeLeft),
		Style: label, X: w - 20, Y: 20, OriginX: 1, Scale: 1, Alpha: 1, Depth: 900,
	})
}

// --- Reveal, restart, achievement ---

func (c *Controller) revealDue(ev Event) {
	s := &c.state
	if ev.Gen != s.Epoch || s.Phase != PhasePlaying || !s.UltraActivated {
		return
	}
	idx := min(s.PlayCount, MaxPlayCount-1)
	s.RevealIndex = idx

	w, h := c.tuning.WorldWidth, c.tuning.WorldHeight
	c.ui.message = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.message, Name: "knowledge", Kind: KindText, Text: KnowledgeMessages[idx],
		Style: TextStyle{Size: 24, Color: ColorWhite, WrapWidth: 600, Align: AlignCenter},
		X: w / 2, Y: h/2 - 50, OriginX: 0.5, OriginY: 0.5, Scale: 1, Alpha: 1, Depth: 1001,
	})
	c.ui.prompt = c.spawnPrompt(h/2 + revealPromptOffsets[idx])
	c.log.Info("knowledge revealed", "index", idx, "run", s.RunID)
	c.setPhase(PhaseReveal)
}

func (c *Controller) dismissReveal() {
	c.destroy(&c.ui.message)
	c.destroy(&c.ui.prompt)
	if c.state.PlayCount >= MaxPlayCount-1 {
		c.showAchievement()
		return
	}
	c.showRestartButton()
}

func (c *Controller) showRestartButton() {
	w, h := c.tuning.WorldWidth, c.tuning.WorldHeight
	c.ui.button = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.button, Name: "restart", Kind: KindSprite, Texture: TexRestart,
		X: w / 2, Y: h / 2, OriginX: 0.5, OriginY: 0.5, Alpha: 1, Depth: 1000,
		Interactive: true,
	})
	c.p.Tween(c.ui.button, Tween{
		Props:    []TweenProp{FromTo(PropScale, 0, c.tuning.ButtonScale)},
		Duration: 600 * time.Millisecond,
		Ease:     EaseOutElastic,
	})
	c.buttonBusy = false
	c.setPhase(PhaseRestartPrompt)
}

func (c *Controller) hover(ev Event, over bool) {
	if c.state.Phase != PhaseRestartPrompt || c.buttonBusy || ev.Target == 0 || ev.Target != c.ui.button {
		return
	}
	scale := c.tuning.ButtonScale
	if over {
		scale *= 1.1
	}
	c.p.KillTweens(c.ui.button)
	c.p.Tween(c.ui.button, Tween{
		Props:    []TweenProp{To(PropScale, scale)},
		Duration: 100 * time.Millisecond,
		Ease:     EaseOutSine,
	})
}

func (c *Controller) pressButton() {
	if c.buttonBusy {
		return
	}
	c.buttonBusy = true
	c.p.KillTweens(c.ui.button)
	c.p.Tween(c.ui.button, Tween{
		Props:    []TweenProp{To(PropScale, c.tuning.ButtonScale*0.9)},
		Duration: 80 * time.Millisecond,
		Ease:     EaseInBack,
		Done:     &Event{Kind: EventButtonSquashed, Target: c.ui.button, Gen: c.state.Epoch},
	})
}

func (c *Controller) buttonSquashed(ev Event) {
	if ev.Gen != c.state.Epoch || c.state.Phase != PhaseRestartPrompt || ev.Target != c.ui.button {
		return
	}
	c.p.Tween(c.ui.button, Tween{
		Props:    []TweenProp{To(PropScale, c.tuning.ButtonScale*1.1)},
		Duration: 120 * time.Millisecond,
		Ease:     EaseOutElastic,
		Done:     &Event{Kind: EventButtonBounced, Target: c.ui.button, Gen: c.state.Epoch},
	})
}

func (c *Controller) buttonBounced(ev Event) {
	if ev.Gen != c.state.Epoch || c.state.Phase != PhaseRestartPrompt || ev.Target != c.ui.button {
		return
	}
	c.restart()
}

// restart tears down the playfield and begins the next playthrough.
func (c *Controller) restart() {
	c.teardownWorld()
	c.state.resetPlaythrough(c.tuning.GameDuration)
	c.state.PlayCount = min(c.state.PlayCount+1, MaxPlayCount)
	c.newRun()
	c.spawnWorld()
	c.log.Info("playthrough restarted", "run", c.state.RunID, "play_count", c.state.PlayCount)
	c.setPhase(PhasePlaying)
}

func (c *Controller) showAchievement() {
	t := c.tuning
	w, h := t.WorldWidth, t.WorldHeight

	c.ui.overlay = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.overlay, Name: "overlay", Kind: KindRect,
		Width: w * 2, Height: h * 2, Scale: 1, Color: ColorBlack, Alpha: 0.8, Depth: 1000,
	})
	c.ui.trophy = c.alloc()
	c.p.Spawn(Entity{
		ID: c.ui.trophy, Name: "achievement", Kind: KindText, Text: achievementMessage,
		Style: TextStyle{Size: 32, Color: ColorYellow, Align: AlignCenter, Stroke: ColorBlack, StrokeWidth: 4},
		X: w / 2, Y: h/2 - 50, OriginX: 0.5, OriginY: 0.5, Scale: 1, Alpha: 1, Depth: 1001,
	})
	c.p.PlaySound(SoundWin)

	c.ui.fireworks = c.alloc()
	c.p.Emit(Particles{
		ID:         c.ui.fireworks,
		Texture:    TexCoin,
		X:          Range{Min: 100, Max: w - 100},
		Y:          h + 50,
		SpeedX:     Range{Min: -100, Max: 100},
		SpeedY:     Range{Min: -800, Max: -400},
		StartScale: 0.5,
		GravityY:   200,
		Lifetime:   2 * time.Second,
		Quantity:   5,
		Interval:   300 * time.Millisecond,
		Additive:   true,
		Depth:      1000,
	})
	c.ui.prompt = c.spawnPrompt(h/2 + 100)
	c.log.Info("achievement unlocked", "run", c.state.RunID)
	c.setPhase(PhaseAchievement)
}

func (c *Controller) dismissAchievement() {
	c.state.PlayCount = 0
	c.showIntro()
}

func (c *Controller) assetFailed(ev Event) {
	var ae *AssetLoadError
	if errors.As(ev.Err, &ae) {
		c.log.Warn("asset load failed", "name", ae.Name, "path", ae.Path, "err", ae.Err)
		return
	}
	c.log.Warn("asset load failed", "err", ev.Err)
}
