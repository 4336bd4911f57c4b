package demoncoin

import (
	"fmt"
	"math"
	"time"
)

const (
	reasonThreshold = "threshold"
	reasonTimeout   = "timeout"
)

// --- Dragging ---

func (c *Controller) pointerDown(ev Event) {
	s := &c.state
	if s.Phase == PhaseRestartPrompt && ev.Target != 0 && ev.Target == c.ui.button {
		c.pressButton()
		return
	}
	if s.Phase != PhasePlaying || s.UltraActivated || s.Dragged != nil {
		return
	}
	d := s.DemonByID(ev.Target)
	if d == nil || d.Captured {
		return
	}
	if !s.CountdownArmed {
		c.armCountdown()
	}
	c.cancel(d)
	c.sync(d)
	s.Dragged = d
	c.p.Tween(d.ID, Tween{
		Props:    []TweenProp{FromTo(PropRotation, -25, 25)},
		Duration: 100 * time.Millisecond,
		Yoyo:     true,
		Repeat:   Forever,
	})
}

func (c *Controller) pointerMove(ev Event) {
	d := c.state.Dragged
	if d == nil || c.state.UltraActivated {
		return
	}
	d.Y = ClampDrag(ev.Y, c.tuning.DragTop, d.HomeY)
	c.p.SetPosition(d.ID, d.X, d.Y)
}

func (c *Controller) pointerUp() {
	d := c.state.Dragged
	if d == nil || c.state.UltraActivated {
		return
	}
	c.state.Dragged = nil
	_, coinY := c.coinPosition()
	if Captures(d.Y, coinY, d.HomeY, c.tuning.CaptureZone, c.tuning.LiftThreshold) {
		c.capture(d)
		return
	}
	c.release(d)
}

// cancel stops whatever the demon is doing and invalidates its pending
// completion events.
func (c *Controller) cancel(d *Demon) {
	d.Gen++
	c.p.KillTweens(d.ID)
}

// sync pulls the demon's presented position, which tweens and physics move.
func (c *Controller) sync(d *Demon) {
	if x, y, ok := c.p.Position(d.ID); ok {
		d.X, d.Y = x, y
	}
}

func (c *Controller) coinPosition() (float64, float64) {
	if x, y, ok := c.p.Position(c.ui.coin); ok {
		return x, y
	}
	return c.coinX, c.coinY
}

// dance starts the idle sway. Ultra demons never dance.
func (c *Controller) dance(d *Demon) {
	if c.state.UltraActivated {
		return
	}
	c.p.Tween(d.ID, Tween{
		Props:    []TweenProp{FromTo(PropRotation, -10, 10)},
		Duration: jitter(800, 400, c.rng.Float64()),
		Yoyo:     true,
		Repeat:   Forever,
	})
	c.p.Tween(d.ID, Tween{
		Props:    []TweenProp{FromTo(PropX, d.HomeX-8, d.HomeX+8)},
		Duration: jitter(1000, 600, c.rng.Float64()),
		Yoyo:     true,
		Repeat:   Forever,
	})
}

func jitter(baseMS, spreadMS, t float64) time.Duration {
	return time.Duration((baseMS + spreadMS*t) * float64(time.Millisecond))
}

// --- Capture and release ---

func (c *Controller) capture(d *Demon) {
	d.Captured = true
	c.cancel(d)
	c.p.SetInteractive(d.ID, false)

	c.p.KillTweens(c.ui.light)
	c.p.Tween(c.ui.light, Tween{
		Props:    []TweenProp{To(PropRadius, 100), To(PropAlpha, 0.6)},
		Duration: 300 * time.Millisecond,
		Done:     &Event{Kind: EventPulsePeak, Target: c.ui.light, Gen: c.state.Epoch},
	})

	c.p.Emit(Particles{
		Texture:    TexDemon,
		X:          Range{Min: d.X, Max: d.X},
		Y:          d.Y,
		SpeedX:     Range{Min: -60, Max: 60},
		SpeedY:     Range{Min: -60, Max: 60},
		StartScale: 0.15,
		Lifetime:   500 * time.Millisecond,
		Quantity:   5,
		Additive:   true,
	})

	cx, cy := c.coinPosition()
	c.p.Tween(d.ID, Tween{
		Props: []TweenProp{
			To(PropX, cx), To(PropY, cy),
			To(PropScale, 0.05), To(PropAlpha, 0),
			To(PropRotation, float64(c.rng.IntN(361))),
		},
		Duration: 800 * time.Millisecond,
		Done:     &Event{Kind: EventCaptureDone, Target: d.ID, Gen: d.Gen},
	})
}

func (c *Controller) pulsePeak(ev Event) {
	if ev.Gen != c.state.Epoch || c.ui.light == 0 || ev.Target != c.ui.light {
		return
	}
	c.p.Tween(c.ui.light, Tween{
		Props:    []TweenProp{To(PropRadius, 0), To(PropAlpha, 0)},
		Duration: 500 * time.Millisecond,
	})
}

func (c *Controller) captureDone(ev Event) {
	s := &c.state
	d := s.DemonByID(ev.Target)
	if d == nil || ev.Gen != d.Gen || !d.Captured || d.Hidden || s.Phase != PhasePlaying || s.UltraActivated {
		return
	}
	s.DemonsConsumed++
	c.p.SetText(c.ui.counter, c.counterText())

	if s.DemonsConsumed >= c.tuning.UltraThreshold {
		c.activateUltra(reasonThreshold)
		return
	}
	if s.CountdownArmed && s.TimeLeft <= 0 {
		c.activateUltra(reasonTimeout)
		return
	}

	d.X, d.Y = d.HomeX, d.HomeY
	d.Scale = c.tuning.DemonScale
	d.Angle = 0
	d.Hidden = true
	c.p.SetPosition(d.ID, d.X, d.Y)
	c.p.SetScale(d.ID, d.Scale)
	c.p.SetRotation(d.ID, 0)
	c.p.SetAlpha(d.ID, 0)
	c.p.After(c.tuning.RespawnDelay, Event{Kind: EventRespawnDue, Target: d.ID, Gen: d.Gen})
}

func (c *Controller) respawn(ev Event) {
	s := &c.state
	d := s.DemonByID(ev.Target)
	if d == nil || ev.Gen != d.Gen || !d.Captured || s.UltraActivated || s.Phase != PhasePlaying {
		return
	}
	d.Captured = false
	d.Hidden = false
	c.p.SetAlpha(d.ID, 1)
	c.p.SetInteractive(d.ID, true)
	c.dance(d)
}

func (c *Controller) release(d *Demon) {
	c.cancel(d)
	d.Angle = 0
	c.p.SetRotation(d.ID, 0)
	c.p.Drop(d.ID, d.HomeY, Event{Kind: EventLanded, Target: d.ID, Gen: d.Gen})
}

func (c *Controller) landed(ev Event) {
	d := c.state.DemonByID(ev.Target)
	if d == nil || ev.Gen != d.Gen {
		return
	}
	c.sync(d)
	d.Y = d.HomeY
	c.p.SetPosition(d.ID, d.X, d.Y)
	c.dance(d)
}

// --- Countdown ---

func (c *Controller) armCountdown() {
	s := &c.state
	s.CountdownArmed = true
	s.TimeLeft = c.tuning.GameDuration
	c.countdown = c.p.Every(c.tuning.TickInterval, Event{Kind: EventTick, Gen: s.Epoch})
}

func (c *Controller) tick(ev Event) {
	s := &c.state
	if ev.Gen != s.Epoch || !s.CountdownArmed || s.UltraActivated || s.Phase != PhasePlaying {
		return
	}
	s.TimeLeft--
	c.p.SetText(c.ui.clock, timeText("Time Left", s.TimeLeft))
	if s.TimeLeft <= 0 {
		c.activateUltra(reasonTimeout)
	}
}

// --- Ultra ---

// activateUltra latches ultra mode: dragging stops, the coin glows and every
// demon starts roaming. The reveal follows after RevealDelay.
func (c *Controller) activateUltra(reason string) {
	s := &c.state
	if s.UltraActivated {
		return
	}
	s.UltraActivated = true
	s.Dragged = nil
	c.stopCountdown()

	c.p.SetTexture(c.ui.coin, TexCoinUltra)
	c.p.PlaySound(SoundWin)

	for _, d := range s.Demons {
		c.cancel(d)
		c.sync(d)
		d.Scale = c.tuning.UltraDemonScale
		d.Hidden = false
		d.Roaming = true
		d.Dir = 1
		if c.rng.IntN(2) == 0 {
			d.Dir = -1
		}
		d.Speed = c.tuning.RoamSpeed.Lerp(c.rng.Float64())
		d.Wobble = c.rng.Float64() * 2 * math.Pi
		c.p.SetScale(d.ID, d.Scale)
		c.p.SetAlpha(d.ID, 1)
		c.p.SetInteractive(d.ID, false)
		c.p.Tween(d.ID, Tween{
			Props:    []TweenProp{FromTo(PropRotation, -20, 20)},
			Duration: 300 * time.Millisecond,
			Yoyo:     true,
			Repeat:   Forever,
		})
	}

	c.p.After(c.tuning.RevealDelay, Event{Kind: EventRevealDue, Gen: s.Epoch})
	c.log.Info("ultra activated", "reason", reason,
		"consumed", s.DemonsConsumed, "time_left", max(0, s.TimeLeft), "run", s.RunID)
}

// frame advances per-frame motion: the light sphere tracks the coin and
// ultra demons roam.
func (c *Controller) frame(dt float64) {
	if c.ui.coin == 0 {
		return
	}
	x, y := c.coinPosition()
	c.p.SetPosition(c.ui.light, x, y)

	if !c.state.UltraActivated {
		return
	}
	t := c.tuning
	for _, d := range c.state.Demons {
		if !d.Roaming {
			continue
		}
		Roam(d, dt, t.WorldWidth, t.RoamMargin, t.BobAmplitude, t.BobFrequency)
		c.p.SetPosition(d.ID, d.X, d.Y)
	}
}

func (c *Controller) counterText() string {
	return fmt.Sprintf("Demons: %d/%d", c.state.DemonsConsumed, c.tuning.UltraThreshold)
}

func timeText(label string, left int) string {
	return fmt.Sprintf("%s: %ds", label, max(0, left))
}
