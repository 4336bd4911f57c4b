package demoncoin

import "time"

// Presenter is the set of engine capabilities the controller drives. The
// controller decides; the presenter only draws, animates, plays and times.
// Implementations deliver completion and timer events back through
// Controller.Dispatch, never synchronously from inside a Presenter call.
type Presenter interface {
	Spawn(e Entity)
	Destroy(id EntityID)

	SetText(id EntityID, text string)
	SetTexture(id EntityID, texture string)
	SetVisible(id EntityID, visible bool)
	SetInteractive(id EntityID, interactive bool)
	SetAlpha(id EntityID, alpha float64)
	SetPosition(id EntityID, x, y float64)
	SetRotation(id EntityID, degrees float64)
	SetScale(id EntityID, scale float64)

	// Position reports the entity's current position, including any motion
	// applied by tweens or physics. ok is false for unknown entities.
	Position(id EntityID) (x, y float64, ok bool)

	// Tween starts animating properties of id. A finite tween with a non-nil
	// Done delivers that event once it completes.
	Tween(id EntityID, tw Tween)
	// KillTweens stops every tween and gravity fall on id without firing
	// their completion events.
	KillTweens(id EntityID)
	// Drop lets id fall under gravity until its y reaches floorY, then
	// delivers landed.
	Drop(id EntityID, floorY float64, landed Event)

	Emit(p Particles)
	PlaySound(name string)

	After(d time.Duration, ev Event) TimerID
	Every(d time.Duration, ev Event) TimerID
	Cancel(id TimerID)
}

// TimerID names a scheduled delayed or repeating call. Zero means none.
type TimerID uint32

// EntityKind selects how an entity is drawn.
type EntityKind uint8

const (
	KindSprite EntityKind = iota // textured image
	KindText                     // text block
	KindRect                     // solid rectangle
	KindCircle                   // solid circle, additive
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// TextAlign controls horizontal alignment of wrapped text.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a KindText entity renders.
type TextStyle struct {
	Size        float64
	Color       Color
	WrapWidth   float64
	Align       TextAlign
	Stroke      Color
	StrokeWidth float64
}

// Entity is the full description of a visual entity at spawn time.
type Entity struct {
	ID      EntityID
	Name    string
	Kind    EntityKind
	Texture string
	Text    string
	Style   TextStyle

	X, Y             float64
	Scale            float64
	OriginX, OriginY float64 // normalized anchor, 0.5 is centered
	Width, Height    float64 // KindRect
	Radius           float64 // KindCircle
	Color            Color
	Alpha            float64
	Depth            int

	Hidden      bool
	Interactive bool
	// FitWidth and FitHeight stretch a sprite to an exact display size.
	FitWidth, FitHeight float64
}

// Prop is an animatable entity property.
type Prop uint8

const (
	PropX Prop = iota
	PropY
	PropScale
	PropAlpha
	PropRotation // degrees
	PropRadius
)

// Ease names an easing curve.
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseInOutSine
	EaseOutSine
	EaseOutElastic
	EaseInBack
)

// TweenProp animates one property. When HasFrom is false the tween starts at
// the property's current value.
type TweenProp struct {
	Prop    Prop
	From    float64
	To      float64
	HasFrom bool
}

// To returns a TweenProp animating from the current value to v.
func To(p Prop, v float64) TweenProp {
	return TweenProp{Prop: p, To: v}
}

// FromTo returns a TweenProp animating from a to b.
func FromTo(p Prop, a, b float64) TweenProp {
	return TweenProp{Prop: p, From: a, To: b, HasFrom: true}
}

// Forever is the Repeat value for a tween that never ends.
const Forever = -1

// Tween describes a property animation.
type Tween struct {
	Props    []TweenProp
	Duration time.Duration
	Ease     Ease
	Yoyo     bool
	Repeat   int // extra cycles after the first; Forever loops
	Done     *Event
}

// Particles describes a particle effect. Interval zero emits a single burst;
// otherwise Quantity particles are emitted every Interval until the emitter
// entity ID is destroyed.
type Particles struct {
	ID         EntityID
	Texture    string
	X          Range // spawn x range
	Y          float64
	SpeedX     Range
	SpeedY     Range
	StartScale float64
	EndScale   float64
	GravityY   float64
	Lifetime   time.Duration
	Quantity   int
	Interval   time.Duration
	Additive   bool
	Depth      int
}

// Texture and sound names the controller refers to. Loaders map these to
// files through Assets.
const (
	TexCoin       = "notcoin"
	TexCoinUltra  = "notcoin_ultra"
	TexDemon      = "demon"
	TexDemonAlt   = "demon1"
	TexBackground = "background"
	TexRestart    = "restartButton"
	SoundWin      = "win"
)

// AssetManifest maps asset names to paths relative to the asset directory.
type AssetManifest struct {
	Images map[string]string
	Sounds map[string]string
}

// Assets is the stock manifest.
var Assets = AssetManifest{
	Images: map[string]string{
		TexCoin:       "notcoin.png",
		TexCoinUltra:  "notcoin ultra.png",
		TexDemon:      "demon.png",
		TexDemonAlt:   "demon1.png",
		TexBackground: "background.png",
		TexRestart:    "restartButton.png",
	},
	Sounds: map[string]string{
		SoundWin: "sounds/win.wav",
	},
}
