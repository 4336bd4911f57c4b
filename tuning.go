package demoncoin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every error returned from Tuning.Validate.
var ErrInvalidTuning = errors.New("invalid tuning")

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp returns the value at t in [0, 1] between Min and Max.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// Tuning holds every gameplay constant. The zero value is not usable; start
// from DefaultTuning.
type Tuning struct {
	// World size in world units.
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`

	DemonCount     int           `yaml:"demon_count"`
	UltraThreshold int           `yaml:"ultra_threshold"`
	GameDuration   int           `yaml:"game_duration"` // seconds
	CaptureZone    float64       `yaml:"capture_zone"`
	LiftThreshold  float64       `yaml:"lift_threshold"` // drag this far above home to capture
	DragTop        float64       `yaml:"drag_top"`
	TickInterval   time.Duration `yaml:"tick_interval"`
	RevealDelay    time.Duration `yaml:"reveal_delay"`
	RespawnDelay   time.Duration `yaml:"respawn_delay"`

	CoinScale       float64 `yaml:"coin_scale"`
	CoinBob         float64 `yaml:"coin_bob"`
	DemonScale      float64 `yaml:"demon_scale"`
	UltraDemonScale float64 `yaml:"ultra_demon_scale"`
	ButtonScale     float64 `yaml:"button_scale"`

	RoamMargin   float64 `yaml:"roam_margin"`
	RoamSpeed    Range   `yaml:"roam_speed"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency"`
	Gravity      float64 `yaml:"gravity"`
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		WorldWidth:      800,
		WorldHeight:     600,
		DemonCount:      10,
		UltraThreshold:  100,
		GameDuration:    60,
		CaptureZone:     30,
		LiftThreshold:   30,
		DragTop:         50,
		TickInterval:    time.Second,
		RevealDelay:     1500 * time.Millisecond,
		RespawnDelay:    2 * time.Second,
		CoinScale:       0.3,
		CoinBob:         25,
		DemonScale:      0.2,
		UltraDemonScale: 0.1,
		ButtonScale:     400.0 / 630.0,
		RoamMargin:      50,
		RoamSpeed:       Range{Min: 100, Max: 200},
		BobAmplitude:    30,
		BobFrequency:    0.02,
		Gravity:         400,
	}
}

// Validate reports every inconsistent field at once.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}
	check(t.WorldWidth > 2*t.RoamMargin, "world_width %.0f must exceed twice roam_margin %.0f", t.WorldWidth, t.RoamMargin)
	check(t.WorldHeight > t.DragTop, "world_height %.0f must exceed drag_top %.0f", t.WorldHeight, t.DragTop)
	check(t.DemonCount > 0, "demon_count %d must be positive", t.DemonCount)
	check(t.UltraThreshold > 0, "ultra_threshold %d must be positive", t.UltraThreshold)
	check(t.GameDuration > 0, "game_duration %d must be positive", t.GameDuration)
	check(t.CaptureZone > 0, "capture_zone %.2f must be positive", t.CaptureZone)
	check(t.TickInterval > 0, "tick_interval must be positive")
	check(t.RevealDelay >= 0, "reveal_delay must not be negative")
	check(t.RespawnDelay >= 0, "respawn_delay must not be negative")
	check(t.RoamSpeed.Min > 0 && t.RoamSpeed.Min <= t.RoamSpeed.Max,
		"roam_speed [%.0f, %.0f] must be positive and ordered", t.RoamSpeed.Min, t.RoamSpeed.Max)
	check(t.DemonScale > 0 && t.UltraDemonScale > 0 && t.CoinScale > 0, "scales must be positive")
	return errors.Join(errs...)
}

// LoadTuning reads a YAML tuning document on top of DefaultTuning. Keys that
// are absent keep their default.
func LoadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuningFile is LoadTuning for a path. An empty path yields the defaults.
func LoadTuningFile(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()
	return LoadTuning(f)
}
