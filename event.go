package demoncoin

import "fmt"

// EventKind identifies what happened. Every external stimulus reaching the
// controller is one of these.
type EventKind uint8

const (
	EventConfirm        EventKind = iota // confirmation key pressed
	EventPointerDown                     // pointer pressed; Target is the hit entity or 0
	EventPointerMove                     // pointer moved
	EventPointerUp                       // pointer released
	EventPointerOver                     // pointer entered Target
	EventPointerOut                      // pointer left Target
	EventTick                            // countdown interval elapsed; Gen is the epoch
	EventFrame                           // one frame elapsed; DT is in seconds
	EventCaptureDone                     // capture tween finished; Target demon, Gen demon generation
	EventRespawnDue                      // respawn delay elapsed; Target demon, Gen demon generation
	EventLanded                          // released demon hit its floor; Target demon, Gen demon generation
	EventRevealDue                       // ultra reveal delay elapsed; Gen is the epoch
	EventPulsePeak                       // light sphere reached full size; Gen is the epoch
	EventButtonSquashed                  // restart button press-in finished; Gen is the epoch
	EventButtonBounced                   // restart button bounce-out finished; Gen is the epoch
	EventAssetFailed                     // an asset could not be loaded; Err is an *AssetLoadError
)

var eventKindNames = [...]string{
	EventConfirm:        "confirm",
	EventPointerDown:    "pointer-down",
	EventPointerMove:    "pointer-move",
	EventPointerUp:      "pointer-up",
	EventPointerOver:    "pointer-over",
	EventPointerOut:     "pointer-out",
	EventTick:           "tick",
	EventFrame:          "frame",
	EventCaptureDone:    "capture-done",
	EventRespawnDue:     "respawn-due",
	EventLanded:         "landed",
	EventRevealDue:      "reveal-due",
	EventPulsePeak:      "pulse-peak",
	EventButtonSquashed: "button-squashed",
	EventButtonBounced:  "button-bounced",
	EventAssetFailed:    "asset-failed",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// EntityID names a visual entity owned by the controller. Zero means none.
// Ids are never reused, so an event for a destroyed entity simply fails to
// resolve.
type EntityID uint32

// Event is a single input, timer or completion notification.
type Event struct {
	Kind   EventKind
	Target EntityID
	X, Y   float64 // pointer position in world units
	DT     float64 // seconds, EventFrame only
	Gen    uint32  // generation or epoch the event was scheduled under
	Err    error   // EventAssetFailed only
}

// AssetLoadError reports an image or sound that failed to load. It is the
// only failure the game surfaces; play continues without the asset.
type AssetLoadError struct {
	Name string
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
