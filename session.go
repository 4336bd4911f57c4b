package demoncoin

import "fmt"

// Phase is the coarse play-session state; it decides which UI is visible and
// which inputs are accepted.
type Phase uint8

const (
	PhaseIntro         Phase = iota // waiting for the first confirmation
	PhasePlaying                    // dragging demons; ultra may be active
	PhaseReveal                     // knowledge message RevealIndex is shown
	PhaseRestartPrompt              // restart control is visible
	PhaseAchievement                // achievement overlay after the third reveal
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseReveal:
		return "reveal"
	case PhaseRestartPrompt:
		return "restart-prompt"
	case PhaseAchievement:
		return "achievement"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// MaxPlayCount is the number of reveals in a full cycle.
const MaxPlayCount = 3

// Demon is one draggable sprite. Home is fixed at spawn.
type Demon struct {
	ID     EntityID
	Index  int
	X, Y   float64
	HomeX  float64
	HomeY  float64
	Scale  float64
	Angle  float64
	Hidden bool

	Captured bool
	// Gen is bumped whenever the demon's in-flight animation is cancelled.
	// Completion events scheduled under an older Gen are stale.
	Gen uint32

	// Ultra roaming.
	Roaming bool
	Dir     float64
	Speed   float64
	Wobble  float64
}

// SessionState is the single owned play-session value.
type SessionState struct {
	Phase       Phase
	RevealIndex int

	DemonsConsumed int
	TimeLeft       int
	CountdownArmed bool
	UltraActivated bool
	PlayCount      int

	Dragged *Demon
	Demons  []*Demon

	// Epoch is bumped on every playthrough boundary; timer and overlay
	// events scheduled under an older epoch are stale.
	Epoch uint32
	RunID string
}

// DemonByID returns the live demon with the given entity id.
func (s *SessionState) DemonByID(id EntityID) *Demon {
	if id == 0 {
		return nil
	}
	for _, d := range s.Demons {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// resetPlaythrough clears per-playthrough counters. PlayCount survives.
func (s *SessionState) resetPlaythrough(duration int) {
	s.DemonsConsumed = 0
	s.TimeLeft = duration
	s.CountdownArmed = false
	s.UltraActivated = false
	s.Dragged = nil
	s.Demons = s.Demons[:0]
	s.RevealIndex = 0
	s.Epoch++
}
