package stage

import (
	"fmt"
	"os"
	"time"

	"github.com/phanxgames/demoncoin"
)

// debugStats holds per-frame timing and counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	nodeCount  int
	tweenCount int
	timerCount int
	drawCount  int
}

// debugLog prints stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	if stats.drawTime > 0 || stats.drawCount > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[stage] draw: %v | nodes: %d | draw calls: %d\n",
			stats.drawTime, stats.nodeCount, stats.drawCount)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[stage] update: %v | nodes: %d | tweens: %d | timers: %d\n",
		stats.updateTime, stats.nodeCount, stats.tweenCount, stats.timerCount)
}

// debugWarn prints a warning to stderr in debug mode.
func (s *Scene) debugWarn(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[stage] warning: "+format+"\n", args...)
}

// debugUnknown warns when a command names an entity the scene does not
// hold. Completions racing a Destroy make this routine.
func (s *Scene) debugUnknown(op string, id demoncoin.EntityID) {
	s.debugWarn("%s on unknown entity %d", op, id)
}
