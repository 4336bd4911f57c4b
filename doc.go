// Package demoncoin is the play-session controller for a small drag-and-capture
// game: little demons are dragged up into a floating coin under a time limit,
// which unlocks an "ultra" mode and one of three knowledge reveals per
// playthrough. The third reveal unlocks an achievement screen.
//
// The package holds no engine code. A [Controller] owns the [SessionState]
// and reacts to [Event] values, issuing commands through the [Presenter]
// capability interface. Package stage implements Presenter on top of
// [Ebitengine]; package ecs routes events between the two through a
// [Donburi] world.
//
//	ctrl := demoncoin.NewController(presenter,
//		demoncoin.WithTuning(tuning),
//		demoncoin.WithLogger(logger),
//	)
//	ctrl.Start()
//	// each frame, for every queued event:
//	ctrl.Dispatch(ev)
//
// # Session flow
//
// Intro → Playing → (ultra) → Reveal → RestartPrompt → Playing ... and after
// the third reveal → Achievement → Intro. Ultra is a latch inside Playing,
// set when the capture counter reaches its threshold or the countdown ends.
//
// # Stale events
//
// Animation and timer completions arrive late and possibly after the entity
// they target is gone. Every demon carries a generation that is bumped when
// its animation is cancelled, and the session carries an epoch bumped at
// every playthrough boundary; events scheduled under an older value are
// dropped.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package demoncoin
