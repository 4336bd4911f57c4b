// Package stage is the Ebitengine presentation layer for demoncoin.
//
// A [Scene] holds a flat list of [Node] values (sprites, text, rectangles,
// circles and particle emitters) drawn in ZIndex order. It advances gween
// tweens, gravity falls, particles and frame-clock timers each Update, and
// turns pointer and keyboard input into demoncoin events posted to a
// [Sink]. A [Stage] implements demoncoin.Presenter on top of a Scene, and
// [Game] adapts it to ebiten.Game.
//
//	queue := ecs.NewQueue(donburi.NewWorld())
//	scene := stage.NewScene(queue)
//	scene.SetInput(&stage.EbitenInput{})
//	st := stage.NewStage(scene, stage.StageConfig{Font: font, Assets: assets})
//	ctrl := demoncoin.NewController(st)
//
// Nothing in the package calls back into the controller directly: every
// completion travels through the Sink, so it is handled after the Presenter
// call that caused it has returned.
//
// # Input injection
//
// InjectPress, InjectMove, InjectRelease, InjectDrag and InjectConfirm queue
// synthetic input that replaces real input for one frame each. Tests and
// automated play use them to drive the full game without a window.
package stage
