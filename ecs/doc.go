// Package ecs routes demoncoin events through a [Donburi] world.
//
// A [Queue] collects events posted by the stage (input, timers, animation
// completions) during a frame and publishes them to [EventType] on Flush.
// Subscribers, usually the session controller, receive them in post order.
//
// Usage:
//
//	world := donburi.NewWorld()
//	queue := ecs.NewQueue(world)
//	queue.Subscribe(ctrl)
//	// once per frame, after the stage has updated:
//	queue.Flush()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
