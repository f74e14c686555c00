// Package ecs runs mazesprite animators inside a [Donburi] world.
//
// Actors are entities carrying a [Sprite], a [Position] and, optionally, an
// [State] component. A [Pipeline] advances every actor's animator and only
// then draws them all, so every actor renders the same tick:
//
//	pipe := ecs.NewPipeline()
//	e := ecs.NewActor(world, anim, sheet, 104, 212)
//	...
//	pipe.Update(world, 1)
//	pipe.Draw(world, renderer)
//
// Play-once animations publish [AnimationFinished] when they reach their last
// frame. Subscribe in your systems and drain with ProcessEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
