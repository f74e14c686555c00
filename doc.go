// Package mazesprite is the sprite core of a 2D arcade maze game built on
// [Ebitengine].
//
// It covers the three pieces that sit between game rules and the screen:
// locating sprites in an atlas image, recoloring palette-painted art, and
// playing per-actor animations. Everything else (windows, scenes, input,
// audio) stays with the caller, which feeds actor state in and receives
// [DrawCall] values out.
//
// # Atlas
//
// An [Atlas] maps IDs from a closed set to pixel rectangles in one source
// image. Register everything at load time, then prove the set complete:
//
//	atlas := mazesprite.NewAtlas[SpriteID](sheet)
//	atlas.Register(GhostRedRight, mazesprite.Rect(0, 64, 16, 16), mazesprite.Rect(16, 64, 16, 16))
//	if err := atlas.CheckCompleteness(AllSpriteIDs()); err != nil {
//		log.Fatal(err) // names every missing ID
//	}
//
// Lookups of unregistered IDs panic with [*LookupError]; they are defects,
// not runtime conditions. TexturePacker/Pixi JSON loads with [LoadAtlas].
//
// # Recoloring
//
// [Substitute] swaps the three colors of a [Palette] for another palette's,
// exact match only. [RecolorCache] memoizes it per (category, variant,
// palette), returns passthrough results when no recolor is needed, bounds
// retention with an LRU and must be disposed at the end of a session:
//
//	cache := mazesprite.NewRecolorCache(theme.CacheConfig())
//	defer cache.Dispose()
//	maze := cache.GetOrCreate(key, mazeRegion, sourcePalette)
//
// # Animation
//
// An [AnimationSet] holds the [AnimationDef] values of one actor kind. Each
// actor owns an [Animator]: Select an animation by name, Advance it by game
// ticks, and ask for CurrentSprite with the actor's [ActorState]. A
// [FrameResolver] swaps in direction-specific frames without resetting the
// frame index:
//
//	anim := mazesprite.NewAnimator(ghostSet, ghostFrames)
//	anim.Select("normal")
//	anim.Advance(1)
//	if r, ok := anim.CurrentSprite(state); ok {
//		renderer.Draw(mazesprite.DrawCall{Image: sheet, Src: r, X: x, Y: y})
//	}
//
// Within a tick, advance every actor before drawing any of them; the ecs
// subpackage's Pipeline does this for [Donburi] worlds.
//
// # Debugging
//
// [SetDebugMode] prints cache, atlas and animator diagnostics to stderr.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package mazesprite
