package ecs

import (
	"cmp"
	"image"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/mazesprite"
)

// SpriteData binds an animator to the image its frames index into.
type SpriteData struct {
	Animator *mazesprite.Animator
	Image    image.Image
	// Orient, when set, computes the draw transform from the actor state,
	// e.g. arcade.PacTransform.
	Orient func(mazesprite.ActorState) mazesprite.Transform
	// Layer orders drawing; lower layers draw first.
	Layer int
}

// PositionData is the actor's top-left corner in logical pixels.
type PositionData struct {
	X, Y float64
}

var (
	Sprite   = donburi.NewComponentType[SpriteData]()
	Position = donburi.NewComponentType[PositionData]()
	State    = donburi.NewComponentType[mazesprite.ActorState]()
)

// AnimationFinishedEvent reports that an entity's play-once animation
// reached its last frame.
type AnimationFinishedEvent struct {
	Entity    donburi.Entity
	Animation string
}

// AnimationFinished is the Donburi event type for finished animations.
var AnimationFinished = events.NewEventType[AnimationFinishedEvent]()

// NewActor creates an entity with Sprite, Position and State components.
func NewActor(w donburi.World, anim *mazesprite.Animator, img image.Image, x, y float64) donburi.Entity {
	e := w.Create(Sprite, Position, State)
	entry := w.Entry(e)
	Sprite.SetValue(entry, SpriteData{Animator: anim, Image: img})
	Position.SetValue(entry, PositionData{X: x, Y: y})
	return e
}

// Pipeline advances and draws every actor in a world.
type Pipeline struct {
	query    *donburi.Query
	done     []AnimationFinishedEvent
	drawList []drawItem
}

type drawItem struct {
	call  mazesprite.DrawCall
	layer int
}

// NewPipeline creates a pipeline over entities with Sprite and Position.
func NewPipeline() *Pipeline {
	return &Pipeline{
		query: donburi.NewQuery(filter.Contains(Sprite, Position)),
	}
}

func actorState(entry *donburi.Entry) mazesprite.ActorState {
	if entry.HasComponent(State) {
		return *State.Get(entry)
	}
	return mazesprite.ActorState{}
}

// Update advances every animator by ticks and publishes AnimationFinished for
// play-once animations that completed during the call. Events are published
// after the query finishes.
func (p *Pipeline) Update(w donburi.World, ticks int) {
	p.done = p.done[:0]
	p.query.Each(w, func(entry *donburi.Entry) {
		anim := Sprite.Get(entry).Animator
		if anim == nil {
			return
		}
		wasComplete := anim.Complete()
		anim.Advance(ticks)
		if !wasComplete && anim.Complete() {
			p.done = append(p.done, AnimationFinishedEvent{Entity: entry.Entity(), Animation: anim.Selected()})
		}
	})
	for _, ev := range p.done {
		AnimationFinished.Publish(w, ev)
	}
}

// Draw resolves every actor's current sprite and hands the draw calls to r,
// ordered by layer. Actors with nothing to draw are skipped. It returns the
// number of calls made.
func (p *Pipeline) Draw(w donburi.World, r mazesprite.Renderer) int {
	p.drawList = p.drawList[:0]
	p.query.Each(w, func(entry *donburi.Entry) {
		sp := Sprite.Get(entry)
		if sp.Animator == nil {
			return
		}
		st := actorState(entry)
		var tr mazesprite.Transform
		if sp.Orient != nil {
			tr = sp.Orient(st)
		}
		pos := Position.Get(entry)
		if call, ok := sp.Animator.DrawCall(st, sp.Image, pos.X, pos.Y, tr); ok {
			p.drawList = append(p.drawList, drawItem{call: call, layer: sp.Layer})
		}
	})
	slices.SortStableFunc(p.drawList, func(a, b drawItem) int {
		return cmp.Compare(a.layer, b.layer)
	})
	for _, it := range p.drawList {
		r.Draw(it.call)
	}
	return len(p.drawList)
}

// Tick runs one full tick: advance everything, then draw everything.
func (p *Pipeline) Tick(w donburi.World, r mazesprite.Renderer) int {
	p.Update(w, 1)
	return p.Draw(w, r)
}
