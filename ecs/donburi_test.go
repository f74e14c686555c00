package ecs

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/mazesprite"
)

var testImage = image.NewNRGBA(image.Rect(0, 0, 64, 64))

func testSet(t *testing.T) *mazesprite.AnimationSet {
	t.Helper()
	set, err := mazesprite.NewAnimationSet(
		mazesprite.AnimationDef{Name: "walk", FrameTicks: 1, Loop: true, Frames: []mazesprite.SpriteRect{
			mazesprite.Rect(0, 0, 16, 16), mazesprite.Rect(16, 0, 16, 16),
		}},
		mazesprite.AnimationDef{Name: "die", FrameTicks: 1, Frames: []mazesprite.SpriteRect{
			mazesprite.Rect(0, 16, 16, 16), mazesprite.Rect(16, 16, 16, 16),
		}},
	)
	require.NoError(t, err)
	return set
}

func newAnimator(t *testing.T, name string) *mazesprite.Animator {
	a := mazesprite.NewAnimator(testSet(t), nil)
	a.Select(name)
	return a
}

func collect(calls *[]mazesprite.DrawCall) mazesprite.Renderer {
	return mazesprite.RendererFunc(func(c mazesprite.DrawCall) {
		*calls = append(*calls, c)
	})
}

func TestNewActor(t *testing.T) {
	world := donburi.NewWorld()
	anim := newAnimator(t, "walk")
	e := NewActor(world, anim, testImage, 8, 24)

	entry := world.Entry(e)
	assert.Same(t, anim, Sprite.Get(entry).Animator)
	assert.Equal(t, PositionData{X: 8, Y: 24}, *Position.Get(entry))
	assert.Equal(t, mazesprite.ActorState{}, *State.Get(entry))
}

func TestPipeline_AdvancesAllBeforeDrawing(t *testing.T) {
	world := donburi.NewWorld()
	anims := []*mazesprite.Animator{newAnimator(t, "walk"), newAnimator(t, "walk"), newAnimator(t, "walk")}
	for i, a := range anims {
		NewActor(world, a, testImage, float64(i*16), 0)
	}

	pipe := NewPipeline()
	drawn := 0
	r := mazesprite.RendererFunc(func(c mazesprite.DrawCall) {
		for i, a := range anims {
			assert.Equal(t, 1, a.Index(), "animator %d not advanced before draw %d", i, drawn)
		}
		drawn++
	})
	assert.Equal(t, 3, pipe.Tick(world, r))
	assert.Equal(t, 3, drawn)
}

func TestPipeline_SkipsNothingToDraw(t *testing.T) {
	world := donburi.NewWorld()
	NewActor(world, newAnimator(t, "walk"), testImage, 0, 0)
	hidden := NewActor(world, newAnimator(t, "walk"), testImage, 16, 0)
	NewActor(world, mazesprite.NewAnimator(testSet(t), nil), testImage, 32, 0) // nothing selected

	State.SetValue(world.Entry(hidden), mazesprite.ActorState{Hidden: true})

	var calls []mazesprite.DrawCall
	n := NewPipeline().Draw(world, collect(&calls))
	assert.Equal(t, 1, n)
	require.Len(t, calls, 1)
	assert.Equal(t, 0.0, calls[0].X)
}

func TestPipeline_DrawsWithoutStateComponent(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(Sprite, Position)
	entry := world.Entry(e)
	Sprite.SetValue(entry, SpriteData{Animator: newAnimator(t, "walk"), Image: testImage})
	Position.SetValue(entry, PositionData{X: 3, Y: 4})

	var calls []mazesprite.DrawCall
	NewPipeline().Draw(world, collect(&calls))
	require.Len(t, calls, 1)
	assert.Equal(t, mazesprite.Rect(0, 0, 16, 16), calls[0].Src)
	assert.Equal(t, 3.0, calls[0].X)
	assert.Equal(t, 4.0, calls[0].Y)
}

func TestPipeline_LayersAndOrient(t *testing.T) {
	world := donburi.NewWorld()
	top := NewActor(world, newAnimator(t, "walk"), testImage, 1, 0)
	NewActor(world, newAnimator(t, "walk"), testImage, 2, 0)

	entry := world.Entry(top)
	sp := Sprite.Get(entry)
	sp.Layer = 1
	sp.Orient = func(st mazesprite.ActorState) mazesprite.Transform {
		return st.Moving.TransformFrom(mazesprite.Right)
	}
	State.SetValue(entry, mazesprite.ActorState{Moving: mazesprite.Left})

	var calls []mazesprite.DrawCall
	NewPipeline().Draw(world, collect(&calls))
	require.Len(t, calls, 2)
	assert.Equal(t, 2.0, calls[0].X, "layer 0 draws first")
	assert.Equal(t, 1.0, calls[1].X)
	assert.Equal(t, mazesprite.Transform{FlipH: true}, calls[1].Transform)
	assert.True(t, calls[0].Transform.Identity())
}

func TestPipeline_AnimationFinishedPublishedOnce(t *testing.T) {
	world := donburi.NewWorld()
	dying := NewActor(world, newAnimator(t, "die"), testImage, 0, 0)
	NewActor(world, newAnimator(t, "walk"), testImage, 16, 0)

	var got []AnimationFinishedEvent
	AnimationFinished.Subscribe(world, func(w donburi.World, e AnimationFinishedEvent) {
		got = append(got, e)
	})

	pipe := NewPipeline()
	for i := 0; i < 5; i++ {
		pipe.Update(world, 1)
		events.ProcessAllEvents(world)
	}
	require.Len(t, got, 1)
	assert.Equal(t, dying, got[0].Entity)
	assert.Equal(t, "die", got[0].Animation)

	// Restarting the animation lets it finish again.
	Sprite.Get(world.Entry(dying)).Animator.Reset()
	for i := 0; i < 3; i++ {
		pipe.Update(world, 1)
	}
	AnimationFinished.ProcessEvents(world)
	assert.Len(t, got, 2)
}
