package mazesprite

import (
	"errors"
	"fmt"
)

// AnimationDef is a named frame sequence. FrameTicks is the number of game
// loop ticks each frame stays on screen. A looping animation wraps from its
// last frame to the first; a play-once animation holds its last frame.
type AnimationDef struct {
	Name       string
	Frames     []SpriteRect
	FrameTicks int
	Loop       bool
}

// AnimationSet holds the animation definitions shared by every actor of one
// kind. It is read-only after construction.
type AnimationSet struct {
	defs  map[string]*AnimationDef
	names []string
}

// NewAnimationSet validates defs and returns a set holding them. Every
// problem found (empty name, duplicate name, no frames, malformed frame,
// non-positive FrameTicks) is reported in the returned error.
func NewAnimationSet(defs ...AnimationDef) (*AnimationSet, error) {
	s := &AnimationSet{defs: make(map[string]*AnimationDef, len(defs))}
	var errs []error
	for i := range defs {
		d := defs[i]
		switch {
		case d.Name == "":
			errs = append(errs, fmt.Errorf("animation %d has no name", i))
			continue
		case s.defs[d.Name] != nil:
			errs = append(errs, fmt.Errorf("animation %q defined twice", d.Name))
			continue
		}
		if len(d.Frames) == 0 {
			errs = append(errs, fmt.Errorf("animation %q has no frames", d.Name))
		}
		for j, r := range d.Frames {
			if !r.Valid() {
				errs = append(errs, fmt.Errorf("animation %q frame %d: malformed rectangle %v", d.Name, j, r))
			}
		}
		if d.FrameTicks <= 0 {
			errs = append(errs, fmt.Errorf("animation %q: frame ticks must be positive, got %d", d.Name, d.FrameTicks))
		}
		d.Frames = append([]SpriteRect(nil), d.Frames...)
		s.defs[d.Name] = &d
		s.names = append(s.names, d.Name)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("mazesprite: invalid animation set: %w", errors.Join(errs...))
	}
	return s, nil
}

// MustAnimationSet is like NewAnimationSet but panics on error.
func MustAnimationSet(defs ...AnimationDef) *AnimationSet {
	s, err := NewAnimationSet(defs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Def returns the definition for name. An unknown name panics with
// *LookupError.
func (s *AnimationSet) Def(name string) *AnimationDef {
	d, ok := s.defs[name]
	if !ok {
		panic(&LookupError{Kind: "animation", Name: name})
	}
	return d
}

// Has reports whether the set defines name.
func (s *AnimationSet) Has(name string) bool {
	_, ok := s.defs[name]
	return ok
}

// Names returns the animation names in definition order.
func (s *AnimationSet) Names() []string {
	return append([]string(nil), s.names...)
}

// FrameResolver rewrites an animation's frame list from the owning actor's
// transient state, e.g. to pick the sprite row for the current facing
// direction. It must return a list of the same length as def.Frames or the
// caller will see "nothing to draw" for indices past its end. Returning nil
// keeps def.Frames.
type FrameResolver func(def *AnimationDef, state ActorState) []SpriteRect

// Animator is the per-actor animation state: which animation is selected,
// the current frame index, and the ticks spent in that frame. Transitions
// between animations only happen through Select; nothing auto-advances from
// one animation to another.
type Animator struct {
	set      *AnimationSet
	resolver FrameResolver

	selected *AnimationDef
	frames   []SpriteRect // resolved frame list for the current actor state
	index    int
	elapsed  int
	running  bool
	complete bool
}

// NewAnimator creates an animator over set. resolver may be nil when the
// actor kind has no state-dependent frames.
func NewAnimator(set *AnimationSet, resolver FrameResolver) *Animator {
	return &Animator{set: set, resolver: resolver}
}

// Set returns the animation set the animator plays from.
func (a *Animator) Set() *AnimationSet {
	return a.set
}

// Select switches to the named animation and restarts it from frame 0.
// Selecting the animation that is already selected does nothing, so drivers
// may call Select every tick. An unknown name panics with *LookupError.
func (a *Animator) Select(name string) {
	if a.selected != nil && a.selected.Name == name {
		return
	}
	def := a.set.Def(name)
	a.selected = def
	a.frames = def.Frames
	a.index = 0
	a.elapsed = 0
	a.running = true
	a.complete = false
	debugf("animator: selected %q (%d frames, %d ticks/frame, loop %v)",
		name, len(def.Frames), def.FrameTicks, def.Loop)
}

// Selected returns the selected animation name, or "" when none.
func (a *Animator) Selected() string {
	if a.selected == nil {
		return ""
	}
	return a.selected.Name
}

// Advance moves playback forward by ticks game ticks. Each FrameTicks ticks
// the frame index steps forward; past the last frame it wraps for looping
// animations and holds for play-once ones. Does nothing when no animation is
// selected or playback is stopped.
func (a *Animator) Advance(ticks int) {
	if a.selected == nil || !a.running {
		return
	}
	last := len(a.selected.Frames) - 1
	for ; ticks > 0; ticks-- {
		a.elapsed++
		if a.elapsed < a.selected.FrameTicks {
			continue
		}
		a.elapsed = 0
		switch {
		case a.index < last:
			a.index++
		case a.selected.Loop:
			a.index = 0
		default:
			a.complete = true
		}
	}
}

// Tick advances by one tick.
func (a *Animator) Tick() {
	a.Advance(1)
}

// Index returns the current frame index.
func (a *Animator) Index() int {
	return a.index
}

// SetIndex jumps to frame i of the selected animation and clears the ticks
// spent in the frame. Out-of-range values are clamped.
func (a *Animator) SetIndex(i int) {
	if a.selected == nil {
		return
	}
	a.index = max(0, min(i, len(a.selected.Frames)-1))
	a.elapsed = 0
	a.complete = false
}

// Elapsed returns the ticks spent in the current frame.
func (a *Animator) Elapsed() int {
	return a.elapsed
}

// Complete reports whether a play-once animation has finished its last frame.
// Looping animations never complete.
func (a *Animator) Complete() bool {
	return a.complete
}

// Start resumes playback.
func (a *Animator) Start() {
	if a.selected != nil {
		a.running = true
	}
}

// Stop pauses playback on the current frame.
func (a *Animator) Stop() {
	a.running = false
}

// Running reports whether Advance moves playback.
func (a *Animator) Running() bool {
	return a.running
}

// Reset rewinds the selected animation to frame 0 without changing the
// selection.
func (a *Animator) Reset() {
	a.index = 0
	a.elapsed = 0
	a.complete = false
}

// Clear drops the selection; CurrentSprite reports nothing to draw until the
// next Select.
func (a *Animator) Clear() {
	a.selected = nil
	a.frames = nil
	a.running = false
	a.Reset()
}

// updateFramesForActor asks the resolver for the frame list matching the
// actor's state. Only the table being indexed changes; the frame index and
// elapsed ticks are kept.
func (a *Animator) updateFramesForActor(state ActorState) {
	if a.resolver == nil {
		return
	}
	if frames := a.resolver(a.selected, state); frames != nil {
		a.frames = frames
	} else {
		a.frames = a.selected.Frames
	}
}

// CurrentSprite returns the rectangle to draw this tick. The second result
// is false when there is nothing to draw: no animation selected, the actor
// hidden, or the frame index outside the resolved frame list. Callers skip
// drawing in that case.
func (a *Animator) CurrentSprite(state ActorState) (SpriteRect, bool) {
	if a.selected == nil || state.Hidden {
		return SpriteRect{}, false
	}
	a.updateFramesForActor(state)
	if a.index >= len(a.frames) {
		return SpriteRect{}, false
	}
	return a.frames[a.index], true
}
