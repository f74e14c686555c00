package arcade

import (
	"strconv"

	"github.com/phanxgames/mazesprite"
)

// Ghost animation names.
const (
	AnimNormal     = "normal"
	AnimFrightened = "frightened"
	AnimFlashing   = "flashing"
	AnimEyes       = "eyes"
	AnimPoints     = "points"
)

// Pac and effect animation names.
const (
	AnimMunching     = "munching"
	AnimFull         = "full"
	AnimDying        = "dying"
	AnimClapperboard = "clapperboard"
)

// Frame durations in ticks at 60 ticks per second.
const (
	ghostFrameTicks   = 8
	flashFrameTicks   = 14
	munchFrameTicks   = 2
	dyingFrameTicks   = 8
	clapperFrameTicks = 6
)

// GhostAnimations builds the animation set shared by all four ghosts. The
// "normal" frames stored in the set are the red ghost facing right; the
// resolver from GhostResolver swaps in the right ghost and direction.
func GhostAnimations(atlas *mazesprite.Atlas[SpriteID]) (*mazesprite.AnimationSet, error) {
	flashing := make([]mazesprite.SpriteRect, 0, 4)
	for i, r := range atlas.Sequence(GhostFrightened) {
		flashing = append(flashing, r, atlas.Sequence(GhostFrightenedFlash)[i])
	}
	return mazesprite.NewAnimationSet(
		mazesprite.AnimationDef{Name: AnimNormal, Frames: atlas.Sequence(GhostRedRight), FrameTicks: ghostFrameTicks, Loop: true},
		mazesprite.AnimationDef{Name: AnimFrightened, Frames: atlas.Sequence(GhostFrightened), FrameTicks: ghostFrameTicks, Loop: true},
		mazesprite.AnimationDef{Name: AnimFlashing, Frames: flashing, FrameTicks: flashFrameTicks, Loop: true},
		mazesprite.AnimationDef{Name: AnimEyes, Frames: atlas.Sequence(GhostEyesRight), FrameTicks: 1, Loop: true},
		mazesprite.AnimationDef{Name: AnimPoints, Frames: atlas.Sequence(GhostPoints200), FrameTicks: 1, Loop: true},
	)
}

// GhostResolver returns the frame resolver for ghost c:
//
//   - normal: the body of ghost c looking toward its wish direction, falling
//     back to its movement direction;
//   - eyes: the eyes looking toward the movement direction;
//   - points: the score sprite named by ActorState.Sub ("200" .. "1600").
//
// Other animations keep their stored frames.
func GhostResolver(atlas *mazesprite.Atlas[SpriteID], c GhostColor) mazesprite.FrameResolver {
	return func(def *mazesprite.AnimationDef, st mazesprite.ActorState) []mazesprite.SpriteRect {
		switch def.Name {
		case AnimNormal:
			d := st.Wish
			if d == mazesprite.NoDirection {
				d = st.Moving
			}
			return atlas.Sequence(GhostBody(c, d))
		case AnimEyes:
			return atlas.Sequence(GhostEyes(st.Moving))
		case AnimPoints:
			if id, ok := pointsSprite(st.Sub); ok {
				return atlas.Sequence(id)
			}
		}
		return nil
	}
}

func pointsSprite(sub string) (SpriteID, bool) {
	n, err := strconv.Atoi(sub)
	if err != nil {
		return 0, false
	}
	switch n {
	case 200:
		return GhostPoints200, true
	case 400:
		return GhostPoints400, true
	case 800:
		return GhostPoints800, true
	case 1600:
		return GhostPoints1600, true
	}
	return 0, false
}

// PacAnimations builds the Pac actor's animation set. The sheet only holds
// right-facing art; draw it with PacTransform.
func PacAnimations(atlas *mazesprite.Atlas[SpriteID]) (*mazesprite.AnimationSet, error) {
	return mazesprite.NewAnimationSet(
		mazesprite.AnimationDef{Name: AnimMunching, Frames: atlas.Sequence(PacMunching), FrameTicks: munchFrameTicks, Loop: true},
		mazesprite.AnimationDef{Name: AnimFull, Frames: atlas.Sequence(PacFull), FrameTicks: 1, Loop: true},
		mazesprite.AnimationDef{Name: AnimDying, Frames: atlas.Sequence(PacDying), FrameTicks: dyingFrameTicks},
	)
}

// PacTransform orients the right-facing Pac art toward the actor's movement
// direction. A standing actor keeps the identity transform.
func PacTransform(st mazesprite.ActorState) mazesprite.Transform {
	return st.Moving.TransformFrom(mazesprite.Right)
}

// EffectAnimations holds the intermission clapperboard, played once.
func EffectAnimations(atlas *mazesprite.Atlas[SpriteID]) (*mazesprite.AnimationSet, error) {
	return mazesprite.NewAnimationSet(
		mazesprite.AnimationDef{Name: AnimClapperboard, Frames: atlas.Sequence(Clapperboard), FrameTicks: clapperFrameTicks},
	)
}
