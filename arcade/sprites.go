package arcade

import (
	"github.com/phanxgames/mazesprite"
)

// SpriteID names every sprite on the arcade sheet. The set is closed:
// AllSpriteIDs lists it and NewSpriteSheet proves every entry is registered.
type SpriteID int

const (
	Maze SpriteID = iota

	GhostRedRight
	GhostRedLeft
	GhostRedUp
	GhostRedDown
	GhostPinkRight
	GhostPinkLeft
	GhostPinkUp
	GhostPinkDown
	GhostCyanRight
	GhostCyanLeft
	GhostCyanUp
	GhostCyanDown
	GhostOrangeRight
	GhostOrangeLeft
	GhostOrangeUp
	GhostOrangeDown

	GhostFrightened
	GhostFrightenedFlash
	GhostEyesRight
	GhostEyesLeft
	GhostEyesUp
	GhostEyesDown

	PacMunching
	PacFull
	PacDying
	Clapperboard

	BonusCherry
	BonusStrawberry
	BonusPeach
	BonusApple
	BonusGrapes
	BonusGalaxian
	BonusBell
	BonusKey

	GhostPoints200
	GhostPoints400
	GhostPoints800
	GhostPoints1600
	Pellet
	Energizer

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	spriteIDCount
)

var spriteNames = [spriteIDCount]string{
	Maze: "maze",

	GhostRedRight: "ghost_red_right", GhostRedLeft: "ghost_red_left",
	GhostRedUp: "ghost_red_up", GhostRedDown: "ghost_red_down",
	GhostPinkRight: "ghost_pink_right", GhostPinkLeft: "ghost_pink_left",
	GhostPinkUp: "ghost_pink_up", GhostPinkDown: "ghost_pink_down",
	GhostCyanRight: "ghost_cyan_right", GhostCyanLeft: "ghost_cyan_left",
	GhostCyanUp: "ghost_cyan_up", GhostCyanDown: "ghost_cyan_down",
	GhostOrangeRight: "ghost_orange_right", GhostOrangeLeft: "ghost_orange_left",
	GhostOrangeUp: "ghost_orange_up", GhostOrangeDown: "ghost_orange_down",

	GhostFrightened:      "ghost_frightened",
	GhostFrightenedFlash: "ghost_frightened_flash",
	GhostEyesRight:       "ghost_eyes_right",
	GhostEyesLeft:        "ghost_eyes_left",
	GhostEyesUp:          "ghost_eyes_up",
	GhostEyesDown:        "ghost_eyes_down",

	PacMunching:  "pac_munching",
	PacFull:      "pac_full",
	PacDying:     "pac_dying",
	Clapperboard: "clapperboard",

	BonusCherry:     "bonus_cherry",
	BonusStrawberry: "bonus_strawberry",
	BonusPeach:      "bonus_peach",
	BonusApple:      "bonus_apple",
	BonusGrapes:     "bonus_grapes",
	BonusGalaxian:   "bonus_galaxian",
	BonusBell:       "bonus_bell",
	BonusKey:        "bonus_key",

	GhostPoints200:  "ghost_points_200",
	GhostPoints400:  "ghost_points_400",
	GhostPoints800:  "ghost_points_800",
	GhostPoints1600: "ghost_points_1600",
	Pellet:          "pellet",
	Energizer:       "energizer",

	Digit0: "digit_0", Digit1: "digit_1", Digit2: "digit_2", Digit3: "digit_3", Digit4: "digit_4",
	Digit5: "digit_5", Digit6: "digit_6", Digit7: "digit_7", Digit8: "digit_8", Digit9: "digit_9",
}

func (id SpriteID) String() string {
	if id < 0 || id >= spriteIDCount {
		return "sprite(?)"
	}
	return spriteNames[id]
}

var spriteIDsByName = func() map[string]SpriteID {
	m := make(map[string]SpriteID, spriteIDCount)
	for id, name := range spriteNames {
		m[name] = SpriteID(id)
	}
	return m
}()

// ParseSpriteID returns the ID whose String is name.
func ParseSpriteID(name string) (SpriteID, bool) {
	id, ok := spriteIDsByName[name]
	return id, ok
}

// AllSpriteIDs returns every declared sprite ID in declaration order.
func AllSpriteIDs() []SpriteID {
	ids := make([]SpriteID, spriteIDCount)
	for i := range ids {
		ids[i] = SpriteID(i)
	}
	return ids
}

// GhostColor identifies one of the four ghosts.
type GhostColor int

const (
	Red GhostColor = iota
	Pink
	Cyan
	Orange
)

var ghostColorNames = [...]string{"red", "pink", "cyan", "orange"}

func (c GhostColor) String() string {
	if c < 0 || int(c) >= len(ghostColorNames) {
		return "ghost(?)"
	}
	return ghostColorNames[c]
}

// GhostBody returns the body sprite of ghost c facing d. NoDirection faces
// right.
func GhostBody(c GhostColor, d mazesprite.Direction) SpriteID {
	return GhostRedRight + SpriteID(int(c)*4+dirOffset(d))
}

// GhostEyes returns the eyes-only sprite looking toward d.
func GhostEyes(d mazesprite.Direction) SpriteID {
	return GhostEyesRight + SpriteID(dirOffset(d))
}

// GhostPoints returns the score sprite shown when the n-th ghost of one
// energizer is eaten (0 → 200 ... 3 → 1600). Larger n clamp to 1600.
func GhostPoints(n int) SpriteID {
	return GhostPoints200 + SpriteID(max(0, min(n, 3)))
}

// Digit returns the sprite for decimal digit n.
func Digit(n int) SpriteID {
	return Digit0 + SpriteID(((n%10)+10)%10)
}

// dirOffset matches the Right, Left, Up, Down order of the sheet rows.
func dirOffset(d mazesprite.Direction) int {
	switch d {
	case mazesprite.Left:
		return 1
	case mazesprite.Up:
		return 2
	case mazesprite.Down:
		return 3
	default:
		return 0
	}
}
