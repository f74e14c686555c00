package arcade

import (
	"github.com/phanxgames/mazesprite"
)

// bonusTable is the classic per-level bonus symbol and its score. Levels past
// the end of the table keep the last entry.
var bonusTable = []struct {
	sprite SpriteID
	points int
}{
	{BonusCherry, 100},
	{BonusStrawberry, 300},
	{BonusPeach, 500},
	{BonusPeach, 500},
	{BonusApple, 700},
	{BonusApple, 700},
	{BonusGrapes, 1000},
	{BonusGrapes, 1000},
	{BonusGalaxian, 2000},
	{BonusGalaxian, 2000},
	{BonusBell, 3000},
	{BonusBell, 3000},
	{BonusKey, 5000},
}

func bonusEntry(level int) int {
	return min(max(level, 1), len(bonusTable)) - 1
}

// BonusSymbol returns the bonus sprite of level (1-based).
func BonusSymbol(level int) SpriteID {
	return bonusTable[bonusEntry(level)].sprite
}

// BonusPoints returns the score awarded for eating the bonus of level.
func BonusPoints(level int) int {
	return bonusTable[bonusEntry(level)].points
}

// Bonus is the fruit-style bonus shown below the ghost house.
type Bonus struct {
	Level  int
	Active bool
}

// Sprite returns the rectangle to draw, or false while the bonus is not
// showing.
func (b Bonus) Sprite(atlas *mazesprite.Atlas[SpriteID]) (mazesprite.SpriteRect, bool) {
	if !b.Active {
		return mazesprite.SpriteRect{}, false
	}
	return atlas.Rect(BonusSymbol(b.Level)), true
}
