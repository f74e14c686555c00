package arcade

import (
	"fmt"
	"image"

	"github.com/phanxgames/mazesprite"
)

// Sheet geometry. The sheet is tile-aligned: every rectangle starts on the
// TileSize grid. The registry itself only ever sees pixel rectangles.
const (
	TileSize  = 8
	ActorSize = 2 * TileSize

	MazeTilesW = 28
	MazeTilesH = 31
	MazeWidth  = MazeTilesW * TileSize
	MazeHeight = MazeTilesH * TileSize

	actorsX = MazeWidth

	SheetWidth  = actorsX + 8*ActorSize
	SheetHeight = MazeHeight
)

// Sheet rows of 16×16 cells to the right of the maze.
const (
	rowGhosts  = 0 // four rows, one per GhostColor
	rowGhostFx = 4
	rowPac     = 5
	rowDying   = 6
	rowBonus   = 7
	rowPoints  = 8
	rowDigits  = 9
)

func cell(col, row int) mazesprite.SpriteRect {
	return mazesprite.Rect(actorsX+col*ActorSize, row*ActorSize, ActorSize, ActorSize)
}

func cells(col, row, n int) []mazesprite.SpriteRect {
	out := make([]mazesprite.SpriteRect, n)
	for i := range out {
		out[i] = cell(col+i, row)
	}
	return out
}

func tile(x, y int) mazesprite.SpriteRect {
	return mazesprite.Rect(x, y, TileSize, TileSize)
}

// Layout returns the rectangles of every sprite on the sheet.
func Layout() map[SpriteID][]mazesprite.SpriteRect {
	l := make(map[SpriteID][]mazesprite.SpriteRect, spriteIDCount)
	l[Maze] = []mazesprite.SpriteRect{mazesprite.Rect(0, 0, MazeWidth, MazeHeight)}

	for c := Red; c <= Orange; c++ {
		for k, d := range []mazesprite.Direction{mazesprite.Right, mazesprite.Left, mazesprite.Up, mazesprite.Down} {
			l[GhostBody(c, d)] = cells(k*2, rowGhosts+int(c), 2)
		}
	}

	l[GhostFrightened] = cells(0, rowGhostFx, 2)
	l[GhostFrightenedFlash] = cells(2, rowGhostFx, 2)
	for k := 0; k < 4; k++ {
		l[GhostEyesRight+SpriteID(k)] = []mazesprite.SpriteRect{cell(4+k, rowGhostFx)}
	}

	l[PacFull] = []mazesprite.SpriteRect{cell(0, rowPac)}
	l[PacMunching] = []mazesprite.SpriteRect{cell(0, rowPac), cell(1, rowPac), cell(2, rowPac), cell(1, rowPac)}
	l[Clapperboard] = cells(4, rowPac, 3)
	l[PacDying] = cells(0, rowDying, 8)

	for k := 0; k < 8; k++ {
		l[BonusCherry+SpriteID(k)] = []mazesprite.SpriteRect{cell(k, rowBonus)}
	}
	for k := 0; k < 4; k++ {
		l[GhostPoints200+SpriteID(k)] = []mazesprite.SpriteRect{cell(k, rowPoints)}
	}
	l[Pellet] = []mazesprite.SpriteRect{tile(actorsX+4*ActorSize, rowPoints*ActorSize)}
	l[Energizer] = []mazesprite.SpriteRect{tile(actorsX+5*ActorSize, rowPoints*ActorSize)}

	for k := 0; k < 10; k++ {
		l[Digit0+SpriteID(k)] = []mazesprite.SpriteRect{tile(actorsX+k*TileSize, rowDigits*ActorSize)}
	}
	return l
}

// NewSpriteSheet registers the arcade layout over img and proves every
// SpriteID is present. img must be at least SheetWidth×SheetHeight.
func NewSpriteSheet(img image.Image) (*mazesprite.Atlas[SpriteID], error) {
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		return nil, fmt.Errorf("arcade: sprite sheet must start at (0,0), got %v", b.Min)
	}
	if b.Dx() < SheetWidth || b.Dy() < SheetHeight {
		return nil, fmt.Errorf("arcade: sprite sheet is %dx%d, need at least %dx%d",
			b.Dx(), b.Dy(), SheetWidth, SheetHeight)
	}
	return registerLayout(img, Layout())
}

func registerLayout(img image.Image, layout map[SpriteID][]mazesprite.SpriteRect) (*mazesprite.Atlas[SpriteID], error) {
	atlas := mazesprite.NewAtlas[SpriteID](img)
	for _, id := range AllSpriteIDs() {
		if rects, ok := layout[id]; ok {
			atlas.Register(id, rects...)
		}
	}
	if err := atlas.CheckCompleteness(AllSpriteIDs()); err != nil {
		return nil, fmt.Errorf("arcade: %w", err)
	}
	return atlas, nil
}
