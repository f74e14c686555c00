package arcade

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/phanxgames/mazesprite"
)

// Placeholder art colors. Maze colors come from MazeSourcePalette so the
// recolor cache finds exact matches.
var (
	ghostColors = [4]color.NRGBA{
		Red:    {0xff, 0x00, 0x00, 0xff},
		Pink:   {0xff, 0xb8, 0xff, 0xff},
		Cyan:   {0x00, 0xff, 0xff, 0xff},
		Orange: {0xff, 0xb8, 0x51, 0xff},
	}
	frightBlue  = color.NRGBA{0x21, 0x21, 0xff, 0xff}
	white       = color.NRGBA{0xde, 0xde, 0xff, 0xff}
	pupil       = color.NRGBA{0x21, 0x21, 0xde, 0xff}
	pacYellow   = color.NRGBA{0xff, 0xff, 0x00, 0xff}
	scoreCyan   = color.NRGBA{0x00, 0xff, 0xff, 0xff}
	clapperGray = color.NRGBA{0xa0, 0xa0, 0xa0, 0xff}
	bonusColors = [8]color.NRGBA{
		{0xff, 0x00, 0x00, 0xff}, {0xff, 0x40, 0x40, 0xff}, {0xff, 0xb8, 0x51, 0xff}, {0xde, 0x00, 0x00, 0xff},
		{0x00, 0xde, 0x00, 0xff}, {0xff, 0xff, 0x00, 0xff}, {0xff, 0xde, 0x51, 0xff}, {0x00, 0xde, 0xde, 0xff},
	}
)

// 3×5 digit glyphs, one string per row.
var digitGlyphs = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", ".##", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", ".#.", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

// GenerateSheet paints a placeholder sprite sheet in the arcade layout. Every
// sprite gets distinguishable flat-color art, which is enough to run the
// examples and tests without shipping artwork.
func GenerateSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	l := Layout()

	paintMaze(img, l[Maze][0], MazeSourcePalette)

	dirs := []mazesprite.Direction{mazesprite.Right, mazesprite.Left, mazesprite.Up, mazesprite.Down}
	for c := Red; c <= Orange; c++ {
		for _, d := range dirs {
			for f, r := range l[GhostBody(c, d)] {
				paintGhost(img, r, ghostColors[c], f)
				paintEyes(img, r, d)
			}
		}
	}
	for f, r := range l[GhostFrightened] {
		paintGhost(img, r, frightBlue, f)
	}
	for f, r := range l[GhostFrightenedFlash] {
		paintGhost(img, r, white, f)
	}
	for _, d := range dirs {
		paintEyes(img, l[GhostEyes(d)][0], d)
	}

	for f, r := range l[PacMunching][:3] {
		paintPac(img, r, float64(f)*math.Pi/6)
	}
	for f, r := range l[PacDying] {
		paintPac(img, r, math.Pi/4+float64(f)*math.Pi/8)
	}
	for f, r := range l[Clapperboard] {
		paintClapper(img, r, f)
	}

	for k := 0; k < 8; k++ {
		r := l[BonusCherry+SpriteID(k)][0]
		disc(img, r, 4, bonusColors[k])
	}
	for k := 0; k < 4; k++ {
		r := l[GhostPoints200+SpriteID(k)][0]
		for i := 0; i <= k; i++ {
			glyph(img, r.X+1+i*4, r.Y+5, 2, scoreCyan)
		}
	}
	fill(img, inset(l[Pellet][0], 3), nrgba(MazeSourcePalette.Accent))
	disc(img, l[Energizer][0], 0, nrgba(MazeSourcePalette.Accent))

	for k := 0; k < 10; k++ {
		glyph(img, l[Digit0+SpriteID(k)][0].X+2, l[Digit0+SpriteID(k)][0].Y+1, k, white)
	}
	return img
}

func nrgba(c mazesprite.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func fill(img *image.NRGBA, r mazesprite.SpriteRect, c color.NRGBA) {
	draw.Draw(img, r.Image(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func inset(r mazesprite.SpriteRect, n int) mazesprite.SpriteRect {
	return mazesprite.Rect(r.X+n, r.Y+n, r.Width-2*n, r.Height-2*n)
}

// disc paints a filled circle inside r, margin pixels from its edges.
func disc(img *image.NRGBA, r mazesprite.SpriteRect, margin int, c color.NRGBA) {
	rad := float64(min(r.Width, r.Height))/2 - float64(margin)
	cx, cy := float64(r.X)+float64(r.Width)/2, float64(r.Y)+float64(r.Height)/2
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= rad*rad {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// paintMaze draws a tile maze: a wall border, a grid of wall blocks, pellets
// in the corridors and energizers near the corners.
func paintMaze(img *image.NRGBA, r mazesprite.SpriteRect, p mazesprite.Palette) {
	for ty := 0; ty < MazeTilesH; ty++ {
		for tx := 0; tx < MazeTilesW; tx++ {
			t := tile(r.X+tx*TileSize, r.Y+ty*TileSize)
			switch {
			case isWall(tx, ty):
				fill(img, t, nrgba(p.Stroke))
				fill(img, inset(t, 1), nrgba(p.Fill))
			case isEnergizerTile(tx, ty):
				disc(img, t, 1, nrgba(p.Accent))
			default:
				fill(img, mazesprite.Rect(t.X+3, t.Y+3, 2, 2), nrgba(p.Accent))
			}
		}
	}
}

func isWall(tx, ty int) bool {
	if tx == 0 || ty == 0 || tx == MazeTilesW-1 || ty == MazeTilesH-1 {
		return true
	}
	return tx%4 >= 2 && ty%4 >= 2 && tx < MazeTilesW-2 && ty < MazeTilesH-2
}

func isEnergizerTile(tx, ty int) bool {
	return (tx == 1 || tx == MazeTilesW-2) && (ty == 3 || ty == MazeTilesH-8)
}

// paintGhost draws a dome with a skirt whose notches alternate by frame.
func paintGhost(img *image.NRGBA, r mazesprite.SpriteRect, c color.NRGBA, frame int) {
	disc(img, mazesprite.Rect(r.X+1, r.Y+1, 14, 14), 0, c)
	fill(img, mazesprite.Rect(r.X+1, r.Y+8, 14, 5), c)
	for x := 0; x < 14; x++ {
		if (x/2+frame)%2 == 0 {
			img.SetNRGBA(r.X+1+x, r.Y+13, c)
			img.SetNRGBA(r.X+1+x, r.Y+14, c)
		}
	}
}

// paintEyes draws two eyes with pupils shifted toward d.
func paintEyes(img *image.NRGBA, r mazesprite.SpriteRect, d mazesprite.Direction) {
	dx, dy := d.Vector()
	for _, ex := range []int{3, 9} {
		eye := mazesprite.Rect(r.X+ex, r.Y+4, 4, 5)
		fill(img, eye, white)
		fill(img, mazesprite.Rect(eye.X+1+dx, eye.Y+2+dy, 2, 2), pupil)
	}
}

// paintPac draws a disc with a right-facing mouth wedge of half-angle mouth.
func paintPac(img *image.NRGBA, r mazesprite.SpriteRect, mouth float64) {
	cx, cy := float64(r.X)+8, float64(r.Y)+8
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy > 7*7 {
				continue
			}
			if mouth > 0 && math.Abs(math.Atan2(dy, dx)) < mouth {
				continue
			}
			img.SetNRGBA(x, y, pacYellow)
		}
	}
}

// paintClapper draws a board whose top bar closes over three frames.
func paintClapper(img *image.NRGBA, r mazesprite.SpriteRect, frame int) {
	fill(img, mazesprite.Rect(r.X+2, r.Y+7, 12, 7), clapperGray)
	top := 6 - 2*frame
	fill(img, mazesprite.Rect(r.X+2, r.Y+top, 12, 1), white)
}

// glyph draws digit n at (x, y) with one pixel per glyph cell.
func glyph(img *image.NRGBA, x, y, n int, c color.NRGBA) {
	for gy, row := range digitGlyphs[n] {
		for gx, ch := range row {
			if ch == '#' {
				img.SetNRGBA(x+gx, y+gy, c)
			}
		}
	}
}
