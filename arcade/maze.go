package arcade

import (
	"fmt"

	"github.com/phanxgames/mazesprite"
)

// FlashTicks is how long each half of the end-of-level maze flash lasts.
const FlashTicks = 12

// MazeView draws the maze art of one level, recolored to the level's palette,
// and runs the end-of-level flashing effect. All recolorings go through the
// shared cache, so mazes of different levels with the same palette share one
// image.
type MazeView struct {
	atlas  *mazesprite.Atlas[SpriteID]
	cache  *mazesprite.RecolorCache
	theme  *mazesprite.ThemeConfig
	key    mazesprite.VariantKey
	source mazesprite.Palette

	level   int
	palette mazesprite.Palette
	flash   []*mazesprite.CachedImage
}

// NewMazeView binds the maze art to a cache and theme. The theme must list
// the source palette of category/variant.
func NewMazeView(atlas *mazesprite.Atlas[SpriteID], cache *mazesprite.RecolorCache,
	theme *mazesprite.ThemeConfig, category, variant int) (*MazeView, error) {
	src, ok := theme.MazePalette(category, variant)
	if !ok {
		return nil, fmt.Errorf("arcade: theme has no palette for maze category %d variant %d", category, variant)
	}
	m := &MazeView{
		atlas:  atlas,
		cache:  cache,
		theme:  theme,
		key:    mazesprite.VariantKey{Category: category, Variant: variant},
		source: src,
	}
	m.SetLevel(1)
	return m, nil
}

func (m *MazeView) region() mazesprite.Region {
	return mazesprite.Region{Image: m.atlas.Source(), Rect: m.atlas.Rect(Maze)}
}

// SetLevel selects the level's palette and stops any flashing.
func (m *MazeView) SetLevel(level int) {
	m.level = level
	m.palette = m.source
	if p, ok := m.theme.LevelPalette(level); ok {
		m.palette = p
	}
	m.flash = nil
}

// Level returns the current level.
func (m *MazeView) Level() int {
	return m.level
}

// Palette returns the palette the maze is currently drawn in.
func (m *MazeView) Palette() mazesprite.Palette {
	return m.palette
}

// Image returns the maze in the current level's palette. Level palettes
// equal to the source palette come back as passthrough results.
func (m *MazeView) Image() *mazesprite.CachedImage {
	return m.cache.GetOrCreate(m.key.With(m.palette), m.region, m.source)
}

// StartFlashing prepares count flash colorings. A theme with a two-tone
// coloring repeats that one image; otherwise count distinct palettes are
// drawn from the theme's flash palettes, never the maze's current one.
func (m *MazeView) StartFlashing(count int) {
	if m.theme.FlashTwoTone != nil {
		m.flash = m.cache.RepeatVariant(m.key, count, *m.theme.FlashTwoTone, m.region, m.source)
		return
	}
	m.flash = m.cache.CreateVariants(m.key, count, m.theme.FlashPalettes, m.palette, m.region, m.source)
}

// Flashing reports whether StartFlashing prepared colorings.
func (m *MazeView) Flashing() bool {
	return len(m.flash) > 0
}

// FlashFrame returns the image to show tick ticks into the flash: the level
// coloring and the flash colorings alternate every FlashTicks ticks. The
// second result is false once all flashes have been shown.
func (m *MazeView) FlashFrame(tick int) (*mazesprite.CachedImage, bool) {
	step := tick / FlashTicks
	if !m.Flashing() || step >= 2*len(m.flash) {
		return nil, false
	}
	if step%2 == 0 {
		return m.Image(), true
	}
	return m.flash[step/2], true
}

// Draw emits the current maze image at (x, y).
func (m *MazeView) Draw(r mazesprite.Renderer, img *mazesprite.CachedImage, x, y float64) {
	mazesprite.DrawRegion(r, img.Region(), x, y)
}
