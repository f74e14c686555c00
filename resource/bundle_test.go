package resource

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/mazesprite"
	"github.com/phanxgames/mazesprite/arcade"
)

func openTemp(t *testing.T) (*Bundle, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stage.res")
	b, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b, path
}

func TestPutGetNames(t *testing.T) {
	b, _ := openTemp(t)

	require.NoError(t, b.Put(KindTheme, "night", []byte("b")))
	require.NoError(t, b.Put(KindTheme, "day", []byte("a")))

	got, err := b.Get(KindTheme, "night")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)

	names, err := b.Names(KindTheme)
	require.NoError(t, err)
	assert.Equal(t, []string{"day", "night"}, names)

	names, err = b.Names(KindSheet)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGetMissing(t *testing.T) {
	b, _ := openTemp(t)
	_, err := b.Get(KindSheet, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `sheets "nope"`)
}

func TestUnknownKindAndEmptyName(t *testing.T) {
	b, _ := openTemp(t)
	assert.Error(t, b.Put(Kind("music"), "x", nil))
	assert.Error(t, b.Put(KindTheme, "", nil))
	_, err := b.Names(Kind("music"))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	b, _ := openTemp(t)
	require.NoError(t, b.Put(KindAtlas, "a", []byte("{}")))
	require.NoError(t, b.Delete(KindAtlas, "a"))
	require.NoError(t, b.Delete(KindAtlas, "a"))
	_, err := b.Get(KindAtlas, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.res")
	b, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, b.Path())
	require.NoError(t, b.Put(KindAnimations, "pac", []byte("- name: x")))
	require.NoError(t, b.Close())

	b, err = Open(path)
	require.NoError(t, err)
	defer b.Close()
	got, err := b.Get(KindAnimations, "pac")
	require.NoError(t, err)
	assert.Equal(t, "- name: x", string(got))
}

func TestSheetRoundTrip(t *testing.T) {
	b, _ := openTemp(t)
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 0x21, G: 0x21, B: 0xff, A: 0xff})
	require.NoError(t, b.PutSheet("tiny", img))

	got, err := b.Sheet("tiny")
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, bl, a := got.At(2, 1).RGBA()
	assert.Equal(t, [4]uint32{0x2121, 0x2121, 0xffff, 0xffff}, [4]uint32{r, g, bl, a})
}

func TestSheetCorrupt(t *testing.T) {
	b, _ := openTemp(t)
	require.NoError(t, b.Put(KindSheet, "bad", []byte("not a png")))
	_, err := b.Sheet("bad")
	assert.ErrorContains(t, err, "decode sheet")
}

func TestArcadeBundle(t *testing.T) {
	b, _ := openTemp(t)
	require.NoError(t, b.PutSheet("arcade", arcade.GenerateSheet()))
	require.NoError(t, b.Put(KindTheme, "arcade", arcade.ThemeYAML()))
	require.NoError(t, b.Put(KindAnimations, "arcade", []byte(`
- name: munching
  frames: [pac_munching]
  ticks: 2
  loop: true
- name: dying
  frames: [pac_dying]
  ticks: 8
`)))

	sheet, err := b.Sheet("arcade")
	require.NoError(t, err)
	atlas, err := arcade.NewSpriteSheet(sheet)
	require.NoError(t, err)

	theme, err := b.Theme("arcade")
	require.NoError(t, err)
	_, ok := theme.MazePalette(arcade.MazeCategory, arcade.MazeVariant)
	assert.True(t, ok)

	set, err := AnimationSet(b, "arcade", atlas, arcade.ParseSpriteID)
	require.NoError(t, err)
	assert.Equal(t, []string{"munching", "dying"}, set.Names())

	anim := mazesprite.NewAnimator(set, nil)
	anim.Select("munching")
	r, ok := anim.CurrentSprite(mazesprite.ActorState{})
	require.True(t, ok)
	assert.Equal(t, atlas.Sequence(arcade.PacMunching)[0], r)
}

func TestAtlasRecord(t *testing.T) {
	b, _ := openTemp(t)
	require.NoError(t, b.PutSheet("hud", image.NewNRGBA(image.Rect(0, 0, 16, 8))))
	require.NoError(t, b.Put(KindAtlas, "hud", []byte(`{
		"frames": {
			"life": {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
			"key":  {"frame": {"x": 8, "y": 0, "w": 8, "h": 8}}
		}
	}`)))

	atlas, err := b.Atlas("hud")
	require.NoError(t, err)
	assert.Equal(t, mazesprite.Rect(8, 0, 8, 8), atlas.Rect("key"))
}
