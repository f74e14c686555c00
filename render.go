package mazesprite

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawCall is one blit request: the Src rectangle of Image drawn with its
// top-left corner at (X, Y), oriented by Transform. Coordinates are logical
// game pixels; scaling to the screen is the renderer's business.
type DrawCall struct {
	Image     image.Image
	Src       SpriteRect
	X, Y      float64
	Transform Transform
}

// Renderer performs the actual blit. The core only ever emits DrawCalls;
// everything about the drawing surface lives behind this interface.
type Renderer interface {
	Draw(call DrawCall)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(call DrawCall)

// Draw calls f(call).
func (f RendererFunc) Draw(call DrawCall) {
	f(call)
}

// DrawCall resolves the current sprite for state and wraps it in a DrawCall
// against img. It reports false when there is nothing to draw.
func (a *Animator) DrawCall(state ActorState, img image.Image, x, y float64, tr Transform) (DrawCall, bool) {
	r, ok := a.CurrentSprite(state)
	if !ok {
		return DrawCall{}, false
	}
	return DrawCall{Image: img, Src: r, X: x, Y: y, Transform: tr}, true
}

// DrawRegion emits a draw call for a whole region, e.g. a recolored maze.
func DrawRegion(r Renderer, reg Region, x, y float64) {
	r.Draw(DrawCall{Image: reg.Image, Src: reg.Rect, X: x, Y: y})
}

// RendererConfig configures an EbitenRenderer.
type RendererConfig struct {
	// Scale multiplies logical pixel coordinates and sizes. Zero means 1.
	Scale float64
	// Filter selects texture sampling; the zero value is nearest-neighbor,
	// which keeps pixel art crisp.
	Filter ebiten.Filter
}

// EbitenRenderer draws DrawCalls onto an *ebiten.Image. CPU-side images are
// uploaded to GPU textures on first use and kept until Forget or Dispose;
// images that already are *ebiten.Image are drawn directly.
//
// Image map keys must be comparable (pointer image types are).
type EbitenRenderer struct {
	target   *ebiten.Image
	scale    float64
	filter   ebiten.Filter
	textures map[image.Image]*ebiten.Image
}

// NewEbitenRenderer creates a renderer with no target; call SetTarget each
// frame from Draw.
func NewEbitenRenderer(cfg RendererConfig) *EbitenRenderer {
	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}
	return &EbitenRenderer{
		scale:    scale,
		filter:   cfg.Filter,
		textures: make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget sets the image draw calls render onto.
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Scale returns the logical-to-screen scale factor.
func (r *EbitenRenderer) Scale() float64 {
	return r.scale
}

// TextureCount returns the number of uploaded textures held.
func (r *EbitenRenderer) TextureCount() int {
	return len(r.textures)
}

// texture returns the GPU image for img, uploading it on first use.
func (r *EbitenRenderer) texture(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if tex, ok := r.textures[img]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(img)
	r.textures[img] = tex
	debugf("renderer: uploaded %dx%d texture (%d held)", tex.Bounds().Dx(), tex.Bounds().Dy(), len(r.textures))
	return tex
}

// Draw blits call onto the target. Calls with no image or no target are
// dropped.
func (r *EbitenRenderer) Draw(call DrawCall) {
	if r.target == nil || call.Image == nil {
		return
	}
	tex := r.texture(call.Image)

	// Uploaded textures start at (0,0) even when the CPU image does not.
	src := call.Src.Image()
	if _, direct := call.Image.(*ebiten.Image); !direct {
		src = src.Sub(call.Image.Bounds().Min)
	}
	sub := tex.SubImage(src).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	applyTransform(&op.GeoM, call.Transform, float64(call.Src.Width), float64(call.Src.Height))
	op.GeoM.Translate(call.X, call.Y)
	op.GeoM.Scale(r.scale, r.scale)
	op.Filter = r.filter
	r.target.DrawImage(sub, &op)
}

// applyTransform rotates and mirrors a w×h sprite about its center, leaving
// the result's top-left corner at the origin.
func applyTransform(g *ebiten.GeoM, t Transform, w, h float64) {
	if t.Identity() {
		return
	}
	q := ((t.Quarter % 4) + 4) % 4
	g.Translate(-w/2, -h/2)
	if q != 0 {
		g.Rotate(float64(q) * math.Pi / 2)
	}
	sx, sy := 1.0, 1.0
	if t.FlipH {
		sx = -1
	}
	if t.FlipV {
		sy = -1
	}
	g.Scale(sx, sy)
	dw, dh := w, h
	if q%2 == 1 {
		dw, dh = h, w
	}
	g.Translate(dw/2, dh/2)
}

// Forget releases the texture uploaded for img, if any. Wire it to
// RecolorCacheConfig.OnEvict so evicted recolorings free their GPU memory.
func (r *EbitenRenderer) Forget(img image.Image) {
	if tex, ok := r.textures[img]; ok {
		tex.Deallocate()
		delete(r.textures, img)
	}
}

// Dispose releases every uploaded texture.
func (r *EbitenRenderer) Dispose() {
	for img, tex := range r.textures {
		tex.Deallocate()
		delete(r.textures, img)
	}
}
