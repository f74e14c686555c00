// Package termrender draws mazesprite draw calls into a terminal. Every
// character cell shows two logical pixels stacked vertically using the upper
// half block, foreground for the top pixel and background for the bottom.
package termrender

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/mazesprite"
)

const halfBlock = '▀'

// Config sizes the logical framebuffer.
type Config struct {
	// Width and Height are the logical size in pixels, e.g. 224×288.
	Width, Height int
	// Downsample averages Downsample×Downsample pixel blocks into one
	// terminal half-cell. Zero means 1.
	Downsample int
	// Background fills the framebuffer on Clear.
	Background mazesprite.RGB
}

type textRun struct {
	col, row int
	text     string
	fg       mazesprite.RGB
}

// Renderer composes DrawCalls into a CPU framebuffer and writes it to a
// tcell screen on Flush. It implements mazesprite.Renderer.
type Renderer struct {
	screen tcell.Screen
	cfg    Config
	fb     *image.NRGBA
	text   []textRun
}

// New creates a renderer writing to screen. The screen must already be
// initialized.
func New(screen tcell.Screen, cfg Config) *Renderer {
	if cfg.Downsample <= 0 {
		cfg.Downsample = 1
	}
	r := &Renderer{
		screen: screen,
		cfg:    cfg,
		fb:     image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	r.Clear()
	return r
}

// CellSize returns the terminal size, in cells, the framebuffer needs.
func (r *Renderer) CellSize() (cols, rows int) {
	ds := r.cfg.Downsample
	cols = (r.cfg.Width + ds - 1) / ds
	rows = (r.cfg.Height + 2*ds - 1) / (2 * ds)
	return cols, rows
}

// Framebuffer exposes the composed logical image.
func (r *Renderer) Framebuffer() *image.NRGBA {
	return r.fb
}

// Clear fills the framebuffer with the background and drops text overlays.
func (r *Renderer) Clear() {
	bg := r.cfg.Background
	pix := r.fb.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = bg.R, bg.G, bg.B, 0xff
	}
	r.text = r.text[:0]
}

// Draw copies the non-transparent pixels of call into the framebuffer.
// Pixels are mapped through the transform exactly: quarter turns and flips
// about the sprite center, result anchored at (X, Y).
func (r *Renderer) Draw(call mazesprite.DrawCall) {
	if call.Image == nil || !call.Src.Valid() {
		return
	}
	w, h := call.Src.Width, call.Src.Height
	dw := w
	q := ((call.Transform.Quarter % 4) + 4) % 4
	if q%2 == 1 {
		dw = h
	}
	dh := w + h - dw
	ox, oy := int(math.Round(call.X)), int(math.Round(call.Y))

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			c := color.NRGBAModel.Convert(call.Image.At(call.Src.X+px, call.Src.Y+py)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			tx, ty := mapPixel(px, py, w, h, dw, dh, q, call.Transform)
			r.fb.SetNRGBA(ox+tx, oy+ty, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
}

// mapPixel works in doubled coordinates centered on the sprite so that pixel
// centers stay integral through rotation.
func mapPixel(px, py, w, h, dw, dh, q int, t mazesprite.Transform) (int, int) {
	x, y := 2*px+1-w, 2*py+1-h
	for i := 0; i < q; i++ {
		x, y = -y, x
	}
	if t.FlipH {
		x = -x
	}
	if t.FlipV {
		y = -y
	}
	return (x + dw - 1) / 2, (y + dh - 1) / 2
}

// DrawText queues s at a terminal cell position. Text is written over the
// pixels on Flush and cleared by Clear.
func (r *Renderer) DrawText(col, row int, s string, fg mazesprite.RGB) {
	r.text = append(r.text, textRun{col: col, row: row, text: s, fg: fg})
}

// sample returns the color of the ds×ds block at (x, y), averaged in linear
// RGB. Pixels outside the framebuffer are ignored.
func (r *Renderer) sample(x, y int) tcell.Color {
	ds := r.cfg.Downsample
	if ds == 1 {
		if !(image.Point{X: x, Y: y}).In(r.fb.Rect) {
			return rgbColor(r.cfg.Background)
		}
		c := r.fb.NRGBAAt(x, y)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	var lr, lg, lb float64
	n := 0
	for yy := y; yy < y+ds; yy++ {
		for xx := x; xx < x+ds; xx++ {
			if !(image.Point{X: xx, Y: yy}).In(r.fb.Rect) {
				continue
			}
			cr, cg, cb := colorfulOf(r.fb.NRGBAAt(xx, yy)).LinearRgb()
			lr += cr
			lg += cg
			lb += cb
			n++
		}
	}
	if n == 0 {
		return rgbColor(r.cfg.Background)
	}
	f := float64(n)
	cr, cg, cb := colorful.LinearRgb(lr/f, lg/f, lb/f).Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

func colorfulOf(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func rgbColor(c mazesprite.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush writes the framebuffer and text overlays to the screen and shows it.
func (r *Renderer) Flush() {
	ds := r.cfg.Downsample
	cols, rows := r.CellSize()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := r.sample(col*ds, 2*row*ds)
			bottom := r.sample(col*ds, (2*row+1)*ds)
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			r.screen.SetContent(col, row, halfBlock, nil, st)
		}
	}
	for _, t := range r.text {
		st := tcell.StyleDefault.Foreground(rgbColor(t.fg)).Background(rgbColor(r.cfg.Background))
		col := t.col
		for _, ch := range t.text {
			r.screen.SetContent(col, t.row, ch, nil, st)
			col++
		}
	}
	r.screen.Show()
}
