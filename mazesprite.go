package mazesprite

import (
	"fmt"
	"image"
)

// SpriteRect is an axis-aligned rectangle in source-image pixel space.
// The origin is the top-left corner, Y increases downward. Value type with
// value equality; it carries no identity beyond its coordinates.
type SpriteRect struct {
	X, Y, Width, Height int
}

// Rect is shorthand for a SpriteRect literal.
func Rect(x, y, w, h int) SpriteRect {
	return SpriteRect{X: x, Y: y, Width: w, Height: h}
}

// Valid reports whether the rectangle has a positive size and a non-negative origin.
func (r SpriteRect) Valid() bool {
	return r.Width > 0 && r.Height > 0 && r.X >= 0 && r.Y >= 0
}

// Image converts r to an image.Rectangle.
func (r SpriteRect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// In reports whether r lies entirely inside bounds.
func (r SpriteRect) In(bounds image.Rectangle) bool {
	return r.Image().In(bounds)
}

// At returns r moved so that its origin is at (x, y).
func (r SpriteRect) At(x, y int) SpriteRect {
	return SpriteRect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

func (r SpriteRect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Direction is one of the four maze movement directions. The zero value is
// NoDirection.
type Direction uint8

const (
	NoDirection Direction = iota // no movement / undecided
	Up                           // toward negative Y
	Down                         // toward positive Y
	Left                         // toward negative X
	Right                        // toward positive X
)

// Directions lists the four real directions in the arcade's priority order.
var Directions = [4]Direction{Up, Left, Down, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the reverse direction. NoDirection is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

// Vector returns the unit step for d in screen coordinates.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// quarter returns the number of clockwise quarter turns from Right to d.
func (d Direction) quarter() int {
	switch d {
	case Down:
		return 1
	case Left:
		return 2
	case Up:
		return 3
	default:
		return 0
	}
}

// Transform is a draw-time orientation hint. Rotation is applied first, then
// the flips, all about the sprite's center.
type Transform struct {
	Quarter int  // clockwise quarter turns, 0..3
	FlipH   bool // mirror horizontally
	FlipV   bool // mirror vertically
}

// Identity reports whether t leaves the sprite untouched.
func (t Transform) Identity() bool {
	return t.Quarter%4 == 0 && !t.FlipH && !t.FlipV
}

// TransformFrom returns the transform that turns art drawn facing canonical
// into art facing d. Horizontal opposites mirror instead of rotating so that
// sprites never render upside down; everything else rotates.
func (d Direction) TransformFrom(canonical Direction) Transform {
	if d == NoDirection || canonical == NoDirection || d == canonical {
		return Transform{}
	}
	if d == canonical.Opposite() {
		if d.Horizontal() {
			return Transform{FlipH: true}
		}
		return Transform{FlipV: true}
	}
	q := (d.quarter() - canonical.quarter() + 4) % 4
	return Transform{Quarter: q}
}

// RGB is an opaque 24-bit color. Alpha is handled separately by the pixel
// buffers; palettes only ever compare color channels.
type RGB struct {
	R, G, B uint8
}

// Palette is the three-color set that maze and actor art is painted with.
// Substitution maps colors positionally: fill to fill, stroke to stroke,
// accent to accent. Comparable; used inside cache keys.
type Palette struct {
	Fill   RGB `yaml:"fill"`
	Stroke RGB `yaml:"stroke"`
	Accent RGB `yaml:"accent"`
}

func (p Palette) String() string {
	return fmt.Sprintf("{fill %s stroke %s accent %s}", p.Fill, p.Stroke, p.Accent)
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ActorState is the transient per-tick state a game driver hands to an
// Animator. The zero value describes a visible actor with no direction.
type ActorState struct {
	Moving Direction // current movement direction
	Wish   Direction // direction the actor intends to take next
	Hidden bool      // actor is not drawn this tick
	Sub    string    // optional sub-state tag (frightened, eaten, ...)
}
