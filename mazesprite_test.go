package mazesprite

import (
	"image"
	"testing"
)

// --- SpriteRect ---

func TestSpriteRectValid(t *testing.T) {
	tests := []struct {
		name string
		r    SpriteRect
		want bool
	}{
		{"normal", Rect(0, 0, 16, 16), true},
		{"offset", Rect(32, 48, 8, 8), true},
		{"zero width", Rect(0, 0, 0, 16), false},
		{"zero height", Rect(0, 0, 16, 0), false},
		{"negative width", Rect(0, 0, -1, 16), false},
		{"negative x", Rect(-1, 0, 16, 16), false},
		{"negative y", Rect(0, -1, 16, 16), false},
		{"zero value", SpriteRect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("%v.Valid() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestSpriteRectIn(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 32)
	tests := []struct {
		r    SpriteRect
		want bool
	}{
		{Rect(0, 0, 64, 32), true},
		{Rect(48, 16, 16, 16), true},
		{Rect(49, 16, 16, 16), false},
		{Rect(48, 17, 16, 16), false},
	}
	for _, tt := range tests {
		if got := tt.r.In(bounds); got != tt.want {
			t.Errorf("%v.In(%v) = %v, want %v", tt.r, bounds, got, tt.want)
		}
	}
}

func TestSpriteRectImageAndAt(t *testing.T) {
	r := Rect(8, 16, 4, 2)
	if got := r.Image(); got != image.Rect(8, 16, 12, 18) {
		t.Errorf("Image() = %v", got)
	}
	if got := r.At(0, 0); got != Rect(0, 0, 4, 2) {
		t.Errorf("At(0,0) = %v", got)
	}
	if got := r.String(); got != "(8,16 4x2)" {
		t.Errorf("String() = %q", got)
	}
}

// --- Direction ---

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left, NoDirection: NoDirection}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionVector(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and its opposite do not cancel: (%d,%d) + (%d,%d)", d, dx, dy, ox, oy)
		}
		if (dx != 0) != d.Horizontal() {
			t.Errorf("%v: Horizontal() = %v, vector (%d,%d)", d, d.Horizontal(), dx, dy)
		}
	}
	if dx, dy := NoDirection.Vector(); dx != 0 || dy != 0 {
		t.Errorf("NoDirection.Vector() = (%d,%d), want (0,0)", dx, dy)
	}
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{Up: "up", Down: "down", Left: "left", Right: "right", NoDirection: "none"}
	for d, s := range want {
		if d.String() != s {
			t.Errorf("String() = %q, want %q", d.String(), s)
		}
	}
}

func TestDirectionTransformFrom(t *testing.T) {
	tests := []struct {
		d, canonical Direction
		want         Transform
	}{
		{Right, Right, Transform{}},
		{Left, Right, Transform{FlipH: true}},
		{Down, Right, Transform{Quarter: 1}},
		{Up, Right, Transform{Quarter: 3}},
		{Down, Up, Transform{FlipV: true}},
		{Right, Up, Transform{Quarter: 1}},
		{NoDirection, Right, Transform{}},
		{Left, NoDirection, Transform{}},
	}
	for _, tt := range tests {
		if got := tt.d.TransformFrom(tt.canonical); got != tt.want {
			t.Errorf("%v.TransformFrom(%v) = %+v, want %+v", tt.d, tt.canonical, got, tt.want)
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	if !(Transform{}).Identity() || !(Transform{Quarter: 4}).Identity() {
		t.Error("zero rotation not reported as identity")
	}
	if (Transform{Quarter: 1}).Identity() || (Transform{FlipV: true}).Identity() {
		t.Error("non-trivial transform reported as identity")
	}
}

// --- Colors ---

func TestRGBAndPaletteString(t *testing.T) {
	if got := testBlue.Fill.String(); got != "#2121ff" {
		t.Errorf("RGB.String() = %q", got)
	}
	want := "{fill #2121ff stroke #000080 accent #ffb8ae}"
	if got := testBlue.String(); got != want {
		t.Errorf("Palette.String() = %q, want %q", got, want)
	}
}

func TestPaletteComparableAsKey(t *testing.T) {
	m := map[RecolorKey]int{}
	m[RecolorKey{Category: 1, Variant: 7, Palette: testRed}] = 1
	same := RecolorKey{Category: 1, Variant: 7, Palette: Palette{
		Fill: RGB{0xff, 0, 0}, Stroke: RGB{0x80, 0, 0}, Accent: RGB{0xff, 0xff, 0xff},
	}}
	if m[same] != 1 {
		t.Error("structurally equal keys did not collide")
	}
}
