package mazesprite

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorCycle maps a game tick to a color by walking a fixed list of colors,
// spending StepTicks ticks on each. A stepped cycle jumps between colors; a
// smooth cycle eases from each color to the next through Lab space.
//
// Cycles are pure functions of the tick: there is no internal clock, so any
// number of screens can share one and stay in phase with the game loop.
type ColorCycle struct {
	colors    []RGB
	stepTicks int
	tween     *gween.Tween // nil for stepped cycles
}

// NewStepCycle creates a cycle that shows each color for stepTicks ticks.
func NewStepCycle(stepTicks int, colors ...RGB) *ColorCycle {
	return newColorCycle(stepTicks, nil, colors)
}

// NewSmoothCycle creates a cycle that blends from each color to the next over
// stepTicks ticks using the easing function fn (ease.Linear when nil).
func NewSmoothCycle(stepTicks int, fn ease.TweenFunc, colors ...RGB) *ColorCycle {
	if fn == nil {
		fn = ease.Linear
	}
	return newColorCycle(stepTicks, fn, colors)
}

func newColorCycle(stepTicks int, fn ease.TweenFunc, colors []RGB) *ColorCycle {
	if stepTicks <= 0 {
		panic(fmt.Sprintf("mazesprite: color cycle step ticks must be positive, got %d", stepTicks))
	}
	if len(colors) == 0 {
		panic("mazesprite: color cycle needs at least one color")
	}
	c := &ColorCycle{
		colors:    append([]RGB(nil), colors...),
		stepTicks: stepTicks,
	}
	if fn != nil {
		c.tween = gween.New(0, 1, float32(stepTicks), fn)
	}
	return c
}

// Period returns the number of ticks in one full cycle.
func (c *ColorCycle) Period() int {
	return c.stepTicks * len(c.colors)
}

// Step returns the index of the color shown (or blended from) at tick.
func (c *ColorCycle) Step(tick uint64) int {
	return int((tick / uint64(c.stepTicks)) % uint64(len(c.colors)))
}

// At returns the color for tick.
func (c *ColorCycle) At(tick uint64) RGB {
	i := c.Step(tick)
	if c.tween == nil || len(c.colors) == 1 {
		return c.colors[i]
	}
	phase := float32(tick % uint64(c.stepTicks))
	t, _ := c.tween.Set(phase)
	from := toColorful(c.colors[i])
	to := toColorful(c.colors[(i+1)%len(c.colors)])
	return fromColorful(from.BlendLab(to, float64(t)))
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseRGB parses "#rrggbb", "#rgb" or the same without the leading '#'.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("mazesprite: bad color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustRGB is like ParseRGB but panics on error. Meant for color literals.
func MustRGB(s string) RGB {
	c, err := ParseRGB(s)
	if err != nil {
		panic(err)
	}
	return c
}
