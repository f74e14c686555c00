package mazesprite

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a hex color string such as "#2121ff".
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a hex string: %w", value.Line, err)
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as "#rrggbb".
func (c RGB) MarshalYAML() (any, error) {
	return c.String(), nil
}

// MazeTheme binds the palette a maze's art is painted with to its recolor
// cache coordinates.
type MazeTheme struct {
	Category int     `yaml:"category"`
	Variant  int     `yaml:"variant"`
	Palette  Palette `yaml:"palette"`
}

// CycleConfig describes a ColorCycle.
type CycleConfig struct {
	StepTicks int   `yaml:"step_ticks"`
	Smooth    bool  `yaml:"smooth"`
	Colors    []RGB `yaml:"colors"`
}

// ThemeConfig is the explicit color and cache configuration handed to the
// atlas, recolor and animation components. Nothing in the package reads
// colors from globals.
type ThemeConfig struct {
	// CacheCapacity bounds the recolor cache; zero uses the default.
	CacheCapacity int `yaml:"cache_capacity"`
	// Mazes lists the source palette of every maze's art.
	Mazes []MazeTheme `yaml:"mazes"`
	// LevelPalettes are the maze colorings used level by level, wrapping
	// around after the last one.
	LevelPalettes []Palette `yaml:"level_palettes"`
	// FlashPalettes are the candidates for multi-color maze flashing.
	FlashPalettes []Palette `yaml:"flash_palettes"`
	// FlashTwoTone, when set, is the single coloring used for classic
	// two-tone flashing instead of FlashPalettes.
	FlashTwoTone *Palette `yaml:"flash_two_tone"`
	// Waiting is the color cycle of the attract/waiting screen text.
	Waiting CycleConfig `yaml:"waiting"`
}

// LoadTheme parses YAML theme data and validates it.
func LoadTheme(data []byte) (*ThemeConfig, error) {
	var t ThemeConfig
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("mazesprite: failed to parse theme YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate reports every problem in t.
func (t *ThemeConfig) Validate() error {
	var errs []error
	if t.CacheCapacity < 0 {
		errs = append(errs, fmt.Errorf("cache_capacity must not be negative, got %d", t.CacheCapacity))
	}
	seen := make(map[VariantKey]bool, len(t.Mazes))
	for _, m := range t.Mazes {
		k := VariantKey{Category: m.Category, Variant: m.Variant}
		if seen[k] {
			errs = append(errs, fmt.Errorf("maze category %d variant %d defined twice", m.Category, m.Variant))
		}
		seen[k] = true
	}
	if len(t.Waiting.Colors) > 0 && t.Waiting.StepTicks <= 0 {
		errs = append(errs, fmt.Errorf("waiting.step_ticks must be positive, got %d", t.Waiting.StepTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("mazesprite: invalid theme: %w", errors.Join(errs...))
	}
	return nil
}

// MazePalette returns the source palette of the given maze.
func (t *ThemeConfig) MazePalette(category, variant int) (Palette, bool) {
	for _, m := range t.Mazes {
		if m.Category == category && m.Variant == variant {
			return m.Palette, true
		}
	}
	return Palette{}, false
}

// LevelPalette returns the maze coloring for level (1-based), cycling
// through LevelPalettes. The second result is false when none are defined.
func (t *ThemeConfig) LevelPalette(level int) (Palette, bool) {
	n := len(t.LevelPalettes)
	if n == 0 {
		return Palette{}, false
	}
	i := (max(level, 1) - 1) % n
	return t.LevelPalettes[i], true
}

// CacheConfig returns a RecolorCacheConfig sized by the theme.
func (t *ThemeConfig) CacheConfig() RecolorCacheConfig {
	return RecolorCacheConfig{Capacity: t.CacheCapacity}
}

// WaitingCycle builds the waiting-screen color cycle, or nil when the theme
// defines none.
func (t *ThemeConfig) WaitingCycle() *ColorCycle {
	if len(t.Waiting.Colors) == 0 {
		return nil
	}
	if t.Waiting.Smooth {
		return NewSmoothCycle(t.Waiting.StepTicks, nil, t.Waiting.Colors...)
	}
	return NewStepCycle(t.Waiting.StepTicks, t.Waiting.Colors...)
}

// --- Animation YAML ---

// animationMeta is one animation entry in an animation set YAML file.
type animationMeta struct {
	Name   string   `yaml:"name"`
	Frames []string `yaml:"frames"`
	Ticks  int      `yaml:"ticks"`
	Loop   bool     `yaml:"loop"`
}

// LoadAnimationSet parses a YAML list of animations whose frames name atlas
// IDs. A sequence ID contributes all of its frames in order. parseID turns a
// name from the file into an atlas ID. Unknown names and invalid
// definitions are all reported in the returned error.
//
//	- name: munching
//	  frames: [pac_munching]
//	  ticks: 2
//	  loop: true
func LoadAnimationSet[ID comparable](data []byte, atlas *Atlas[ID], parseID func(string) (ID, bool)) (*AnimationSet, error) {
	var metas []animationMeta
	if err := yaml.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("mazesprite: failed to parse animations YAML: %w", err)
	}

	var errs []error
	defs := make([]AnimationDef, 0, len(metas))
	for _, m := range metas {
		def := AnimationDef{Name: m.Name, FrameTicks: m.Ticks, Loop: m.Loop}
		for _, name := range m.Frames {
			id, ok := parseID(name)
			if !ok {
				errs = append(errs, fmt.Errorf("animation %q: unknown sprite %q", m.Name, name))
				continue
			}
			frames, ok := atlas.Lookup(id)
			if !ok {
				errs = append(errs, fmt.Errorf("animation %q: sprite %q not in atlas", m.Name, name))
				continue
			}
			def.Frames = append(def.Frames, frames...)
		}
		defs = append(defs, def)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("mazesprite: invalid animations: %w", errors.Join(errs...))
	}
	return NewAnimationSet(defs...)
}
