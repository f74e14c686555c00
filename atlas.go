package mazesprite

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"
	"strings"
)

// entry is the tagged variant stored per ID: a single rectangle when seq is
// nil, an ordered frame sequence otherwise.
type entry struct {
	single SpriteRect
	seq    []SpriteRect
}

func (e entry) frames() []SpriteRect {
	if e.seq != nil {
		return e.seq
	}
	return []SpriteRect{e.single}
}

// Atlas holds one source image and a map from symbolic sprite IDs to pixel
// rectangles inside it. An atlas is filled once at load time and is read-only
// afterwards; reads do no validation, so prove completeness with
// CheckCompleteness before the first frame is drawn.
type Atlas[ID comparable] struct {
	source  image.Image
	entries map[ID]entry
	order   []ID // registration order, for IDs()
}

// NewAtlas creates an empty atlas over the given source image.
func NewAtlas[ID comparable](source image.Image) *Atlas[ID] {
	return &Atlas[ID]{
		source:  source,
		entries: make(map[ID]entry),
	}
}

// Source returns the atlas source image.
func (a *Atlas[ID]) Source() image.Image {
	return a.source
}

// Register associates one or more rectangles with id. Several rectangles form
// a frame sequence in display order. Registering an ID twice, passing no
// rectangles, or passing a malformed or out-of-bounds rectangle is a
// programming error and panics.
func (a *Atlas[ID]) Register(id ID, rects ...SpriteRect) {
	if _, dup := a.entries[id]; dup {
		panic(fmt.Sprintf("mazesprite: atlas ID %v registered twice", id))
	}
	if len(rects) == 0 {
		panic(fmt.Sprintf("mazesprite: atlas ID %v registered with no rectangles", id))
	}
	for i, r := range rects {
		if !r.Valid() {
			panic(fmt.Sprintf("mazesprite: atlas ID %v frame %d: malformed rectangle %v", id, i, r))
		}
		if a.source != nil && !r.In(a.source.Bounds()) {
			panic(fmt.Sprintf("mazesprite: atlas ID %v frame %d: rectangle %v outside source bounds %v",
				id, i, r, a.source.Bounds()))
		}
	}
	var e entry
	if len(rects) == 1 {
		e.single = rects[0]
	} else {
		e.seq = append([]SpriteRect(nil), rects...)
	}
	a.entries[id] = e
	a.order = append(a.order, id)
}

// Rect returns the rectangle for id. For a sequence it returns the first
// frame. An unregistered id panics with *LookupError.
func (a *Atlas[ID]) Rect(id ID) SpriteRect {
	e, ok := a.entries[id]
	if !ok {
		panic(&LookupError{Kind: "atlas ID", Name: fmt.Sprint(id)})
	}
	if e.seq != nil {
		return e.seq[0]
	}
	return e.single
}

// Sequence returns the ordered frames for id. A single rectangle is returned
// as a length-1 sequence. The returned slice MUST NOT be mutated. An
// unregistered id panics with *LookupError.
func (a *Atlas[ID]) Sequence(id ID) []SpriteRect {
	e, ok := a.entries[id]
	if !ok {
		panic(&LookupError{Kind: "atlas ID", Name: fmt.Sprint(id)})
	}
	return e.frames()
}

// Lookup is the non-panicking form of Sequence.
func (a *Atlas[ID]) Lookup(id ID) ([]SpriteRect, bool) {
	e, ok := a.entries[id]
	if !ok {
		return nil, false
	}
	return e.frames(), true
}

// Len returns the number of registered IDs.
func (a *Atlas[ID]) Len() int {
	return len(a.entries)
}

// IDs returns the registered IDs in registration order.
func (a *Atlas[ID]) IDs() []ID {
	return append([]ID(nil), a.order...)
}

// CheckCompleteness verifies that every ID in declared has a registration.
// It returns an *IncompleteAtlasError naming all missing IDs, in declaration
// order, or nil when the atlas is complete.
func (a *Atlas[ID]) CheckCompleteness(declared []ID) error {
	var missing []string
	for _, id := range declared {
		if _, ok := a.entries[id]; !ok {
			missing = append(missing, fmt.Sprint(id))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	debugf("atlas incomplete: %d of %d IDs missing: %s",
		len(missing), len(declared), strings.Join(missing, ", "))
	return &IncompleteAtlasError{Missing: missing}
}

// MustCheckCompleteness is like CheckCompleteness but panics on failure.
func (a *Atlas[ID]) MustCheckCompleteness(declared []ID) {
	if err := a.CheckCompleteness(declared); err != nil {
		panic(err)
	}
}

// --- TexturePacker / Pixi JSON ---

// LoadAtlas parses TexturePacker hash-format JSON over the given source image.
// Every entry under "frames" becomes a single rectangle. The optional
// "animations" map (Pixi export) registers a frame sequence per name, built
// from the listed frame names in order.
func LoadAtlas(jsonData []byte, source image.Image) (*Atlas[string], error) {
	var doc struct {
		Frames     map[string]jsonFrame `json:"frames"`
		Textures   json.RawMessage      `json:"textures"`
		Animations map[string][]string  `json:"animations"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("mazesprite: failed to parse atlas JSON: %w", err)
	}
	if doc.Textures != nil {
		return nil, fmt.Errorf("mazesprite: multi-page atlas JSON is not supported, load one atlas per page")
	}
	if doc.Frames == nil {
		return nil, fmt.Errorf("mazesprite: atlas JSON has no \"frames\" key")
	}

	atlas := NewAtlas[string](source)
	var bounds image.Rectangle
	if source != nil {
		bounds = source.Bounds()
	}

	// Map iteration order is random; register sorted so IDs() is stable.
	names := make([]string, 0, len(doc.Frames))
	for name := range doc.Frames {
		names = append(names, name)
	}
	sort.Strings(names)

	rects := make(map[string]SpriteRect, len(names))
	for _, name := range names {
		f := doc.Frames[name]
		if f.Rotated {
			return nil, fmt.Errorf("mazesprite: frame %q is stored rotated, export without rotation", name)
		}
		r := frameToRect(f)
		if err := checkRect(r, bounds, source != nil); err != nil {
			return nil, fmt.Errorf("mazesprite: frame %q: %w", name, err)
		}
		rects[name] = r
		atlas.Register(name, r)
	}

	animNames := make([]string, 0, len(doc.Animations))
	for name := range doc.Animations {
		animNames = append(animNames, name)
	}
	sort.Strings(animNames)

	for _, name := range animNames {
		if _, dup := rects[name]; dup {
			return nil, fmt.Errorf("mazesprite: animation %q collides with a frame of the same name", name)
		}
		frameNames := doc.Animations[name]
		if len(frameNames) == 0 {
			return nil, fmt.Errorf("mazesprite: animation %q has no frames", name)
		}
		seq := make([]SpriteRect, 0, len(frameNames))
		for _, fn := range frameNames {
			r, ok := rects[fn]
			if !ok {
				return nil, fmt.Errorf("mazesprite: animation %q references unknown frame %q", name, fn)
			}
			seq = append(seq, r)
		}
		atlas.Register(name, seq...)
	}

	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
	Trimmed bool     `json:"trimmed"`
}

func frameToRect(f jsonFrame) SpriteRect {
	return SpriteRect{X: f.Frame.X, Y: f.Frame.Y, Width: f.Frame.W, Height: f.Frame.H}
}

// checkRect mirrors the panics in Register as errors, for loaders fed with
// external data.
func checkRect(r SpriteRect, bounds image.Rectangle, haveBounds bool) error {
	if !r.Valid() {
		return fmt.Errorf("malformed rectangle %v", r)
	}
	if haveBounds && !r.In(bounds) {
		return fmt.Errorf("rectangle %v outside source bounds %v", r, bounds)
	}
	return nil
}
