package mazesprite

import (
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// defaultCacheCapacity is used when RecolorCacheConfig.Capacity is zero.
const defaultCacheCapacity = 64

// RecolorKey uniquely identifies one recolored image: the asset category
// (e.g. a map category), the variant within it (e.g. a maze number) and the
// palette the art is recolored to.
type RecolorKey struct {
	Category int
	Variant  int
	Palette  Palette
}

// VariantKey is a RecolorKey without the palette, used to request several
// colorings of the same asset.
type VariantKey struct {
	Category int
	Variant  int
}

// With returns the full key for palette p.
func (k VariantKey) With(p Palette) RecolorKey {
	return RecolorKey{Category: k.Category, Variant: k.Variant, Palette: p}
}

// Region is a rectangle inside an image, typically an atlas sprite.
type Region struct {
	Image image.Image
	Rect  SpriteRect
}

// CachedImage is the result of a recolor request. A recolored image is a
// standalone copy whose Bounds start at (0,0). A passthrough result, returned
// when no recoloring was needed, references the original atlas image and
// carries the original region as Bounds.
type CachedImage struct {
	Image       image.Image
	Bounds      SpriteRect
	Palette     Palette
	Passthrough bool
}

// Region returns the drawable region of c.
func (c *CachedImage) Region() Region {
	return Region{Image: c.Image, Rect: c.Bounds}
}

// RecolorCacheConfig configures a RecolorCache. The zero value is usable.
type RecolorCacheConfig struct {
	// Capacity bounds the number of retained recolored images. The least
	// recently used entry is evicted when a new one would exceed it. Zero
	// means defaultCacheCapacity.
	Capacity int
	// OnEvict, when set, is called for every entry that leaves the cache,
	// by LRU eviction or Dispose. It runs with the cache locked and must not
	// call back into the cache.
	OnEvict func(key RecolorKey, img *CachedImage)
	// Rand, when set, shuffles candidate palettes in CreateVariants. Nil
	// keeps candidate order, which makes variant selection deterministic.
	Rand *rand.Rand
	// Substitute replaces the substitution function. Nil means Substitute.
	Substitute SubstituteFunc
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Entries       int
	Hits          uint64
	Misses        uint64
	Substitutions uint64
	Evictions     uint64
}

// RecolorCache memoizes palette substitution per RecolorKey. Each distinct
// key is substituted exactly once while its entry is retained, and every
// caller asking for that key receives the same *CachedImage. Entries are
// held in a bounded LRU; an evicted key is silently recomputed on its next
// request. Call Dispose when the owning session ends.
//
// RecolorCache is safe for concurrent use. Lookup and substitution happen
// under one lock, so two goroutines missing the same key never both run the
// substitution.
type RecolorCache struct {
	mu        sync.Mutex
	entries   *simplelru.LRU[RecolorKey, *CachedImage]
	capacity  int
	onEvict   func(RecolorKey, *CachedImage)
	rng       *rand.Rand
	subst     SubstituteFunc
	stats     CacheStats
	disposing bool
}

// NewRecolorCache creates a cache with the given configuration.
func NewRecolorCache(cfg RecolorCacheConfig) *RecolorCache {
	c := &RecolorCache{
		capacity: cfg.Capacity,
		onEvict:  cfg.OnEvict,
		rng:      cfg.Rand,
		subst:    cfg.Substitute,
	}
	if c.capacity <= 0 {
		c.capacity = defaultCacheCapacity
	}
	if c.subst == nil {
		c.subst = Substitute
	}
	c.entries = c.newLRU()
	return c
}

func (c *RecolorCache) newLRU() *simplelru.LRU[RecolorKey, *CachedImage] {
	l, err := simplelru.NewLRU[RecolorKey, *CachedImage](c.capacity, c.evicted)
	if err != nil {
		// Only reachable with a non-positive size, which NewRecolorCache rules out.
		panic(fmt.Sprintf("mazesprite: recolor cache: %v", err))
	}
	return l
}

// evicted runs inside LRU operations, with c.mu held.
func (c *RecolorCache) evicted(key RecolorKey, img *CachedImage) {
	if !c.disposing {
		c.stats.Evictions++
		debugf("recolor cache: evicted category %d variant %d palette %v",
			key.Category, key.Variant, key.Palette)
	}
	if c.onEvict != nil {
		c.onEvict(key, img)
	}
}

// GetOrCreate returns the recolored image for key, substituting from → key.Palette
// over the region supplied by source on a miss. source is only called when
// work is needed. When key.Palette equals from, a passthrough result that
// references the source region is returned and nothing is stored.
//
// The source region must be valid; rectangles are checked when the atlas is
// built, not here.
func (c *RecolorCache) GetOrCreate(key RecolorKey, source func() Region, from Palette) *CachedImage {
	if key.Palette == from {
		r := source()
		return &CachedImage{Image: r.Image, Bounds: r.Rect, Palette: from, Passthrough: true}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.entries.Get(key); ok {
		c.stats.Hits++
		return img
	}
	c.stats.Misses++

	r := source()
	buf := c.subst(r.Image, r.Rect, from, key.Palette)
	c.stats.Substitutions++
	img := &CachedImage{
		Image:   buf,
		Bounds:  SpriteRect{Width: r.Rect.Width, Height: r.Rect.Height},
		Palette: key.Palette,
	}
	c.entries.Add(key, img)
	debugf("recolor cache: miss category %d variant %d palette %v (%d entries)",
		key.Category, key.Variant, key.Palette, c.entries.Len())
	return img
}

// CreateVariants returns count recolorings of the asset named by prefix,
// drawn from candidates with excluding and duplicate palettes removed. While
// count does not exceed the remaining candidates, every returned variant has
// a different palette; beyond that the selection wraps around. Candidates are
// used in order unless the cache was configured with a Rand. Panics when no
// candidate remains, which is a configuration error.
func (c *RecolorCache) CreateVariants(prefix VariantKey, count int, candidates []Palette, excluding Palette,
	source func() Region, from Palette) []*CachedImage {
	if count <= 0 {
		return nil
	}

	pool := make([]Palette, 0, len(candidates))
	seen := make(map[Palette]bool, len(candidates))
	for _, p := range candidates {
		if p == excluding || seen[p] {
			continue
		}
		seen[p] = true
		pool = append(pool, p)
	}
	if len(pool) == 0 {
		panic(fmt.Sprintf("mazesprite: no variant palettes left for category %d variant %d after excluding %v",
			prefix.Category, prefix.Variant, excluding))
	}

	if c.rng != nil {
		c.mu.Lock()
		c.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		c.mu.Unlock()
	}

	out := make([]*CachedImage, count)
	for i := range out {
		out[i] = c.GetOrCreate(prefix.With(pool[i%len(pool)]), source, from)
	}
	return out
}

// RepeatVariant returns the single recoloring of prefix to palette, count
// times. All elements are the same *CachedImage; use it for two-tone
// flashing where every step shows the same coloring.
func (c *RecolorCache) RepeatVariant(prefix VariantKey, count int, palette Palette,
	source func() Region, from Palette) []*CachedImage {
	if count <= 0 {
		return nil
	}
	img := c.GetOrCreate(prefix.With(palette), source, from)
	out := make([]*CachedImage, count)
	for i := range out {
		out[i] = img
	}
	return out
}

// Contains reports whether key currently has a retained entry, without
// touching its recency.
func (c *RecolorCache) Contains(key RecolorKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Contains(key)
}

// Len returns the number of retained entries.
func (c *RecolorCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *RecolorCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.stats
	st.Entries = c.entries.Len()
	return st
}

// Dispose drops every entry immediately. OnEvict is called for each one.
// Later requests behave as on a newly created cache.
func (c *RecolorCache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	debugCacheStats("recolor cache dispose", CacheStats{
		Entries:       c.entries.Len(),
		Hits:          c.stats.Hits,
		Misses:        c.stats.Misses,
		Substitutions: c.stats.Substitutions,
		Evictions:     c.stats.Evictions,
	})
	c.disposing = true
	c.entries.Purge()
	c.disposing = false
	c.stats = CacheStats{}
}

// DumpPNG writes every retained recolored image to dir as a PNG file named
// after its key, and returns the paths written. Meant for checking palette
// authoring, not for runtime use.
func (c *RecolorCache) DumpPNG(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mazesprite: dump: mkdir %s: %w", dir, err)
	}

	c.mu.Lock()
	keys := c.entries.Keys()
	imgs := make([]*CachedImage, 0, len(keys))
	for _, k := range keys {
		img, _ := c.entries.Peek(k)
		imgs = append(imgs, img)
	}
	c.mu.Unlock()

	paths := make([]string, 0, len(keys))
	for i, k := range keys {
		name := sanitizeLabel(fmt.Sprintf("category%d-variant%d-%s-%s-%s",
			k.Category, k.Variant, hexLabel(k.Palette.Fill), hexLabel(k.Palette.Stroke), hexLabel(k.Palette.Accent)))
		path := filepath.Join(dir, name+".png")
		if err := writePNG(path, imgs[i].Image); err != nil {
			return paths, fmt.Errorf("mazesprite: dump: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func hexLabel(c RGB) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
