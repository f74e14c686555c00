package mazesprite

import (
	"bytes"
	"strings"
	"testing"
)

// captureDebug enables debug mode with output going to the returned buffer
// for the rest of the test.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevMode := debugOut, globalDebug
	debugOut = &buf
	SetDebugMode(true)
	t.Cleanup(func() {
		debugOut = prevOut
		SetDebugMode(prevMode)
	})
	return &buf
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_Toggle(t *testing.T) {
	prev := DebugMode()
	defer SetDebugMode(prev)

	SetDebugMode(true)
	if !DebugMode() {
		t.Error("DebugMode() = false after SetDebugMode(true)")
	}
	SetDebugMode(false)
	if DebugMode() {
		t.Error("DebugMode() = true after SetDebugMode(false)")
	}
}

func TestDebugMode_SilentWhenOff(t *testing.T) {
	buf := captureDebug(t)
	SetDebugMode(false)

	cache := NewRecolorCache(RecolorCacheConfig{})
	cache.GetOrCreate(RecolorKey{Palette: testRed}, mazeSource(paintedSheet(testBlue)), testBlue)
	cache.Dispose()

	if buf.Len() != 0 {
		t.Errorf("debug output with debug off: %q", buf.String())
	}
}

func TestDebugMode_CacheMissAndDispose(t *testing.T) {
	buf := captureDebug(t)

	cache := NewRecolorCache(RecolorCacheConfig{})
	cache.GetOrCreate(RecolorKey{Category: 1, Variant: 7, Palette: testRed}, mazeSource(paintedSheet(testBlue)), testBlue)
	cache.Dispose()

	out := buf.String()
	for _, want := range []string{
		"[mazesprite] recolor cache: miss category 1 variant 7",
		"[mazesprite] recolor cache dispose: entries: 1 | hits: 0 | misses: 1 | substitutions: 1 | evictions: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugMode_EvictionLogged(t *testing.T) {
	buf := captureDebug(t)

	cache := NewRecolorCache(RecolorCacheConfig{Capacity: 1})
	src := mazeSource(paintedSheet(testBlue))
	cache.GetOrCreate(RecolorKey{Palette: testRed}, src, testBlue)
	cache.GetOrCreate(RecolorKey{Palette: testGreen}, src, testBlue)

	if !strings.Contains(buf.String(), "recolor cache: evicted") {
		t.Errorf("eviction not logged:\n%s", buf.String())
	}
}

func TestDebugMode_IncompleteAtlasLogged(t *testing.T) {
	buf := captureDebug(t)

	atlas := NewAtlas[testID](newTestSheet(64, 64))
	atlas.Register(idA, Rect(0, 0, 8, 8))
	if err := atlas.CheckCompleteness([]testID{idA, idB}); err == nil {
		t.Fatal("expected completeness error")
	}
	if !strings.HasPrefix(buf.String(), "[mazesprite] ") {
		t.Errorf("debug output = %q, want prefixed line", buf.String())
	}
}
