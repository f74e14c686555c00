package main

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/mazesprite/arcade"
	"github.com/phanxgames/mazesprite/resource"
)

func openBundle(t *testing.T) *resource.Bundle {
	t.Helper()
	b, err := resource.Open(filepath.Join(t.TempDir(), "stage.res"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestPackArcadeDefaults(t *testing.T) {
	b := openBundle(t)
	err := pack(b, packOptions{
		name:        "arcade",
		sheet:       arcade.GenerateSheet(),
		theme:       arcade.ThemeYAML(),
		animations:  []byte("- name: full\n  frames: [pac_full]\n  ticks: 1\n"),
		checkArcade: true,
	})
	require.NoError(t, err)

	for _, kind := range []resource.Kind{resource.KindSheet, resource.KindTheme, resource.KindAnimations} {
		names, err := b.Names(kind)
		require.NoError(t, err)
		assert.Equal(t, []string{"arcade"}, names, "kind %s", kind)
	}
	names, err := b.Names(resource.KindAtlas)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPackRejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name string
		opts packOptions
	}{
		{"bad theme", packOptions{sheet: arcade.GenerateSheet(), theme: []byte("cache_capacity: -1")}},
		{"small sheet", packOptions{
			sheet: image.NewNRGBA(image.Rect(0, 0, 8, 8)), theme: arcade.ThemeYAML(), checkArcade: true,
		}},
		{"unknown sprite", packOptions{
			sheet: arcade.GenerateSheet(), theme: arcade.ThemeYAML(), checkArcade: true,
			animations: []byte("- name: x\n  frames: [nope]\n  ticks: 1\n"),
		}},
		{"atlas out of bounds", packOptions{
			sheet: image.NewNRGBA(image.Rect(0, 0, 8, 8)), theme: arcade.ThemeYAML(),
			atlas: []byte(`{"frames": {"a": {"frame": {"x": 4, "y": 0, "w": 8, "h": 8}}}}`),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := openBundle(t)
			tt.opts.name = "arcade"
			assert.Error(t, pack(b, tt.opts))
			names, err := b.Names(resource.KindSheet)
			require.NoError(t, err)
			assert.Empty(t, names)
		})
	}
}
