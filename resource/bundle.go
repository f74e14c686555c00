// Package resource stores packed sprite assets in a single bbolt file: sheet
// images, theme YAML and animation YAML, each kind in its own bucket and
// keyed by name.
package resource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/phanxgames/mazesprite"
)

// Kind names a bucket of the bundle.
type Kind string

const (
	KindSheet      Kind = "sheets"
	KindTheme      Kind = "themes"
	KindAnimations Kind = "animations"
	KindAtlas      Kind = "atlases"
)

var kinds = []Kind{KindSheet, KindTheme, KindAnimations, KindAtlas}

// ErrNotFound is returned by Get when a record is missing.
var ErrNotFound = errors.New("resource: not found")

// Bundle is an open resource file.
type Bundle struct {
	db *bolt.DB
}

// Open opens or creates the bundle at path and makes sure every bucket
// exists.
func Open(path string) (*Bundle, error) {
	db, err := bolt.Open(path, 0666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("resource: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, k := range kinds {
			if _, err := tx.CreateBucketIfNotExists([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("resource: create buckets: %w", err)
	}
	return &Bundle{db: db}, nil
}

// Close releases the file.
func (b *Bundle) Close() error {
	return b.db.Close()
}

// Path returns the file the bundle lives in.
func (b *Bundle) Path() string {
	return b.db.Path()
}

// Put stores data under kind/name, replacing any previous record.
func (b *Bundle) Put(kind Kind, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("resource: empty %s name", kind)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(kind))
		if buck == nil {
			return fmt.Errorf("resource: unknown kind %q", kind)
		}
		return buck.Put([]byte(name), data)
	})
}

// Get returns a copy of the record kind/name. Missing records wrap
// ErrNotFound.
func (b *Bundle) Get(kind Kind, name string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(kind))
		if buck == nil {
			return fmt.Errorf("resource: unknown kind %q", kind)
		}
		v := buck.Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
		}
		// bbolt memory is only valid inside the transaction.
		out = bytes.Clone(v)
		return nil
	})
	return out, err
}

// Delete removes kind/name. Deleting a missing record is not an error.
func (b *Bundle) Delete(kind Kind, name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(kind))
		if buck == nil {
			return fmt.Errorf("resource: unknown kind %q", kind)
		}
		return buck.Delete([]byte(name))
	})
}

// Names lists the records of kind in key order.
func (b *Bundle) Names(kind Kind) ([]string, error) {
	var names []string
	err := b.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(kind))
		if buck == nil {
			return fmt.Errorf("resource: unknown kind %q", kind)
		}
		return buck.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// PutSheet stores img PNG-encoded.
func (b *Bundle) PutSheet(name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("resource: encode sheet %q: %w", name, err)
	}
	return b.Put(KindSheet, name, buf.Bytes())
}

// Sheet decodes the sheet image stored under name.
func (b *Bundle) Sheet(name string) (image.Image, error) {
	data, err := b.Get(KindSheet, name)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("resource: decode sheet %q: %w", name, err)
	}
	return img, nil
}

// Theme parses the theme stored under name.
func (b *Bundle) Theme(name string) (*mazesprite.ThemeConfig, error) {
	data, err := b.Get(KindTheme, name)
	if err != nil {
		return nil, err
	}
	return mazesprite.LoadTheme(data)
}

// Atlas builds a string-keyed atlas from the JSON atlas record name over the
// sheet of the same name.
func (b *Bundle) Atlas(name string) (*mazesprite.Atlas[string], error) {
	data, err := b.Get(KindAtlas, name)
	if err != nil {
		return nil, err
	}
	sheet, err := b.Sheet(name)
	if err != nil {
		return nil, err
	}
	return mazesprite.LoadAtlas(data, sheet)
}

// AnimationSet parses the animations stored under name against atlas.
func AnimationSet[ID comparable](b *Bundle, name string, atlas *mazesprite.Atlas[ID], parseID func(string) (ID, bool)) (*mazesprite.AnimationSet, error) {
	data, err := b.Get(KindAnimations, name)
	if err != nil {
		return nil, err
	}
	return mazesprite.LoadAnimationSet(data, atlas, parseID)
}
