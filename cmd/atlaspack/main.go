// Command atlaspack packs a sprite sheet, its theme and its animations into a
// resource bundle that games load at startup.
//
//	atlaspack -sheet maze.png -theme theme.yaml -animations anims.yaml -out stage.res
//
// Without -sheet or -theme the procedural arcade sheet and default theme are
// packed, which is handy for trying the examples.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/phanxgames/mazesprite"
	"github.com/phanxgames/mazesprite/arcade"
	"github.com/phanxgames/mazesprite/resource"
)

var (
	sheetPath      string
	themePath      string
	animationsPath string
	atlasPath      string
	bundleName     string
	resourcePath   string
	checkArcade    bool
)

func parseFlags() {
	flag.StringVar(&sheetPath, "sheet", "",
		"Path to the sprite sheet PNG. Empty packs the generated arcade sheet.")
	flag.StringVar(&themePath, "theme", "",
		"Path to the theme YAML. Empty packs the default arcade theme.")
	flag.StringVar(&animationsPath, "animations", "",
		"Path to the animations YAML (optional).")
	flag.StringVar(&atlasPath, "atlas", "",
		"Path to a TexturePacker JSON atlas for the sheet (optional).")
	flag.StringVar(&bundleName, "name", "arcade",
		"Name the records are stored under.")
	flag.StringVar(&resourcePath, "out", "./stage.res",
		"Resource file to write.")
	flag.BoolVar(&checkArcade, "arcade", true,
		"Validate the sheet against the arcade sprite layout.")

	flag.Parse()
}

func main() {
	parseFlags()

	bundle, err := resource.Open(resourcePath)
	handleError(err)
	defer bundle.Close()

	opts := packOptions{
		name:        bundleName,
		checkArcade: checkArcade,
	}

	if sheetPath != "" {
		opts.sheet, err = readImage(sheetPath)
		handleError(err)
	} else {
		opts.sheet = arcade.GenerateSheet()
	}

	if themePath != "" {
		opts.theme, err = os.ReadFile(themePath)
		handleError(err)
	} else {
		opts.theme = arcade.ThemeYAML()
	}

	if animationsPath != "" {
		opts.animations, err = os.ReadFile(animationsPath)
		handleError(err)
	}
	if atlasPath != "" {
		opts.atlas, err = os.ReadFile(atlasPath)
		handleError(err)
	}

	handleError(pack(bundle, opts))
	fmt.Printf("packed %q into %s\n", bundleName, resourcePath)
}

type packOptions struct {
	name        string
	sheet       image.Image
	theme       []byte
	animations  []byte
	atlas       []byte
	checkArcade bool
}

// pack validates everything before writing anything, so a bad input leaves
// the bundle untouched.
func pack(b *resource.Bundle, opts packOptions) error {
	if _, err := mazesprite.LoadTheme(opts.theme); err != nil {
		return err
	}
	if opts.atlas != nil {
		if _, err := mazesprite.LoadAtlas(opts.atlas, opts.sheet); err != nil {
			return err
		}
	}
	if opts.checkArcade {
		atlas, err := arcade.NewSpriteSheet(opts.sheet)
		if err != nil {
			return err
		}
		if opts.animations != nil {
			if _, err := mazesprite.LoadAnimationSet(opts.animations, atlas, arcade.ParseSpriteID); err != nil {
				return err
			}
		}
	}

	if err := b.PutSheet(opts.name, opts.sheet); err != nil {
		return err
	}
	if err := b.Put(resource.KindTheme, opts.name, opts.theme); err != nil {
		return err
	}
	if opts.animations != nil {
		if err := b.Put(resource.KindAnimations, opts.name, opts.animations); err != nil {
			return err
		}
	}
	if opts.atlas != nil {
		if err := b.Put(resource.KindAtlas, opts.name, opts.atlas); err != nil {
			return err
		}
	}
	return nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func handleError(err error) {
	if err != nil {
		panic(err)
	}
}
