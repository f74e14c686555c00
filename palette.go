package mazesprite

import (
	"image"

	"golang.org/x/image/draw"
)

// Substitute copies region out of src into a new (0,0)-based NRGBA image and
// swaps every exact palette match: a pixel whose RGB equals from.Fill,
// from.Stroke or from.Accent (checked in that order) becomes the color at
// the same position in to. Alpha is preserved and fully transparent pixels
// are left alone. Everything else passes through unchanged. src is never
// modified.
//
// Source art is painted with flat, exact palette colors, so exact matching is
// all that is needed; this is not a color-distance operation.
func Substitute(src image.Image, region SpriteRect, from, to Palette) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, region.Width, region.Height))
	draw.Copy(dst, image.Point{}, src, region.Image(), draw.Src, nil)
	if from == to {
		return dst
	}

	fromC := [3]RGB{from.Fill, from.Stroke, from.Accent}
	toC := [3]RGB{to.Fill, to.Stroke, to.Accent}

	pix := dst.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		c := RGB{pix[i], pix[i+1], pix[i+2]}
		for k := range fromC {
			if c == fromC[k] {
				pix[i] = toC[k].R
				pix[i+1] = toC[k].G
				pix[i+2] = toC[k].B
				break
			}
		}
	}
	return dst
}

// SubstituteFunc is the signature of Substitute, injectable into a
// RecolorCache.
type SubstituteFunc func(src image.Image, region SpriteRect, from, to Palette) *image.NRGBA
