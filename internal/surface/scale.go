package surface

import (
	"image"

	"golang.org/x/image/draw"
)

// Scaled returns src resampled to width x height. When the sizes already
// match it still returns a fresh *image.RGBA copy, so callers may hand the
// pixels to code that keeps them.
func Scaled(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
