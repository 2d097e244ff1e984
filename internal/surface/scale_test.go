package surface

import (
	"image"
	"image/color"
	"testing"
)

func TestScaledCopiesAtSameSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 2, color.RGBA{R: 255, A: 255})

	dst := Scaled(src, 4, 4)
	if dst == src {
		t.Fatal("expected a copy")
	}
	if got := dst.RGBAAt(1, 2); got.R != 255 {
		t.Errorf("pixel = %+v, want red", got)
	}
}

func TestScaledResizes(t *testing.T) {
	src := image.NewUniform(color.RGBA{G: 255, A: 255})
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, src.C)
		}
	}

	dst := Scaled(img, 25, 7)
	if b := dst.Bounds(); b.Dx() != 25 || b.Dy() != 7 {
		t.Fatalf("bounds = %v", b)
	}
	if got := dst.RGBAAt(12, 3); got.G < 250 {
		t.Errorf("pixel = %+v, want green", got)
	}
}
