package projection

import "github.com/Faultbox/projection/pkg/math"

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)

// NormalColor encodes a unit normal as a color, mapping [-1, 1] to [0, 1].
func NormalColor(n math.Vec3) Color {
	return RGB(n.X*0.5+0.5, n.Y*0.5+0.5, n.Z*0.5+0.5)
}

// Palette cycles through a fixed list of colors.
type Palette []Color

// At returns the color for index i, wrapping around. An empty palette
// returns White.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return White
	}
	return p[i%len(p)]
}
