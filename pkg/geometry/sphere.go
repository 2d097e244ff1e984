package geometry

import (
	gomath "math"

	"github.com/Faultbox/projection/pkg/math"
)

// Sphere is a center and a radius.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Polygons tessellates the sphere into latitude/longitude triangles with
// radial normals. Slices run around the Y axis, stacks from +Y to -Y.
// The zero-area triangles at the poles are omitted.
func (s Sphere) Polygons(slices, stacks int) []Polygon[SimpleVertex] {
	if slices < 3 || stacks < 2 {
		return nil
	}
	at := func(i, j int) SimpleVertex {
		theta := 2 * gomath.Pi * float64(i) / float64(slices)
		phi := gomath.Pi * float64(j) / float64(stacks)
		dir := math.Vec3{
			X: float32(gomath.Cos(theta) * gomath.Sin(phi)),
			Y: float32(gomath.Cos(phi)),
			Z: float32(gomath.Sin(theta) * gomath.Sin(phi)),
		}
		return SimpleVertex{
			Pos:  s.Center.Add(dir.Scale(s.Radius)),
			Norm: dir,
			UV:   math.Vec2{X: float32(i) / float32(slices), Y: float32(j) / float32(stacks)},
		}
	}
	polys := make([]Polygon[SimpleVertex], 0, 2*slices*stacks)
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			v1, v2 := at(i, j), at(i+1, j)
			v3, v4 := at(i+1, j+1), at(i, j+1)
			if j > 0 {
				polys = append(polys, NewPolygon(v1, v2, v3))
			}
			if j < stacks-1 {
				polys = append(polys, NewPolygon(v1, v3, v4))
			}
		}
	}
	return polys
}
