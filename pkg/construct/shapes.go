package construct

import (
	gomath "math"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

func unitCircle(i, segments int) math.Vec2 {
	a := 2 * gomath.Pi * float64(i) / float64(segments)
	return math.Vec2{X: float32(gomath.Cos(a)), Y: float32(gomath.Sin(a))}
}

// Circle returns a disc in the XY plane facing +Z: a center vertex and
// segments rim vertices, fanned into segments triangles. Fewer than three
// segments yields an empty mesh.
func Circle(radius float32, segments int) Mesh {
	if segments < 3 {
		return Mesh{}
	}
	m := Mesh{
		Vertices: make([]geometry.SimpleVertex, 0, segments+1),
		Indices:  make([]uint32, 0, 3*segments),
	}
	m.Vertices = append(m.Vertices, geometry.SimpleVertex{Norm: math.Vec3{Z: 1}})
	for i := 0; i < segments; i++ {
		p := unitCircle(i, segments).Scale(radius)
		m.Vertices = append(m.Vertices, geometry.SimpleVertex{Pos: p.Extend(0), Norm: math.Vec3{Z: 1}, UV: p})
	}
	n := uint32(segments)
	for i := uint32(0); i < n; i++ {
		m.Indices = append(m.Indices, 0, i+1, (i+1)%n+1)
	}
	return m
}

// Cylinder returns a capped cylinder along Z centered on the origin. The
// caps are flat-shaded, the side uses radial normals.
func Cylinder(radius, depth float32, segments int) Mesh {
	if segments < 3 {
		return Mesh{}
	}
	half := depth / 2
	disc := Circle(radius, segments)
	top := disc.Offset(math.Vec3{Z: half})
	bottom := mesh.Flipped(disc).Offset(math.Vec3{Z: -half})

	side := func(p math.Vec2, z, u, v float32) geometry.SimpleVertex {
		return geometry.SimpleVertex{
			Pos:  p.Extend(z),
			Norm: p.Extend(0).Normalize(),
			UV:   math.Vec2{X: u, Y: v},
		}
	}
	quads := make([]geometry.Quad[geometry.SimpleVertex], 0, segments)
	for i := 0; i < segments; i++ {
		p1 := unitCircle(i, segments).Scale(radius)
		p2 := unitCircle(i+1, segments).Scale(radius)
		u1 := float32(i) / float32(segments)
		u2 := float32(i+1) / float32(segments)
		quads = append(quads, geometry.NewQuad(
			side(p1, -half, u1, 0),
			side(p2, -half, u2, 0),
			side(p1, half, u1, 1),
			side(p2, half, u2, 1),
		))
	}
	return mesh.Merge(top, bottom, mesh.FromQuads[uint32](quads))
}

// BoxMesh tessellates a box into twelve outward-facing triangles.
func BoxMesh(b geometry.Box) Mesh {
	return mesh.FromPolygons[uint32](b.Polygons())
}

// SphereMesh tessellates a sphere with radial normals.
func SphereMesh(s geometry.Sphere, slices, stacks int) Mesh {
	return mesh.FromPolygons[uint32](s.Polygons(slices, stacks))
}

// RegularPolygon returns a counter-clockwise outline with sides vertices
// on a circle of the given radius.
func RegularPolygon(sides int, radius float32) []math.Vec2 {
	out := make([]math.Vec2, sides)
	for i := range out {
		out[i] = unitCircle(i, sides).Scale(radius)
	}
	return out
}

// Star returns a counter-clockwise star outline alternating between the
// outer and inner radius, starting at +Y.
func Star(points int, inner, outer float32) []math.Vec2 {
	out := make([]math.Vec2, 2*points)
	for i := range out {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := gomath.Pi/2 + gomath.Pi*float64(i)/float64(points)
		out[i] = math.Vec2{X: float32(gomath.Cos(a)) * r, Y: float32(gomath.Sin(a)) * r}
	}
	return out
}

// Rectangle returns a counter-clockwise w by h outline centered on the origin.
func Rectangle(w, h float32) []math.Vec2 {
	x, y := w/2, h/2
	return []math.Vec2{{X: -x, Y: -y}, {X: x, Y: -y}, {X: x, Y: y}, {X: -x, Y: y}}
}
