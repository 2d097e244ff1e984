package construct

import (
	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

func rotateAbout(p math.Vec3, axis geometry.Line, angle float32) math.Vec3 {
	q := math.QuatFromAxisAngle(axis.Direction(), angle)
	return axis.Point().Add(q.Rotate(p.Sub(axis.Point())))
}

// stepAngle returns the angle of step k of n between from and to. Adjacent
// sweeps share the same computation, so seams match exactly.
func stepAngle(from, to float32, k, n int) float32 {
	return from + (to-from)*float32(k)/float32(n)
}

// RevolvePoint sweeps p about axis from angle from to angle to (radians)
// and returns the chord between the two positions.
func RevolvePoint(p math.Vec3, axis geometry.Line, from, to float32) geometry.LineSegment[math.Vec3] {
	return geometry.LineSegment[math.Vec3]{
		Start: rotateAbout(p, axis, from),
		End:   rotateAbout(p, axis, to),
	}
}

// RevolvePointSteps splits the sweep into steps equal chords.
func RevolvePointSteps(p math.Vec3, axis geometry.Line, from, to float32, steps int) []geometry.LineSegment[math.Vec3] {
	out := make([]geometry.LineSegment[math.Vec3], 0, steps)
	for k := 0; k < steps; k++ {
		out = append(out, RevolvePoint(p, axis, stepAngle(from, to, k, steps), stepAngle(from, to, k+1, steps)))
	}
	return out
}

// RevolveSegment sweeps s about axis. The quad holds s at angle from as
// vertices 0 and 1 and s at angle to as vertices 2 and 3.
func RevolveSegment(s geometry.LineSegment[math.Vec3], axis geometry.Line, from, to float32) geometry.Quad[math.Vec3] {
	a := RevolvePoint(s.Start, axis, from, to)
	b := RevolvePoint(s.End, axis, from, to)
	return geometry.NewQuad(a.Start, b.Start, a.End, b.End)
}

// RevolveSegmentSteps splits the sweep of s into steps quads.
func RevolveSegmentSteps(s geometry.LineSegment[math.Vec3], axis geometry.Line, from, to float32, steps int) []geometry.Quad[math.Vec3] {
	out := make([]geometry.Quad[math.Vec3], 0, steps)
	for k := 0; k < steps; k++ {
		out = append(out, RevolveSegment(s, axis, stepAngle(from, to, k, steps), stepAngle(from, to, k+1, steps)))
	}
	return out
}

// RevolveChainQuads sweeps every segment of chain, giving
// len(segments) * steps quads.
func RevolveChainQuads(chain geometry.PolygonalChain[math.Vec3], axis geometry.Line, from, to float32, steps int) []geometry.Quad[math.Vec3] {
	var out []geometry.Quad[math.Vec3]
	for _, s := range chain.Segments() {
		out = append(out, RevolveSegmentSteps(s, axis, from, to, steps)...)
	}
	return out
}

// Revolve builds a flat-shaded surface of revolution from chain. Faces point
// away from the solid when the sweep runs counter-clockwise about the axis
// direction (from < to) and chain runs from the bottom of the profile to its
// top, so a closed profile walked bottom cap, side, top cap gives an
// outward-facing solid. Reversing either direction turns the faces inward.
// Triangles that collapse onto the axis are dropped.
func Revolve(chain geometry.PolygonalChain[math.Vec3], axis geometry.Line, from, to float32, steps int) Mesh {
	b := mesh.NewBuilder[uint32, geometry.SimpleVertex]()
	for _, q := range RevolveChainQuads(chain, axis, from, to, steps) {
		for _, t := range q.Subdivide() {
			// Strip order winds profile x sweep, which faces the axis.
			t = t.Reversed()
			n := t.Normal()
			if n == (math.Vec3{}) {
				continue
			}
			b.AddTriangle(geometry.NewTriangle(
				geometry.NewVertex(t.Vertices[0], n),
				geometry.NewVertex(t.Vertices[1], n),
				geometry.NewVertex(t.Vertices[2], n),
			))
		}
	}
	return b.Mesh()
}
