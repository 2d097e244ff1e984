package geometry

import (
	"slices"

	"github.com/Faultbox/projection/pkg/math"
)

// Polygon is an ordered loop of vertices. It needs at least three vertices
// to be meaningful; the type does not enforce it.
type Polygon[V Vertex[V]] struct {
	Vertices []V
}

// NewPolygon creates a polygon from the given vertices.
func NewPolygon[V Vertex[V]](vertices ...V) Polygon[V] {
	return Polygon[V]{Vertices: vertices}
}

// PolygonFromChain converts a chain to a polygon, dropping the repeated
// vertex of a closed chain.
func PolygonFromChain(c PolygonalChain[math.Vec3]) Polygon[math.Vec3] {
	vs := c.Points
	if c.IsClosed() {
		vs = vs[:len(vs)-1]
	}
	return Polygon[math.Vec3]{Vertices: slices.Clone(vs)}
}

// Reversed returns the polygon with its vertex order reversed.
func (p Polygon[V]) Reversed() Polygon[V] {
	vs := slices.Clone(p.Vertices)
	slices.Reverse(vs)
	return Polygon[V]{Vertices: vs}
}

// FlipPolygon reverses the winding and negates every vertex normal.
func FlipPolygon[V NormalVertex[V]](p Polygon[V]) Polygon[V] {
	out := p.Reversed()
	for i, v := range out.Vertices {
		out.Vertices[i] = v.WithNormal(v.Normal().Neg())
	}
	return out
}

// Positions returns the vertex positions in order.
func (p Polygon[V]) Positions() []math.Vec3 {
	return Positions(p.Vertices)
}

// Plane returns the plane through the first three vertices.
func (p Polygon[V]) Plane() (Plane, bool) {
	if len(p.Vertices) < 3 {
		return Plane{}, false
	}
	return PlaneFromPoints(p.Vertices[0].Position(), p.Vertices[1].Position(), p.Vertices[2].Position())
}

// Centroid returns the mean vertex position.
func (p Polygon[V]) Centroid() math.Vec3 {
	var sum math.Vec3
	if len(p.Vertices) == 0 {
		return sum
	}
	for _, v := range p.Vertices {
		sum = sum.Add(v.Position())
	}
	return sum.Scale(1 / float32(len(p.Vertices)))
}

// Chain returns the closed chain running around the polygon.
func (p Polygon[V]) Chain() PolygonalChain[math.Vec3] {
	pts := p.Positions()
	if len(pts) > 0 {
		pts = append(pts, pts[0])
	}
	return PolygonalChain[math.Vec3]{Points: pts}
}
