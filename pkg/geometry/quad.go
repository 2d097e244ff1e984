package geometry

import "github.com/Faultbox/projection/pkg/math"

// Quad holds four vertices in strip order:
//
//	1---3
//	|\  |
//	| \ |
//	|  \|
//	0---2
type Quad[V Vertex[V]] struct {
	Vertices [4]V
}

// NewQuad creates a quad from vertices in strip order.
func NewQuad[V Vertex[V]](v0, v1, v2, v3 V) Quad[V] {
	return Quad[V]{Vertices: [4]V{v0, v1, v2, v3}}
}

// Subdivide splits the quad along the 1-2 diagonal into (0,1,2) and (1,3,2).
func (q Quad[V]) Subdivide() [2]Triangle[V] {
	v := q.Vertices
	return [2]Triangle[V]{
		{Vertices: [3]V{v[0], v[1], v[2]}},
		{Vertices: [3]V{v[1], v[3], v[2]}},
	}
}

// Polygon returns the quad as a loop 0-1-3-2.
func (q Quad[V]) Polygon() Polygon[V] {
	v := q.Vertices
	return NewPolygon(v[0], v[1], v[3], v[2])
}

// Triangle is three vertices, counter-clockwise around its front face.
type Triangle[V Vertex[V]] struct {
	Vertices [3]V
}

// NewTriangle creates a triangle.
func NewTriangle[V Vertex[V]](a, b, c V) Triangle[V] {
	return Triangle[V]{Vertices: [3]V{a, b, c}}
}

// Reversed returns the triangle with opposite winding.
func (t Triangle[V]) Reversed() Triangle[V] {
	return Triangle[V]{Vertices: [3]V{t.Vertices[2], t.Vertices[1], t.Vertices[0]}}
}

// Normal returns the unit face normal, or zero for a degenerate triangle.
func (t Triangle[V]) Normal() math.Vec3 {
	a := t.Vertices[0].Position()
	return t.Vertices[1].Position().Sub(a).Cross(t.Vertices[2].Position().Sub(a)).Normalize()
}

// Area returns the triangle's surface area.
func (t Triangle[V]) Area() float32 {
	a := t.Vertices[0].Position()
	return t.Vertices[1].Position().Sub(a).Cross(t.Vertices[2].Position().Sub(a)).Length() / 2
}

// Polygon returns the triangle as a three-vertex polygon.
func (t Triangle[V]) Polygon() Polygon[V] {
	return NewPolygon(t.Vertices[:]...)
}
