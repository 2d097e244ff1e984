// Package mesh implements TrivialMesh, an indexed triangle mesh generic over
// its index width and vertex kind.
//
// Meshes are values. Every operation except Append returns a new mesh with
// its own buffers.
package mesh

import (
	"slices"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

// Index is an unsigned integer wide enough to address the vertex buffer.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// TrivialMesh is a vertex buffer plus an index buffer. Each consecutive
// triple of indices is one triangle.
type TrivialMesh[I Index, V geometry.Vertex[V]] struct {
	Indices  []I
	Vertices []V
}

// New creates a mesh over the given buffers. The buffers are not copied.
func New[I Index, V geometry.Vertex[V]](indices []I, vertices []V) TrivialMesh[I, V] {
	return TrivialMesh[I, V]{Indices: indices, Vertices: vertices}
}

// Append adds v to the index buffer, reusing the index of an equal vertex
// when one exists. The search is linear; use Builder for large meshes.
func (m *TrivialMesh[I, V]) Append(v V) I {
	if i := slices.Index(m.Vertices, v); i >= 0 {
		m.Indices = append(m.Indices, I(i))
		return I(i)
	}
	i := I(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	m.Indices = append(m.Indices, i)
	return i
}

// AppendTriangle appends the three corners of a triangle.
func (m *TrivialMesh[I, V]) AppendTriangle(t geometry.Triangle[V]) {
	for _, v := range t.Vertices {
		m.Append(v)
	}
}

// TriangleCount returns the number of complete index triples.
func (m TrivialMesh[I, V]) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangles resolves the index buffer into triangles. A trailing partial
// triple is ignored.
func (m TrivialMesh[I, V]) Triangles() []geometry.Triangle[V] {
	out := make([]geometry.Triangle[V], 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		out = append(out, geometry.NewTriangle(
			m.Vertices[m.Indices[i]],
			m.Vertices[m.Indices[i+1]],
			m.Vertices[m.Indices[i+2]],
		))
	}
	return out
}

// Polygons returns one three-vertex polygon per triangle.
func (m TrivialMesh[I, V]) Polygons() []geometry.Polygon[V] {
	tris := m.Triangles()
	out := make([]geometry.Polygon[V], len(tris))
	for i, t := range tris {
		out[i] = t.Polygon()
	}
	return out
}

// Reversed returns the mesh with every triangle's winding reversed.
// Vertex data is shared with m.
func (m TrivialMesh[I, V]) Reversed() TrivialMesh[I, V] {
	return TrivialMesh[I, V]{Indices: reverseTriples(m.Indices), Vertices: m.Vertices}
}

// Flipped reverses the winding and negates every vertex normal.
func Flipped[I Index, V geometry.NormalVertex[V]](m TrivialMesh[I, V]) TrivialMesh[I, V] {
	vs := make([]V, len(m.Vertices))
	for i, v := range m.Vertices {
		vs[i] = v.WithNormal(v.Normal().Neg())
	}
	return TrivialMesh[I, V]{Indices: reverseTriples(m.Indices), Vertices: vs}
}

// Offset translates every vertex position by d.
func (m TrivialMesh[I, V]) Offset(d math.Vec3) TrivialMesh[I, V] {
	return m.MapPositions(func(p math.Vec3) math.Vec3 { return p.Add(d) })
}

// Scale multiplies every vertex position component-wise by s.
// Normals are left as they are.
func (m TrivialMesh[I, V]) Scale(s math.Vec3) TrivialMesh[I, V] {
	return m.MapPositions(func(p math.Vec3) math.Vec3 { return p.Mul(s) })
}

// Transform applies a matrix to every vertex position.
func (m TrivialMesh[I, V]) Transform(t math.Mat4) TrivialMesh[I, V] {
	return m.MapPositions(t.TransformPoint)
}

// MapPositions returns a mesh whose vertex positions are f(position).
func (m TrivialMesh[I, V]) MapPositions(f func(math.Vec3) math.Vec3) TrivialMesh[I, V] {
	vs := make([]V, len(m.Vertices))
	for i, v := range m.Vertices {
		vs[i] = v.WithPosition(f(v.Position()))
	}
	return TrivialMesh[I, V]{Indices: slices.Clone(m.Indices), Vertices: vs}
}

// BoundingBox returns the box around all vertex positions. An empty mesh
// yields the zero box.
func (m TrivialMesh[I, V]) BoundingBox() geometry.Box {
	return geometry.BoundsOf(geometry.Positions(m.Vertices))
}

// Merge concatenates meshes, offsetting each mesh's indices by the number
// of vertices before it. Equal vertices in different inputs stay separate.
func Merge[I Index, V geometry.Vertex[V]](meshes ...TrivialMesh[I, V]) TrivialMesh[I, V] {
	var ni, nv int
	for _, m := range meshes {
		ni += len(m.Indices)
		nv += len(m.Vertices)
	}
	out := TrivialMesh[I, V]{
		Indices:  make([]I, 0, ni),
		Vertices: make([]V, 0, nv),
	}
	for _, m := range meshes {
		base := I(len(out.Vertices))
		for _, i := range m.Indices {
			out.Indices = append(out.Indices, i+base)
		}
		out.Vertices = append(out.Vertices, m.Vertices...)
	}
	return out
}

func reverseTriples[I Index](indices []I) []I {
	out := slices.Clone(indices)
	for i := 0; i+2 < len(out); i += 3 {
		out[i], out[i+2] = out[i+2], out[i]
	}
	return out
}
