package mesh

import "github.com/Faultbox/projection/pkg/geometry"

// Builder accumulates triangles into a mesh, deduplicating vertices through
// a hash map instead of the linear scan of Append.
type Builder[I Index, V geometry.Vertex[V]] struct {
	mesh TrivialMesh[I, V]
	seen map[V]I
}

// NewBuilder returns an empty builder.
func NewBuilder[I Index, V geometry.Vertex[V]]() *Builder[I, V] {
	return &Builder[I, V]{seen: make(map[V]I)}
}

// Add appends v to the index buffer and returns its index.
func (b *Builder[I, V]) Add(v V) I {
	if i, ok := b.seen[v]; ok {
		b.mesh.Indices = append(b.mesh.Indices, i)
		return i
	}
	i := I(len(b.mesh.Vertices))
	b.seen[v] = i
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.mesh.Indices = append(b.mesh.Indices, i)
	return i
}

// AddTriangle appends one triangle.
func (b *Builder[I, V]) AddTriangle(t geometry.Triangle[V]) {
	for _, v := range t.Vertices {
		b.Add(v)
	}
}

// AddQuad appends both halves of a subdivided quad.
func (b *Builder[I, V]) AddQuad(q geometry.Quad[V]) {
	for _, t := range q.Subdivide() {
		b.AddTriangle(t)
	}
}

// AddPolygon fans a convex polygon out from its first vertex.
// Polygons with fewer than three vertices are skipped.
func (b *Builder[I, V]) AddPolygon(p geometry.Polygon[V]) {
	vs := p.Vertices
	for i := 1; i+1 < len(vs); i++ {
		b.AddTriangle(geometry.NewTriangle(vs[0], vs[i], vs[i+1]))
	}
}

// Mesh returns the accumulated mesh. The builder may keep being used;
// later additions do not affect meshes already returned.
func (b *Builder[I, V]) Mesh() TrivialMesh[I, V] {
	return TrivialMesh[I, V]{
		Indices:  append([]I(nil), b.mesh.Indices...),
		Vertices: append([]V(nil), b.mesh.Vertices...),
	}
}

// FromTriangles builds a deduplicated mesh from triangles.
func FromTriangles[I Index, V geometry.Vertex[V]](tris []geometry.Triangle[V]) TrivialMesh[I, V] {
	b := NewBuilder[I, V]()
	for _, t := range tris {
		b.AddTriangle(t)
	}
	return b.Mesh()
}

// FromQuads builds a deduplicated mesh from quads, two triangles each.
func FromQuads[I Index, V geometry.Vertex[V]](quads []geometry.Quad[V]) TrivialMesh[I, V] {
	b := NewBuilder[I, V]()
	for _, q := range quads {
		b.AddQuad(q)
	}
	return b.Mesh()
}

// FromPolygons builds a deduplicated mesh from convex polygons.
func FromPolygons[I Index, V geometry.Vertex[V]](polys []geometry.Polygon[V]) TrivialMesh[I, V] {
	b := NewBuilder[I, V]()
	for _, p := range polys {
		b.AddPolygon(p)
	}
	return b.Mesh()
}
