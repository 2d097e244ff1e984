// Package geometry provides the value types the mesh kernel is built from:
// vertices, lines, planes, polygons, chains, quads, triangles and boxes.
package geometry

import "github.com/Faultbox/projection/pkg/math"

// Vertex is implemented by every vertex kind a mesh can hold.
// Equality is structural and drives index deduplication.
type Vertex[V any] interface {
	comparable
	Position() math.Vec3
	WithPosition(p math.Vec3) V
}

// NormalVertex is a vertex that also carries a normal.
type NormalVertex[V any] interface {
	Vertex[V]
	Normal() math.Vec3
	WithNormal(n math.Vec3) V
}

// SimpleVertex is a position, a normal and a texture coordinate.
type SimpleVertex struct {
	Pos  math.Vec3
	Norm math.Vec3
	UV   math.Vec2
}

// NewVertex creates a vertex with the given position and normal and a zero
// texture coordinate.
func NewVertex(pos, normal math.Vec3) SimpleVertex {
	return SimpleVertex{Pos: pos, Norm: normal}
}

func (v SimpleVertex) Position() math.Vec3 { return v.Pos }
func (v SimpleVertex) Normal() math.Vec3   { return v.Norm }
func (v SimpleVertex) TexCoord() math.Vec2 { return v.UV }

func (v SimpleVertex) WithPosition(p math.Vec3) SimpleVertex {
	v.Pos = p
	return v
}

func (v SimpleVertex) WithNormal(n math.Vec3) SimpleVertex {
	v.Norm = n
	return v
}

// Positions extracts the positions of a vertex slice.
func Positions[V Vertex[V]](vertices []V) []math.Vec3 {
	out := make([]math.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = v.Position()
	}
	return out
}
