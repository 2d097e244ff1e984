package meshio

import (
	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

// Soup is the flat form handed to exporters. Normals and TexCoords are nil
// when the source vertices do not carry them.
type Soup struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Indices   []uint32
}

// Triangles returns the number of complete triangles.
func (s Soup) Triangles() int {
	return len(s.Indices) / 3
}

type normaled interface{ Normal() math.Vec3 }
type texCoorded interface{ TexCoord() math.Vec2 }

// ToSoup flattens a mesh. Vertices are written as stored, deduplicated or
// not.
func ToSoup[I mesh.Index, V geometry.Vertex[V]](m mesh.TrivialMesh[I, V]) Soup {
	s := Soup{
		Positions: geometry.Positions(m.Vertices),
		Indices:   make([]uint32, len(m.Indices)),
	}
	for i, idx := range m.Indices {
		s.Indices[i] = uint32(idx)
	}
	var zero V
	if _, ok := any(zero).(normaled); ok {
		s.Normals = make([]math.Vec3, len(m.Vertices))
		for i, v := range m.Vertices {
			s.Normals[i] = any(v).(normaled).Normal()
		}
	}
	if _, ok := any(zero).(texCoorded); ok {
		s.TexCoords = make([]math.Vec2, len(m.Vertices))
		for i, v := range m.Vertices {
			s.TexCoords[i] = any(v).(texCoorded).TexCoord()
		}
	}
	return s
}
