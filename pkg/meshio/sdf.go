package meshio

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

// DefaultCells is the marching cubes resolution along the longest axis.
const DefaultCells = 64

// FromSDF polygonizes a signed distance solid with marching cubes. Each
// triangle carries its face normal, so only vertices within one facet are
// shared.
func FromSDF(s sdf.SDF3, cells int) mesh.TrivialMesh[uint32, geometry.SimpleVertex] {
	if cells <= 0 {
		cells = DefaultCells
	}
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	b := mesh.NewBuilder[uint32, geometry.SimpleVertex]()
	for _, t := range tris {
		n := fromV3(t.Normal())
		if !n.IsFinite() || n == (math.Vec3{}) {
			continue
		}
		b.AddTriangle(geometry.NewTriangle(
			geometry.NewVertex(fromV3(t[0]), n),
			geometry.NewVertex(fromV3(t[1]), n),
			geometry.NewVertex(fromV3(t[2]), n),
		))
	}
	return b.Mesh()
}

func fromV3(v v3.Vec) math.Vec3 {
	return math.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toV3(v math.Vec3) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
