package construct

import (
	"fmt"
	"slices"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

// Parts selects which pieces of an extruded solid are generated.
type Parts uint8

const (
	Walls Parts = 1 << iota
	TopCap
	BottomCap

	AllParts = Walls | TopCap | BottomCap
)

// Extrusion describes a prism built from a 2D outline.
type Extrusion struct {
	Min, Max     float32
	Axis         ExtrusionAxis
	Parts        Parts
	Triangulator Triangulator // nil means DefaultTriangulator
}

// ExtrudeChain builds one wall quad per segment of chain, spanning Min to
// Max along axis. Every wall vertex carries the extrusion axis as its
// normal. U runs along the chain by arc length, V is 0 at min and 1 at max.
func ExtrudeChain(chain geometry.PolygonalChain[math.Vec2], min, max float32, axis ExtrusionAxis) Mesh {
	t := axis.Transform()
	normal := t.MulVec3(math.Vec3{Z: 1})
	total := chain.Length()

	at := func(p math.Vec2, z, u, v float32) geometry.SimpleVertex {
		return geometry.SimpleVertex{
			Pos:  t.MulVec3(p.Extend(z)),
			Norm: normal,
			UV:   math.Vec2{X: u, Y: v},
		}
	}

	var quads []geometry.Quad[geometry.SimpleVertex]
	var run float32
	for _, s := range chain.Segments() {
		u0 := arcParam(run, total)
		run += s.Length()
		u1 := arcParam(run, total)
		quads = append(quads, geometry.NewQuad(
			at(s.Start, min, u0, 0),
			at(s.Start, max, u0, 1),
			at(s.End, min, u1, 0),
			at(s.End, max, u1, 1),
		))
	}
	// Strip order winds the walls inward for a counter-clockwise chain.
	return orient(mesh.FromQuads[uint32](quads).Reversed(), t)
}

func arcParam(run, total float32) float32 {
	if total == 0 {
		return 0
	}
	return run / total
}

// Extrude builds the selected parts of a prism over outline, which may be
// given in either orientation and with or without a closing point.
func Extrude(outline []math.Vec2, e Extrusion) (Mesh, error) {
	pts := openOutline(outline)
	area := geometry.SignedArea(pts)
	if area == 0 {
		return Mesh{}, ErrDegeneratePolygon
	}
	if area < 0 {
		pts = slices.Clone(pts)
		slices.Reverse(pts)
	}
	tri := e.Triangulator
	if tri == nil {
		tri = DefaultTriangulator()
	}

	var parts []Mesh
	if e.Parts&Walls != 0 {
		parts = append(parts, ExtrudeChain(geometry.NewChain(pts...).Closed(), e.Min, e.Max, e.Axis))
	}
	if e.Parts&TopCap != 0 {
		top, err := Triangulate(pts, e.Max, e.Axis.Transform(), tri)
		if err != nil {
			return Mesh{}, fmt.Errorf("top cap: %w", err)
		}
		parts = append(parts, top)
	}
	if e.Parts&BottomCap != 0 {
		bottom, err := Triangulate(pts, e.Min, e.Axis.Transform(), tri)
		if err != nil {
			return Mesh{}, fmt.Errorf("bottom cap: %w", err)
		}
		parts = append(parts, mesh.Flipped(bottom))
	}
	return mesh.Merge(parts...), nil
}

// Triangulate fills outline at height z and maps it through t. Every vertex
// gets the mapped +Z as its normal and its 2D position as texture
// coordinate.
func Triangulate(outline []math.Vec2, z float32, t math.Mat3, tri Triangulator) (Mesh, error) {
	pts := openOutline(outline)
	if geometry.SignedArea(pts) == 0 {
		return Mesh{}, ErrDegeneratePolygon
	}
	idx, err := tri.Triangulate(pts)
	if err != nil {
		return Mesh{}, fmt.Errorf("triangulate: %w", err)
	}

	normal := t.MulVec3(math.Vec3{Z: 1})
	m := Mesh{
		Indices:  make([]uint32, len(idx)),
		Vertices: make([]geometry.SimpleVertex, len(pts)),
	}
	for i, p := range pts {
		m.Vertices[i] = geometry.SimpleVertex{Pos: t.MulVec3(p.Extend(z)), Norm: normal, UV: p}
	}
	for i, v := range idx {
		m.Indices[i] = uint32(v)
	}
	return orient(m, t), nil
}
