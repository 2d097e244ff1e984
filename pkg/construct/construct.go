// Package construct generates meshes: extrusions, triangulated caps,
// surfaces of revolution and a few primitive solids.
package construct

import (
	"errors"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
)

// ErrDegeneratePolygon is returned for outlines whose signed area is zero.
// Callers are expected to skip the shape.
var ErrDegeneratePolygon = errors.New("construct: polygon has zero area")

// Mesh is the mesh type every constructor produces.
type Mesh = mesh.TrivialMesh[uint32, geometry.SimpleVertex]

// Triangulator turns a simple 2D outline into triangle corner indices,
// three per counter-clockwise triangle.
type Triangulator interface {
	Triangulate(points []math.Vec2) ([]int, error)
}

// DefaultTriangulator returns the libtess2 triangulator.
func DefaultTriangulator() Triangulator {
	return Tessellator{}
}

// ExtrusionAxis selects the world axis an outline is extruded along.
type ExtrusionAxis int

const (
	AxisZ ExtrusionAxis = iota
	AxisX
	AxisY
)

func (a ExtrusionAxis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Transform maps outline space, where extrusion runs along +Z, into world
// space. The X and Y variants swap two axes and so mirror space.
func (a ExtrusionAxis) Transform() math.Mat3 {
	switch a {
	case AxisX:
		return math.Mat3FromColumns(math.Vec3{Z: 1}, math.Vec3{Y: 1}, math.Vec3{X: 1})
	case AxisY:
		return math.Mat3FromColumns(math.Vec3{X: 1}, math.Vec3{Z: 1}, math.Vec3{Y: 1})
	default:
		return math.Identity3()
	}
}

// orient reverses m when t mirrors space, so faces keep pointing outward.
func orient(m Mesh, t math.Mat3) Mesh {
	if t.Determinant() < 0 {
		return m.Reversed()
	}
	return m
}

// openOutline drops a closing point equal to the first.
func openOutline(points []math.Vec2) []math.Vec2 {
	if n := len(points); n > 1 && points[0] == points[n-1] {
		return points[:n-1]
	}
	return points
}
