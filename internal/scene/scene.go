// Package scene builds the demo models the renderer and viewer draw.
//
// A Scene is built once from its name and a tessellation level, then
// submitted to a rasterizer every frame.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/projection/pkg/construct"
	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/mesh"
	"github.com/Faultbox/projection/pkg/projection"
)

// ErrUnknownScene is returned by New for names not in the registry.
var ErrUnknownScene = errors.New("unknown scene")

// Part is one independently shaded piece of a scene. Palette indices
// restart at every part.
type Part struct {
	Mesh construct.Mesh
	// Color overrides palette cycling when set.
	Color *projection.Color
}

// Scene is a set of meshes plus an optional wireframe overlay.
type Scene struct {
	Name    string
	Parts   []Part
	Overlay *projection.Path3D
}

type factory struct {
	description string
	build       func(segments int) (*Scene, error)
}

var registry = map[string]factory{
	"cylinder":  {"capped cylinder with radial side normals", buildCylinder},
	"extrusion": {"extruded star and rectangle outlines with caps", buildExtrusion},
	"revolve":   {"profile chain revolved about the Y axis", buildRevolve},
	"boxes":     {"two boxes either side of a sphere", buildBoxes},
	"sphere":    {"UV sphere", buildSphere},
	"halfedge":  {"faces walked from a half-edge mesh", buildHalfEdge},
	"sdf":       {"marching cubes polygonization of a signed distance solid", buildSDF},
}

// Names returns every registered scene name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the one-line description of a scene.
func Describe(name string) string {
	return registry[name].description
}

// New builds the named scene with the given tessellation level.
func New(name string, segments int) (*Scene, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, err := f.build(segments)
	if err != nil {
		return nil, fmt.Errorf("building scene %s: %w", name, err)
	}
	s.Name = name
	return s, nil
}

// Mesh merges every part into one mesh.
func (s *Scene) Mesh() construct.Mesh {
	meshes := make([]construct.Mesh, len(s.Parts))
	for i, p := range s.Parts {
		meshes[i] = p.Mesh
	}
	return mesh.Merge(meshes...)
}

// Bounds returns the box around every vertex of every part.
func (s *Scene) Bounds() geometry.Box {
	return s.Mesh().BoundingBox()
}

// Submit queues every triangle of every part and returns how many were
// submitted.
func (s *Scene) Submit(r *projection.Rasterizer, palette projection.Palette) int {
	n := 0
	for _, p := range s.Parts {
		for i, poly := range p.Mesh.Polygons() {
			c := palette.At(i)
			if p.Color != nil {
				c = *p.Color
			}
			projection.SubmitPolygon(r, poly, c)
			n++
		}
	}
	return n
}

// Validate runs the advisory mesh checks on every part and logs failures.
// It returns the number of invalid parts.
func (s *Scene) Validate(log *zap.Logger) int {
	bad := 0
	for i, p := range s.Parts {
		if err := mesh.Validate(p.Mesh); err != nil {
			bad++
			log.Warn("invalid mesh part",
				zap.String("scene", s.Name),
				zap.Int("part", i),
				zap.Error(err),
			)
		}
	}
	return bad
}

func flatPart(polys []geometry.Polygon[math.Vec3], c *projection.Color) Part {
	b := mesh.NewBuilder[uint32, geometry.SimpleVertex]()
	for _, poly := range polys {
		plane, ok := poly.Plane()
		if !ok {
			continue
		}
		vs := make([]geometry.SimpleVertex, len(poly.Vertices))
		for i, p := range poly.Vertices {
			vs[i] = geometry.NewVertex(p, plane.Normal)
		}
		b.AddPolygon(geometry.NewPolygon(vs...))
	}
	return Part{Mesh: b.Mesh(), Color: c}
}
