package construct

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/go-libtess2"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

var (
	// ErrTooFewPoints is returned for outlines with fewer than three points.
	ErrTooFewPoints = errors.New("construct: outline needs at least 3 points")
	// ErrNoTriangles is returned when the tessellator finds no interior,
	// which happens for zero-area outlines.
	ErrNoTriangles = errors.New("construct: tessellation produced no triangles")
	// ErrNewVertex is returned when the tessellator inserts a vertex that is
	// not on the outline, which only self-intersecting outlines cause.
	ErrNewVertex = errors.New("construct: tessellation added a vertex")
)

// Tessellator triangulates outlines with libtess2 using the odd winding
// rule on a single contour.
type Tessellator struct{}

// Triangulate returns triangle corner indices into points, three per
// triangle, each wound counter-clockwise whatever the outline's orientation.
// A closing point equal to the first is ignored and zero-area triangles are
// dropped.
func (Tessellator) Triangulate(points []math.Vec2) ([]int, error) {
	pts := openOutline(points)
	if len(pts) < 3 {
		return nil, ErrTooFewPoints
	}
	if geometry.SignedArea(pts) == 0 {
		return nil, ErrNoTriangles
	}

	contour := make(libtess2.Contour, len(pts))
	index := make(map[math.Vec2]int, len(pts))
	for i, p := range pts {
		contour[i] = libtess2.Vertex{X: p.X, Y: p.Y}
		if _, ok := index[p]; !ok {
			index[p] = i
		}
	}

	elements, vertices, err := libtess2.Tesselate([]libtess2.Contour{contour}, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, fmt.Errorf("construct: %w", err)
	}

	// libtess2 numbers its output vertices itself; map them back onto the
	// outline by position.
	lookup := make([]int, len(vertices))
	for i, v := range vertices {
		j, ok := index[math.Vec2{X: v.X, Y: v.Y}]
		if !ok {
			return nil, fmt.Errorf("%w at (%v, %v)", ErrNewVertex, v.X, v.Y)
		}
		lookup[i] = j
	}

	out := make([]int, 0, len(elements))
	for i := 0; i+2 < len(elements); i += 3 {
		if elements[i] < 0 || elements[i+1] < 0 || elements[i+2] < 0 {
			continue
		}
		a, b, c := lookup[elements[i]], lookup[elements[i+1]], lookup[elements[i+2]]
		switch area := pts[b].Sub(pts[a]).Cross(pts[c].Sub(pts[a])); {
		case area > 0:
			out = append(out, a, b, c)
		case area < 0:
			out = append(out, a, c, b)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoTriangles
	}
	return out, nil
}
