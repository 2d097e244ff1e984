package geometry

import (
	"slices"

	"github.com/Faultbox/projection/pkg/math"
)

const coplanarEpsilon = 1e-5

// PolygonalChain is an ordered run of points. It is closed when the first
// and last points are equal.
type PolygonalChain[P Point[P]] struct {
	Points []P
}

// NewChain creates a chain through the given points.
func NewChain[P Point[P]](points ...P) PolygonalChain[P] {
	return PolygonalChain[P]{Points: points}
}

// IsClosed reports whether the chain ends where it starts.
func (c PolygonalChain[P]) IsClosed() bool {
	if len(c.Points) == 0 {
		return false
	}
	return c.Points[0] == c.Points[len(c.Points)-1]
}

// Closed returns the chain with its first point appended when it is open.
func (c PolygonalChain[P]) Closed() PolygonalChain[P] {
	if len(c.Points) == 0 || c.IsClosed() {
		return c
	}
	pts := append(slices.Clone(c.Points), c.Points[0])
	return PolygonalChain[P]{Points: pts}
}

// Segments returns the segments between consecutive points.
func (c PolygonalChain[P]) Segments() []LineSegment[P] {
	if len(c.Points) < 2 {
		return nil
	}
	segs := make([]LineSegment[P], 0, len(c.Points)-1)
	for i := 1; i < len(c.Points); i++ {
		segs = append(segs, LineSegment[P]{Start: c.Points[i-1], End: c.Points[i]})
	}
	return segs
}

// Length returns the total length of all segments.
func (c PolygonalChain[P]) Length() float32 {
	var total float32
	for _, s := range c.Segments() {
		total += s.Length()
	}
	return total
}

// IsSelfIntersecting is not implemented and always returns ErrNotImplemented.
func (c PolygonalChain[P]) IsSelfIntersecting() (bool, error) {
	return false, ErrNotImplemented
}

// IsCoplanar reports whether every segment of a 3D chain lies in the plane
// spanned by its first two segments. Chains of three points or fewer are
// always coplanar.
func IsCoplanar(c PolygonalChain[math.Vec3]) bool {
	if len(c.Points) <= 3 {
		return true
	}
	segs := c.Segments()
	normal := segs[0].Direction().Cross(segs[1].Direction())
	for _, s := range segs[2:] {
		d := s.Direction()
		tol := coplanarEpsilon * normal.Length() * d.Length()
		if dot := d.Dot(normal); dot > tol || dot < -tol {
			return false
		}
	}
	return true
}

// SignedArea returns the shoelace area of a 2D point loop. It is positive
// for counter-clockwise loops. A repeated closing point contributes nothing.
func SignedArea(points []math.Vec2) float32 {
	var area float32
	for i := range points {
		j := (i + 1) % len(points)
		area += points[i].Cross(points[j])
	}
	return area / 2
}
