package geometry

import (
	"errors"

	"github.com/Faultbox/projection/pkg/math"
)

// ErrNotImplemented is returned by queries that have no implementation yet.
var ErrNotImplemented = errors.New("geometry: not implemented")

// Line is an infinite line through a point along a non-zero direction.
type Line struct {
	point     math.Vec3
	direction math.Vec3
}

// NewLine creates a line. It panics if direction is the zero vector.
func NewLine(point, direction math.Vec3) Line {
	if direction == (math.Vec3{}) {
		panic("geometry: line direction must be non-zero")
	}
	return Line{point: point, direction: direction}
}

// LineThrough returns the line containing the segment.
// It panics if the segment is degenerate.
func LineThrough(s LineSegment[math.Vec3]) Line {
	return NewLine(s.Start, s.Direction())
}

func (l Line) Point() math.Vec3     { return l.point }
func (l Line) Direction() math.Vec3 { return l.direction }

// ClosestPoint returns the point on the line nearest to p.
func (l Line) ClosestPoint(p math.Vec3) math.Vec3 {
	t := p.Sub(l.point).Dot(l.direction) / l.direction.Dot(l.direction)
	return l.point.Add(l.direction.Scale(t))
}

// IntersectPlane is not implemented and always returns ErrNotImplemented.
func (l Line) IntersectPlane(Plane) (math.Vec3, error) {
	return math.Vec3{}, ErrNotImplemented
}

// Point is the constraint shared by 2D and 3D points.
type Point[P any] interface {
	comparable
	Add(P) P
	Sub(P) P
	Scale(float32) P
	Dot(P) float32
	Length() float32
	LengthSquared() float32
}

// LineSegment runs from Start to End. A segment with Start == End is
// degenerate; callers must not ask it for a normalized direction.
type LineSegment[P Point[P]] struct {
	Start, End P
}

// Direction returns End - Start.
func (s LineSegment[P]) Direction() P {
	return s.End.Sub(s.Start)
}

func (s LineSegment[P]) Length() float32 {
	return s.Direction().Length()
}

func (s LineSegment[P]) LengthSquared() float32 {
	return s.Direction().LengthSquared()
}

// NormalizedDirection returns the unit direction from Start to End.
func (s LineSegment[P]) NormalizedDirection() P {
	return s.Direction().Scale(1 / s.Length())
}

// PointAt returns Start + t*(End-Start).
func (s LineSegment[P]) PointAt(t float32) P {
	return s.Start.Add(s.Direction().Scale(t))
}
