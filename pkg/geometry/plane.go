package geometry

import "github.com/Faultbox/projection/pkg/math"

// Plane is the set of points p with dot(Normal, p) == W.
type Plane struct {
	Normal math.Vec3
	W      float32
}

// PlaneFromPoints returns the plane through a, b and c, with its normal
// following the counter-clockwise winding a -> b -> c. ok is false when the
// points are collinear.
func PlaneFromPoints(a, b, c math.Vec3) (plane Plane, ok bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.LengthSquared() == 0 {
		return Plane{}, false
	}
	n = n.Normalize()
	return Plane{Normal: n, W: n.Dot(a)}, true
}

// Flipped returns the plane facing the other way.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Neg(), W: -p.W}
}

// SignedDistance returns the distance of q above the plane.
func (p Plane) SignedDistance(q math.Vec3) float32 {
	return p.Normal.Dot(q) - p.W
}
