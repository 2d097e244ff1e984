package geometry

import "github.com/Faultbox/projection/pkg/math"

// Box is an axis-aligned box between two corners.
type Box struct {
	Min, Max math.Vec3
}

// BoundsOf returns the smallest box containing every point.
// No points yields the zero box.
func BoundsOf(points []math.Vec3) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Size returns Max - Min.
func (b Box) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns the eight corners. Bit 0 of the index selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b Box) Corners() [8]math.Vec3 {
	var out [8]math.Vec3
	for i := range out {
		out[i] = b.Min
		if i&1 != 0 {
			out[i].X = b.Max.X
		}
		if i&2 != 0 {
			out[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			out[i].Z = b.Max.Z
		}
	}
	return out
}

// Edges returns the twelve edges as corner pairs.
func (b Box) Edges() [12]LineSegment[math.Vec3] {
	c := b.Corners()
	pairs := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	var out [12]LineSegment[math.Vec3]
	for i, p := range pairs {
		out[i] = LineSegment[math.Vec3]{Start: c[p[0]], End: c[p[1]]}
	}
	return out
}

// Polygons returns the six faces wound counter-clockwise when seen from
// outside, each carrying its outward face normal.
func (b Box) Polygons() []Polygon[SimpleVertex] {
	lo, hi := b.Min, b.Max
	face := func(n math.Vec3, ps ...math.Vec3) Polygon[SimpleVertex] {
		vs := make([]SimpleVertex, len(ps))
		for i, p := range ps {
			vs[i] = NewVertex(p, n)
		}
		return Polygon[SimpleVertex]{Vertices: vs}
	}
	return []Polygon[SimpleVertex]{
		face(math.Vec3{X: -1},
			math.Vec3{X: lo.X, Y: lo.Y, Z: lo.Z}, math.Vec3{X: lo.X, Y: lo.Y, Z: hi.Z},
			math.Vec3{X: lo.X, Y: hi.Y, Z: hi.Z}, math.Vec3{X: lo.X, Y: hi.Y, Z: lo.Z}),
		face(math.Vec3{X: 1},
			math.Vec3{X: hi.X, Y: lo.Y, Z: lo.Z}, math.Vec3{X: hi.X, Y: hi.Y, Z: lo.Z},
			math.Vec3{X: hi.X, Y: hi.Y, Z: hi.Z}, math.Vec3{X: hi.X, Y: lo.Y, Z: hi.Z}),
		face(math.Vec3{Y: -1},
			math.Vec3{X: lo.X, Y: lo.Y, Z: lo.Z}, math.Vec3{X: hi.X, Y: lo.Y, Z: lo.Z},
			math.Vec3{X: hi.X, Y: lo.Y, Z: hi.Z}, math.Vec3{X: lo.X, Y: lo.Y, Z: hi.Z}),
		face(math.Vec3{Y: 1},
			math.Vec3{X: lo.X, Y: hi.Y, Z: lo.Z}, math.Vec3{X: lo.X, Y: hi.Y, Z: hi.Z},
			math.Vec3{X: hi.X, Y: hi.Y, Z: hi.Z}, math.Vec3{X: hi.X, Y: hi.Y, Z: lo.Z}),
		face(math.Vec3{Z: -1},
			math.Vec3{X: lo.X, Y: lo.Y, Z: lo.Z}, math.Vec3{X: lo.X, Y: hi.Y, Z: lo.Z},
			math.Vec3{X: hi.X, Y: hi.Y, Z: lo.Z}, math.Vec3{X: hi.X, Y: lo.Y, Z: lo.Z}),
		face(math.Vec3{Z: 1},
			math.Vec3{X: lo.X, Y: lo.Y, Z: hi.Z}, math.Vec3{X: hi.X, Y: lo.Y, Z: hi.Z},
			math.Vec3{X: hi.X, Y: hi.Y, Z: hi.Z}, math.Vec3{X: lo.X, Y: hi.Y, Z: hi.Z}),
	}
}
