// Package projection maps model-space geometry onto a 2D drawing surface.
//
// Projection3D composes view, projection and clip transforms. Rasterizer
// collects polygons for one frame, orders them back to front and hands the
// projected outlines to a Surface. There is no depth buffer.
package projection

import "github.com/Faultbox/projection/pkg/math"

// Size is a viewport extent in pixels.
type Size struct {
	Width, Height float32
}

// Aspect returns Width / Height, or 1 for an empty viewport.
func (s Size) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return s.Width / s.Height
}

// Projection3D maps model space to surface coordinates as
// Clip * Projection * View * point.
type Projection3D struct {
	Size       Size
	View       math.Mat4
	Projection math.Mat4
	Clip       math.Mat4
}

// New returns a projection with all three transforms set to identity.
func New(size Size) Projection3D {
	return Projection3D{
		Size:       size,
		View:       math.Identity(),
		Projection: math.Identity(),
		Clip:       math.Identity(),
	}
}

// ViewportClip scales normalized device coordinates to pixels on a surface
// whose origin is its center and whose Y axis points down.
func ViewportClip(size Size) math.Mat4 {
	return math.Scale(size.Width/2, -size.Height/2, 1)
}

// Transform returns Clip * Projection * View.
func (p Projection3D) Transform() math.Mat4 {
	return p.Clip.Mul(p.Projection).Mul(p.View)
}

// ToClip returns the homogeneous clip-space position of a model point.
func (p Projection3D) ToClip(point math.Vec3) math.Vec4 {
	return p.Transform().MulVec4(math.Point(point))
}

// Project maps a model point to surface coordinates. No clipping happens
// here; points behind the camera divide by a negative w.
func (p Projection3D) Project(point math.Vec3) math.Vec2 {
	return p.ToClip(point).PerspectiveDivide().XY()
}

// EyeDirection returns the direction from a view-space point toward the
// camera. Orthographic cameras look along -Z everywhere.
func (p Projection3D) EyeDirection(viewPoint math.Vec3) math.Vec3 {
	if p.Projection.IsPerspective() {
		return viewPoint.Neg()
	}
	return math.Vec3{Z: 1}
}

// depth returns the sort key of a clip-space vertex: the negated distance
// past the near plane. Points in front of the near plane are negative and
// farther points are more negative.
func depth(v math.Vec4) float32 {
	return -(v.Z + v.W)
}
