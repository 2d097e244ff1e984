// Package camera provides the orbit camera used by the renderer and viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

// Orbit circles a center point at a fixed distance.
type Orbit struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Lens
	FovY         float32 // radians
	Near, Far    float32
	Orthographic bool

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit returns an orbit camera with default settings.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        6,
		Pitch:           0.4,
		Yaw:             0.6,
		FovY:            gomath.Pi / 3,
		Near:            0.1,
		Far:             100,
		MinDistance:     0.5,
		MaxDistance:     500,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
	}
}

// Radians converts degrees.
func Radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	sp, cp := gomath.Sincos(float64(c.Pitch))
	sy, cy := gomath.Sincos(float64(c.Yaw))
	return c.Center.Add(math.Vec3{
		X: c.Distance * float32(cp*sy),
		Y: c.Distance * float32(sp),
		Z: c.Distance * float32(cp*cy),
	})
}

// ViewMatrix returns the world-to-view transform.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the view-to-clip transform for a viewport of
// the given aspect ratio. The orthographic volume matches the perspective
// frustum's height at the orbit center.
func (c *Orbit) ProjectionMatrix(aspect float32) math.Mat4 {
	if !c.Orthographic {
		return math.Perspective(c.FovY, aspect, c.Near, c.Far)
	}
	h := c.Distance * float32(gomath.Tan(float64(c.FovY)/2))
	return math.Ortho(-h*aspect, h*aspect, -h, h, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point on the ground plane relative to the
// current yaw.
func (c *Orbit) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01
	sy, cy := gomath.Sincos(float64(c.Yaw))
	dirX, dirZ := float32(sy), float32(cy)

	c.Center.X += (-dirX*forward + dirZ*right) * speed
	c.Center.Z += (-dirZ*forward - dirX*right) * speed
	c.Center.Y += up * speed
}

// FitToBox centers the camera on b and backs off until the whole box fits
// vertically in the field of view.
func (c *Orbit) FitToBox(b geometry.Box) {
	c.Center = b.Center()
	radius := b.Size().Length() / 2
	if radius == 0 {
		return
	}
	d := radius / float32(gomath.Sin(float64(c.FovY)/2))
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
	if c.Far < c.Distance+radius {
		c.Far = (c.Distance + radius) * 2
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
