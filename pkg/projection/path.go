package projection

import (
	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

// Path3D is a set of model-space polylines.
type Path3D struct {
	lines [][]math.Vec3
}

// MoveTo starts a new polyline at v.
func (p *Path3D) MoveTo(v math.Vec3) {
	p.lines = append(p.lines, []math.Vec3{v})
}

// LineTo extends the current polyline to v, starting one at the origin if
// there is none.
func (p *Path3D) LineTo(v math.Vec3) {
	if len(p.lines) == 0 {
		p.MoveTo(math.Vec3{})
	}
	last := len(p.lines) - 1
	p.lines[last] = append(p.lines[last], v)
}

// Segments returns every straight piece of the path.
func (p *Path3D) Segments() []geometry.LineSegment[math.Vec3] {
	var out []geometry.LineSegment[math.Vec3]
	for _, l := range p.lines {
		for i := 1; i < len(l); i++ {
			out = append(out, geometry.LineSegment[math.Vec3]{Start: l[i-1], End: l[i]})
		}
	}
	return out
}

// Line returns a path with one segment from a to b.
func Line(a, b math.Vec3) *Path3D {
	p := &Path3D{}
	p.MoveTo(a)
	p.LineTo(b)
	return p
}

// BoxPath returns the twelve edges of a box.
func BoxPath(b geometry.Box) *Path3D {
	p := &Path3D{}
	for _, e := range b.Edges() {
		p.MoveTo(e.Start)
		p.LineTo(e.End)
	}
	return p
}

// Canvas3D draws model-space paths and polygons onto a surface.
type Canvas3D struct {
	Projection Projection3D
	Surface    Surface
}

// Stroke projects and strokes every segment of path. Segments with an end
// behind the eye plane are skipped.
func (c Canvas3D) Stroke(path *Path3D, col Color, width float32) error {
	for _, s := range path.Segments() {
		a, b := c.Projection.ToClip(s.Start), c.Projection.ToClip(s.End)
		if a.W <= 0 || b.W <= 0 {
			continue
		}
		if err := c.Surface.StrokeLine(a.PerspectiveDivide().XY(), b.PerspectiveDivide().XY(), col, width); err != nil {
			return err
		}
	}
	return nil
}

// Rasterizer returns a rasterizer drawing onto the canvas surface.
func (c Canvas3D) Rasterizer(opts Options) *Rasterizer {
	return NewRasterizer(c.Projection, c.Surface, opts)
}
