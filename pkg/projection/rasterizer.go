package projection

import (
	"sort"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

// Options toggle what Rasterize draws.
type Options struct {
	DrawNormals      bool    // short line along each fragment's normal
	ShadeWithNormals bool    // replace fragment colors with NormalColor of the view-space normal
	Fill             bool    // fill fragment outlines
	Stroke           bool    // stroke fragment outlines
	BackfaceCulling  bool    // skip fragments facing away from the camera
	LineWidth        float32 // stroke width in pixels
}

// DefaultOptions fills and culls, nothing else.
func DefaultOptions() Options {
	return Options{Fill: true, BackfaceCulling: true, LineWidth: 1}
}

// Stats counts what happened to the fragments of one pass.
type Stats struct {
	Submitted int
	Clipped   int // fully behind the near plane, or crossing the eye plane
	Culled    int
	Drawn     int
}

type fragment struct {
	model  []math.Vec3
	clip   []math.Vec4
	depth  float32
	normal math.Vec3
	color  Color
}

// Rasterizer collects polygons for one frame. It is not safe for concurrent
// use; give each goroutine its own.
type Rasterizer struct {
	Projection Projection3D
	Surface    Surface
	Options    Options

	fragments []fragment
}

// NewRasterizer returns a rasterizer drawing onto s.
func NewRasterizer(p Projection3D, s Surface, opts Options) *Rasterizer {
	return &Rasterizer{Projection: p, Surface: s, Options: opts}
}

// Submit queues a model-space polygon. Its normal comes from the first
// three vertices. Polygons with fewer than three vertices are ignored.
func (r *Rasterizer) Submit(polygon []math.Vec3, c Color) {
	if len(polygon) < 3 {
		return
	}
	t := r.Projection.Transform()
	f := fragment{
		model: append([]math.Vec3(nil), polygon...),
		clip:  make([]math.Vec4, len(polygon)),
		color: c,
	}
	for i, p := range polygon {
		f.clip[i] = t.MulVec4(math.Point(p))
		if d := depth(f.clip[i]); i == 0 || d < f.depth {
			f.depth = d
		}
	}
	a, b, cc := polygon[0], polygon[1], polygon[2]
	f.normal = b.Sub(a).Cross(cc.Sub(a)).Normalize()
	r.fragments = append(r.fragments, f)
}

// SubmitPolygon queues the positions of any polygon.
func SubmitPolygon[V geometry.Vertex[V]](r *Rasterizer, p geometry.Polygon[V], c Color) {
	r.Submit(p.Positions(), c)
}

// Pending returns the number of queued fragments.
func (r *Rasterizer) Pending() int {
	return len(r.fragments)
}

// Rasterize draws every queued fragment back to front and empties the
// queue. A fragment's sort key is the depth of its farthest vertex, the
// smallest -(z + w) among its clip-space vertices. Fragments lying entirely
// behind the near plane are dropped; this is a coarse filter, not frustum
// clipping. Debug normals whose tip crosses the eye plane are not drawn.
// Drawing continues past surface errors and the first one is returned.
func (r *Rasterizer) Rasterize() (Stats, error) {
	frags := r.fragments
	r.fragments = nil
	st := Stats{Submitted: len(frags)}

	visible := frags[:0]
	for _, f := range frags {
		if f.depth > 0 || behindEye(f.clip) {
			st.Clipped++
			continue
		}
		visible = append(visible, f)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].depth < visible[j].depth
	})

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	view := r.Projection.View
	opts := r.Options
	for _, f := range visible {
		viewNormal := view.TransformDirection(f.normal)
		if opts.BackfaceCulling {
			center := view.TransformPoint(centroid(f.model))
			if viewNormal.Dot(r.Projection.EyeDirection(center)) < 0 {
				st.Culled++
				continue
			}
		}

		pts := make([]math.Vec2, len(f.clip))
		for i, v := range f.clip {
			pts[i] = v.PerspectiveDivide().XY()
		}
		c := f.color
		if opts.ShadeWithNormals {
			c = NormalColor(viewNormal.Normalize())
		}
		if opts.Fill {
			keep(r.Surface.FillPolygon(pts, c))
		}
		if opts.Stroke {
			keep(r.Surface.StrokePolygon(pts, c, opts.LineWidth))
		}
		if opts.DrawNormals {
			from := centroid(f.model)
			a := r.Projection.ToClip(from)
			b := r.Projection.ToClip(from.Add(f.normal))
			if a.W > 0 && b.W > 0 {
				keep(r.Surface.StrokeLine(a.PerspectiveDivide().XY(), b.PerspectiveDivide().XY(), NormalColor(f.normal), opts.LineWidth))
			}
		}
		st.Drawn++
	}
	return st, firstErr
}

// behindEye reports whether any vertex sits on or behind the eye plane,
// where the perspective divide flips or blows up.
func behindEye(clip []math.Vec4) bool {
	for _, v := range clip {
		if v.W <= 0 {
			return true
		}
	}
	return false
}

func centroid(ps []math.Vec3) math.Vec3 {
	var sum math.Vec3
	for _, p := range ps {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float32(len(ps)))
}
