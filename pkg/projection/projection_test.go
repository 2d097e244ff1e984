package projection

import (
	"errors"
	"testing"

	"github.com/Faultbox/projection/pkg/geometry"
	"github.com/Faultbox/projection/pkg/math"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

// camera returns a perspective projection looking from +Z at the origin.
func camera() Projection3D {
	size := Size{Width: 200, Height: 100}
	p := New(size)
	p.View = math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.Vec3{Y: 1})
	p.Projection = math.Perspective(1, size.Aspect(), 0.1, 100)
	p.Clip = ViewportClip(size)
	return p
}

func triangleAt(z float32) []math.Vec3 {
	return []math.Vec3{{X: -1, Y: -1, Z: z}, {X: 1, Y: -1, Z: z}, {X: 0, Y: 1, Z: z}}
}

func TestProjectOriginIsCenter(t *testing.T) {
	for name, p := range map[string]Projection3D{
		"identity": New(Size{Width: 640, Height: 480}),
		"camera":   camera(),
	} {
		if got := p.Project(math.Vec3{}); !approx(got.X, 0) || !approx(got.Y, 0) {
			t.Errorf("%s: Project(origin) = %v, want (0, 0)", name, got)
		}
	}
}

func TestViewportClip(t *testing.T) {
	p := New(Size{Width: 200, Height: 100})
	p.Clip = ViewportClip(p.Size)
	got := p.Project(math.Vec3{X: 1, Y: 1})
	if got != (math.Vec2{X: 100, Y: -50}) {
		t.Errorf("Project(1, 1, 0) = %v, want (100, -50)", got)
	}
}

func TestProjectAppliesPerspectiveDivide(t *testing.T) {
	p := camera()
	near := p.Project(math.Vec3{X: 1})
	far := p.Project(math.Vec3{X: 1, Z: -5})
	if far.X >= near.X || far.X <= 0 {
		t.Errorf("farther point should project closer to center: near %v, far %v", near, far)
	}
}

func TestFragmentBehindCameraNeverDrawn(t *testing.T) {
	tests := []struct {
		name string
		proj Projection3D
		z    float32
	}{
		{"identity past near", New(Size{Width: 10, Height: 10}), -2},
		{"perspective behind eye", camera(), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			opts := DefaultOptions()
			opts.Stroke = true
			opts.DrawNormals = true
			r := NewRasterizer(tt.proj, rec, opts)
			r.Submit(triangleAt(tt.z), Red)
			st, err := r.Rasterize()
			if err != nil {
				t.Fatalf("Rasterize: %v", err)
			}
			if len(rec.Calls) != 0 {
				t.Errorf("got %d draw calls for a fragment behind the camera", len(rec.Calls))
			}
			if st.Clipped != 1 || st.Drawn != 0 {
				t.Errorf("stats = %+v", st)
			}
		})
	}
}

func TestPaintersOrder(t *testing.T) {
	rec := &Recorder{}
	r := NewRasterizer(camera(), rec, DefaultOptions())
	r.Submit(triangleAt(0), Red)
	r.Submit(triangleAt(-2), Green)
	r.Submit(triangleAt(-1), Blue)
	if _, err := r.Rasterize(); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}

	want := []Color{Green, Blue, Red}
	if len(rec.Calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(rec.Calls), len(want))
	}
	for i, c := range rec.Calls {
		if c.Kind != DrawFill || c.Color != want[i] {
			t.Errorf("call %d = %v %v, want fill %v", i, c.Kind, c.Color, want[i])
		}
	}
}

func TestBackfaceCulling(t *testing.T) {
	front := triangleAt(0)
	back := []math.Vec3{front[2], front[1], front[0]}

	for _, proj := range []Projection3D{camera(), New(Size{Width: 10, Height: 10})} {
		rec := &Recorder{}
		r := NewRasterizer(proj, rec, DefaultOptions())
		r.Submit(front, Red)
		r.Submit(back, Blue)
		st, err := r.Rasterize()
		if err != nil {
			t.Fatalf("Rasterize: %v", err)
		}
		if st.Culled != 1 || st.Drawn != 1 {
			t.Errorf("stats = %+v, want one culled and one drawn", st)
		}
		if len(rec.Calls) != 1 || rec.Calls[0].Color != Red {
			t.Errorf("calls = %+v, want only the front face", rec.Calls)
		}

		rec.Reset()
		r.Options.BackfaceCulling = false
		r.Submit(front, Red)
		r.Submit(back, Blue)
		if _, err := r.Rasterize(); err != nil {
			t.Fatalf("Rasterize: %v", err)
		}
		if rec.Count(DrawFill) != 2 {
			t.Errorf("culling off: %d fills, want 2", rec.Count(DrawFill))
		}
	}
}

func TestOptions(t *testing.T) {
	rec := &Recorder{}
	r := NewRasterizer(New(Size{Width: 10, Height: 10}), rec, Options{
		Stroke:           true,
		DrawNormals:      true,
		ShadeWithNormals: true,
		LineWidth:        3,
	})
	r.Submit(triangleAt(0), Red)
	if _, err := r.Rasterize(); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if rec.Count(DrawFill) != 0 || rec.Count(DrawStroke) != 1 || rec.Count(DrawLine) != 1 {
		t.Fatalf("calls = %+v", rec.Calls)
	}
	stroke := rec.Calls[0]
	if stroke.Width != 3 {
		t.Errorf("stroke width = %v, want 3", stroke.Width)
	}
	if want := RGB(0.5, 0.5, 1); stroke.Color != want {
		t.Errorf("normal shading = %v, want %v", stroke.Color, want)
	}
	if len(stroke.Points) != 3 || stroke.Points[2] != (math.Vec2{Y: 1}) {
		t.Errorf("stroke points = %v", stroke.Points)
	}
	line := rec.Calls[1]
	// The normal starts at the centroid; identity transforms keep x and y.
	if !approx(line.Points[0].X, 0) || !approx(line.Points[0].Y, -1.0/3) {
		t.Errorf("normal line starts at %v", line.Points[0])
	}
}

func TestNormalBehindEyeNotDrawn(t *testing.T) {
	rec := &Recorder{}
	r := NewRasterizer(camera(), rec, Options{Fill: true, DrawNormals: true, LineWidth: 1})
	// Half a unit in front of the eye; the unit normal pokes past it.
	r.Submit(triangleAt(4.5), Red)
	st, err := r.Rasterize()
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if st.Drawn != 1 || rec.Count(DrawFill) != 1 {
		t.Fatalf("stats %+v, calls %+v", st, rec.Calls)
	}
	if n := rec.Count(DrawLine); n != 0 {
		t.Errorf("drew %d normal lines through the eye plane", n)
	}

	rec.Reset()
	r.Submit(triangleAt(0), Red)
	if _, err := r.Rasterize(); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if n := rec.Count(DrawLine); n != 1 {
		t.Errorf("got %d normal lines for a visible normal, want 1", n)
	}
}

func TestSubmitIgnoresShortPolygons(t *testing.T) {
	r := NewRasterizer(New(Size{}), &Recorder{}, DefaultOptions())
	r.Submit([]math.Vec3{{}, {X: 1}}, Red)
	if r.Pending() != 0 {
		t.Errorf("Pending() = %d after submitting a segment", r.Pending())
	}
	SubmitPolygon(r, geometry.NewPolygon(triangleAt(0)...), Red)
	if r.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", r.Pending())
	}
}

type failingSurface struct {
	Recorder
	err error
}

func (f *failingSurface) FillPolygon(points []math.Vec2, c Color) error {
	_ = f.Recorder.FillPolygon(points, c)
	return f.err
}

func TestRasterizeReturnsSurfaceError(t *testing.T) {
	boom := errors.New("boom")
	s := &failingSurface{err: boom}
	r := NewRasterizer(New(Size{Width: 10, Height: 10}), s, DefaultOptions())
	r.Submit(triangleAt(0), Red)
	r.Submit(triangleAt(0.5), Blue)

	st, err := r.Rasterize()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if len(s.Calls) != 2 || st.Drawn != 2 {
		t.Errorf("drawing stopped early: %d calls, stats %+v", len(s.Calls), st)
	}
	if r.Pending() != 0 {
		t.Error("fragments not consumed after an error")
	}
}

func TestCanvasStrokeBox(t *testing.T) {
	rec := &Recorder{}
	c := Canvas3D{Projection: camera(), Surface: rec}
	box := geometry.Box{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	if err := c.Stroke(BoxPath(box), White, 1); err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	if rec.Count(DrawLine) != 12 {
		t.Errorf("got %d lines, want 12", rec.Count(DrawLine))
	}

	rec.Reset()
	// One end behind the eye.
	if err := c.Stroke(Line(math.Vec3{}, math.Vec3{Z: 20}), White, 1); err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("segment crossing the eye plane was drawn")
	}
}

func TestPalette(t *testing.T) {
	p := Palette{Red, Green}
	if p.At(3) != Green {
		t.Errorf("At(3) = %v, want Green", p.At(3))
	}
	if (Palette{}).At(5) != White {
		t.Error("empty palette should give White")
	}
}
