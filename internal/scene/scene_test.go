package scene

import (
	"errors"
	"slices"
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/projection"
)

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("got %d scenes: %v", len(names), names)
	}
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, n := range names {
		if Describe(n) == "" {
			t.Errorf("scene %s has no description", n)
		}
	}
}

func TestUnknownScene(t *testing.T) {
	if _, err := New("teapot", 12); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestEverySceneBuilds(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 12)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if s.Name != name {
				t.Errorf("Name = %s", s.Name)
			}
			m := s.Mesh()
			if m.TriangleCount() == 0 {
				t.Fatal("empty scene")
			}
			if bad := s.Validate(zap.NewNop()); bad != 0 {
				t.Errorf("%d invalid parts", bad)
			}

			var rec projection.Recorder
			p := projection.New(projection.Size{Width: 100, Height: 100})
			r := projection.NewRasterizer(p, &rec, projection.Options{Fill: true})
			n := s.Submit(r, projection.Palette{projection.Red, projection.Blue})
			if n != m.TriangleCount() {
				t.Errorf("submitted %d, want %d", n, m.TriangleCount())
			}
			if r.Pending() != n {
				t.Errorf("pending %d, want %d", r.Pending(), n)
			}
		})
	}
}

func TestRevolveSceneCounts(t *testing.T) {
	s, err := New("revolve", 8)
	if err != nil {
		t.Fatal(err)
	}
	// The profile has three segments; the two touching the axis collapse
	// to triangles, the outer one gives two per step.
	if got := s.Mesh().TriangleCount(); got != 8*4 {
		t.Errorf("triangles = %d, want %d", got, 8*4)
	}
	if s.Overlay == nil || len(s.Overlay.Segments()) != 3 {
		t.Error("expected the three-segment profile overlay")
	}
}

func TestHalfEdgeSceneUsesFixedColor(t *testing.T) {
	s, err := New("halfedge", 12)
	if err != nil {
		t.Fatal(err)
	}
	if s.Parts[0].Color == nil || *s.Parts[0].Color != projection.Green {
		t.Error("expected the half-edge quad part to be green")
	}

	var rec projection.Recorder
	p := projection.New(projection.Size{Width: 100, Height: 100})
	r := projection.NewRasterizer(p, &rec, projection.Options{Fill: true})
	s.Parts = s.Parts[:1]
	s.Submit(r, projection.Palette{projection.Red})
	if _, err := r.Rasterize(); err != nil {
		t.Fatal(err)
	}
	for _, c := range rec.Calls {
		if c.Color != projection.Green {
			t.Errorf("draw call color %+v, want green", c.Color)
		}
	}
}

func TestBoxesBounds(t *testing.T) {
	s, err := New("boxes", 12)
	if err != nil {
		t.Fatal(err)
	}
	b := s.Bounds()
	if b.Min.X != -2 || b.Max.X != 2 {
		t.Errorf("bounds = %+v, want x in [-2, 2]", b)
	}
	if got := len(s.Overlay.Segments()); got != 24 {
		t.Errorf("overlay segments = %d, want 24", got)
	}
}

func TestRevolveSceneFacesCamera(t *testing.T) {
	s, err := New("revolve", 16)
	if err != nil {
		t.Fatal(err)
	}
	p := projection.New(projection.Size{Width: 200, Height: 200})
	p.View = math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.Vec3{Y: 1})
	p.Projection = math.Perspective(1, 1, 0.1, 100)

	var near, far int
	for i, tri := range s.Mesh().Triangles() {
		n := tri.Normal()
		if n.Y > 1e-3 || n.Y < -1e-3 {
			continue
		}
		c := tri.Polygon().Centroid()
		var want int
		switch {
		case c.Z > 0.3:
			want = 1
			near++
		case c.Z < 0.1:
			far++
		default:
			continue
		}
		var rec projection.Recorder
		r := projection.NewRasterizer(p, &rec, projection.DefaultOptions())
		projection.SubmitPolygon(r, tri.Polygon(), projection.Red)
		st, err := r.Rasterize()
		if err != nil {
			t.Fatal(err)
		}
		if st.Drawn != want {
			t.Errorf("side triangle %d at %v: drawn %d, want %d", i, c, st.Drawn, want)
		}
	}
	if near == 0 || far == 0 {
		t.Fatalf("expected wall triangles on both sides, got near=%d far=%d", near, far)
	}
}

func TestRevolveSceneFacesOutward(t *testing.T) {
	s, err := New("revolve", 12)
	if err != nil {
		t.Fatal(err)
	}
	center := s.Bounds().Center()
	for i, tri := range s.Mesh().Triangles() {
		if d := tri.Normal().Dot(tri.Polygon().Centroid().Sub(center)); d <= 0 {
			t.Errorf("triangle %d faces inward (%v)", i, d)
		}
	}
}
