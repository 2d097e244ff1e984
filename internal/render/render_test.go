package render

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/projection/internal/config"
	"github.com/Faultbox/projection/internal/scene"
	"github.com/Faultbox/projection/internal/surface"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/projection"
)

type recordingTarget struct {
	projection.Recorder
	cleared []projection.Color
}

func (r *recordingTarget) Clear(c projection.Color) { r.cleared = append(r.cleared, c) }
func (r *recordingTarget) Size() projection.Size { return projection.Size{Width: 200, Height: 100} }

var errSurface = errors.New("surface lost")

type failingTarget struct{ recordingTarget }

func (f *failingTarget) FillPolygon([]math.Vec2, projection.Color) error { return errSurface }

func newScene(t *testing.T, name string) *scene.Scene {
	t.Helper()
	s, err := scene.New(name, 16)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDrawDefaultConfig(t *testing.T) {
	r, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var target recordingTarget
	stats, err := r.Draw(&target, newScene(t, "cylinder"))
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if len(target.cleared) != 1 {
		t.Errorf("cleared %d times, want 1", len(target.cleared))
	}
	if got := target.Count(projection.DrawLine); got != 3 {
		t.Errorf("axis lines = %d, want 3", got)
	}
	if stats.Drawn == 0 || stats.Culled == 0 {
		t.Errorf("expected some fragments drawn and some culled, got %+v", stats)
	}
	if stats.Drawn+stats.Culled+stats.Clipped != stats.Submitted {
		t.Errorf("stats do not add up: %+v", stats)
	}
	if got := target.Count(projection.DrawFill); got != stats.Drawn {
		t.Errorf("fills = %d, want %d", got, stats.Drawn)
	}
}

func TestDrawWireframeAndOverlay(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Axes = false
	cfg.Rasterizer.Fill = false
	cfg.Rasterizer.Stroke = true
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	var target recordingTarget
	sc := newScene(t, "revolve")
	stats, err := r.Draw(&target, sc)
	if err != nil {
		t.Fatal(err)
	}
	if target.Count(projection.DrawFill) != 0 {
		t.Error("wireframe should not fill")
	}
	if got := target.Count(projection.DrawStroke); got != stats.Drawn {
		t.Errorf("strokes = %d, want %d", got, stats.Drawn)
	}
	// Overlay segments are the only lines; some may sit behind the eye
	// plane but not with the default camera.
	if got := target.Count(projection.DrawLine); got != len(sc.Overlay.Segments()) {
		t.Errorf("overlay lines = %d, want %d", got, len(sc.Overlay.Segments()))
	}
}

func TestDrawReturnsSurfaceError(t *testing.T) {
	r, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var target failingTarget
	if _, err := r.Draw(&target, newScene(t, "sphere")); !errors.Is(err, errSurface) {
		t.Errorf("expected surface error, got %v", err)
	}
}

func TestNewRejectsBadColors(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Palette = []string{"#zzzzzz"}
	if _, err := New(cfg, nil); !errors.Is(err, surface.ErrBadColor) {
		t.Errorf("expected ErrBadColor for palette, got %v", err)
	}

	cfg = config.Default()
	cfg.Render.Background = "black"
	if _, err := New(cfg, nil); !errors.Is(err, surface.ErrBadColor) {
		t.Errorf("expected ErrBadColor for background, got %v", err)
	}
}

func TestProjectionCentersOrbitTarget(t *testing.T) {
	r, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	p := r.Projection(projection.Size{Width: 640, Height: 480})
	if got := p.Project(math.Vec3{}); abs(got.X) > 1e-3 || abs(got.Y) > 1e-3 {
		t.Errorf("origin projects to %+v, want surface center", got)
	}
}

func TestSpinTurnsModel(t *testing.T) {
	size := projection.Size{Width: 640, Height: 480}
	still, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	turned, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	turned.Spin(gomath.Pi / 2)

	// A quarter turn about Y carries +X onto -Z.
	got := turned.Projection(size).Project(math.Vec3{X: 1})
	want := still.Projection(size).Project(math.Vec3{Z: -1})
	if abs(got.X-want.X) > 1e-2 || abs(got.Y-want.Y) > 1e-2 {
		t.Errorf("turned +X projects to %+v, want %+v", got, want)
	}

	for i := 0; i < 3; i++ {
		turned.Spin(gomath.Pi / 2)
	}
	got = turned.Projection(size).Project(math.Vec3{X: 1})
	want = still.Projection(size).Project(math.Vec3{X: 1})
	if abs(got.X-want.X) > 1e-2 || abs(got.Y-want.Y) > 1e-2 {
		t.Errorf("full turn: +X projects to %+v, want %+v", got, want)
	}
}

func TestSpinFromZeroModel(t *testing.T) {
	r, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Model = math.Quat{}
	r.Spin(gomath.Pi / 2)
	if got := r.Model.Rotate(math.Vec3{X: 1}); !got.ApproxEqual(math.Vec3{Z: -1}, 1e-4) {
		t.Errorf("Spin from zero model: +X goes to %v, want (0, 0, -1)", got)
	}
}

func TestOptionsFrom(t *testing.T) {
	o := OptionsFrom(config.RasterizerConfig{Fill: true, DrawNormals: true}, 0)
	if !o.Fill || !o.DrawNormals || o.Stroke || o.LineWidth != 1 {
		t.Errorf("unexpected options %+v", o)
	}
}

func TestDrawOnCanvas(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height = 120, 90
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := surface.New(cfg.Render.Width, cfg.Render.Height, nil)
	defer s.Close()

	if _, err := r.Draw(s, newScene(t, "cylinder")); err != nil {
		t.Fatal(err)
	}
	bg, _ := surface.ParseColor(cfg.Render.Background)
	cr, cg, cb, _ := s.Image().At(60, 45).RGBA()
	br, bgc, bb := uint32(bg.R*255), uint32(bg.G*255), uint32(bg.B*255)
	if cr>>8 == br && cg>>8 == bgc && cb>>8 == bb {
		t.Error("center pixel still shows the background")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
