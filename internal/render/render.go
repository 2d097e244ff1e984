// Package render runs one software rasterization pass per frame.
package render

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/projection/internal/camera"
	"github.com/Faultbox/projection/internal/config"
	"github.com/Faultbox/projection/internal/scene"
	"github.com/Faultbox/projection/internal/surface"
	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/projection"
)

// Target is a drawing surface that can also be cleared.
type Target interface {
	projection.Surface
	Clear(c projection.Color)
	Size() projection.Size
}

// Axis colors.
var (
	AxisX = projection.RGB(0.9, 0.2, 0.2)
	AxisY = projection.RGB(0.2, 0.8, 0.2)
	AxisZ = projection.RGB(0.2, 0.4, 0.9)
)

// OverlayColor strokes scene overlays.
var OverlayColor = projection.Color{R: 1, G: 1, B: 1, A: 0.6}

// Renderer turns a scene into one frame.
type Renderer struct {
	Camera  *camera.Orbit
	Options projection.Options
	// Model orients the scene in world space. The zero value is no rotation.
	Model math.Quat

	cfg        config.RenderConfig
	palette    projection.Palette
	background projection.Color
	log        *zap.Logger
}

// New builds a renderer from cfg. A nil logger disables logging.
func New(cfg *config.Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	palette, err := surface.ParsePalette(cfg.Scene.Palette)
	if err != nil {
		return nil, fmt.Errorf("scene palette: %w", err)
	}
	bg, err := surface.ParseColor(cfg.Render.Background)
	if err != nil {
		return nil, fmt.Errorf("render background: %w", err)
	}
	return &Renderer{
		Camera:     CameraFrom(cfg),
		Options:    OptionsFrom(cfg.Rasterizer, cfg.Render.LineWidth),
		Model:      math.QuatIdentity(),
		cfg:        cfg.Render,
		palette:    palette,
		background: bg,
		log:        log,
	}, nil
}

// CameraFrom places an orbit camera from the camera and render sections.
func CameraFrom(cfg *config.Config) *camera.Orbit {
	c := camera.NewOrbit()
	c.Distance = cfg.Camera.Distance
	c.Pitch = camera.Radians(cfg.Camera.Pitch)
	c.Yaw = camera.Radians(cfg.Camera.Yaw)
	c.FovY = camera.Radians(cfg.Render.FovY)
	c.Near = cfg.Render.Near
	c.Far = cfg.Render.Far
	c.Orthographic = cfg.Render.Orthographic
	return c
}

// OptionsFrom converts the rasterizer config section.
func OptionsFrom(rc config.RasterizerConfig, lineWidth float32) projection.Options {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return projection.Options{
		DrawNormals:      rc.DrawNormals,
		ShadeWithNormals: rc.ShadeWithNormals,
		Fill:             rc.Fill,
		Stroke:           rc.Stroke,
		BackfaceCulling:  rc.BackfaceCulling,
		LineWidth:        lineWidth,
	}
}

// Spin turns the model about the world Y axis by angle radians.
func (r *Renderer) Spin(angle float32) {
	m := r.Model
	if m == (math.Quat{}) {
		m = math.QuatIdentity()
	}
	r.Model = math.QuatFromAxisAngle(math.Vec3{Y: 1}, angle).Mul(m).Normalize()
}

// Projection returns the camera transforms for a surface of the given size.
// The model scale and orientation are folded into the view matrix.
func (r *Renderer) Projection(size projection.Size) projection.Projection3D {
	p := projection.New(size)
	p.View = r.Camera.ViewMatrix()
	if s := r.cfg.Scale; s > 0 && s != 1 {
		p.View = p.View.Mul(math.Scale(s, s, s))
	}
	p.View = p.View.Mul(r.Model.ToMat4())
	p.Projection = r.Camera.ProjectionMatrix(size.Aspect())
	p.Clip = projection.ViewportClip(size)
	return p
}

// Draw clears t, draws the axes, rasterizes sc and strokes its overlay.
// The first drawing error is returned after the pass completes.
func (r *Renderer) Draw(t Target, sc *scene.Scene) (projection.Stats, error) {
	start := time.Now()
	t.Clear(r.background)

	canvas := projection.Canvas3D{Projection: r.Projection(t.Size()), Surface: t}
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if r.cfg.Axes {
		keep(canvas.Stroke(projection.Line(math.Vec3{}, math.Vec3{X: 1}), AxisX, r.Options.LineWidth))
		keep(canvas.Stroke(projection.Line(math.Vec3{}, math.Vec3{Y: 1}), AxisY, r.Options.LineWidth))
		keep(canvas.Stroke(projection.Line(math.Vec3{}, math.Vec3{Z: 1}), AxisZ, r.Options.LineWidth))
	}

	rast := canvas.Rasterizer(r.Options)
	sc.Submit(rast, r.palette)
	stats, err := rast.Rasterize()
	keep(err)

	if sc.Overlay != nil {
		keep(canvas.Stroke(sc.Overlay, OverlayColor, r.Options.LineWidth))
	}

	r.log.Debug("frame",
		zap.String("scene", sc.Name),
		zap.Int("submitted", stats.Submitted),
		zap.Int("clipped", stats.Clipped),
		zap.Int("culled", stats.Culled),
		zap.Int("drawn", stats.Drawn),
		zap.Duration("elapsed", time.Since(start)),
	)
	if firstErr != nil {
		r.log.Error("frame draw failed", zap.String("scene", sc.Name), zap.Error(firstErr))
	}
	return stats, firstErr
}
