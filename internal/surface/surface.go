// Package surface draws projected polygons onto a gogpu/gg software canvas.
package surface

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/projection/pkg/math"
	"github.com/Faultbox/projection/pkg/projection"
)

// GG implements projection.Surface on a gg.Context. Surface coordinates
// have their origin at the canvas center, matching projection.ViewportClip.
type GG struct {
	ctx *gg.Context
	log *zap.Logger
}

// New returns a width x height canvas. A nil logger disables logging.
func New(width, height int, log *zap.Logger) *GG {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := gg.NewContext(width, height)
	ctx.Translate(float64(width)/2, float64(height)/2)
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	log.Debug("canvas created", zap.Int("width", width), zap.Int("height", height))
	return &GG{ctx: ctx, log: log}
}

// Context exposes the underlying canvas.
func (s *GG) Context() *gg.Context {
	return s.ctx
}

// Size returns the canvas extent as a projection size.
func (s *GG) Size() projection.Size {
	return projection.Size{Width: float32(s.ctx.Width()), Height: float32(s.ctx.Height())}
}

// Clear fills the whole canvas with c.
func (s *GG) Clear(c projection.Color) {
	s.ctx.ClearWithColor(toRGBA(c))
}

// FillPolygon fills a closed outline.
func (s *GG) FillPolygon(points []math.Vec2, c projection.Color) error {
	if len(points) < 3 {
		return nil
	}
	s.path(points)
	s.setColor(c)
	return s.ctx.Fill()
}

// StrokePolygon strokes a closed outline.
func (s *GG) StrokePolygon(points []math.Vec2, c projection.Color, width float32) error {
	if len(points) < 2 {
		return nil
	}
	s.path(points)
	s.setColor(c)
	s.ctx.SetLineWidth(float64(width))
	return s.ctx.Stroke()
}

// StrokeLine strokes one segment.
func (s *GG) StrokeLine(a, b math.Vec2, c projection.Color, width float32) error {
	s.ctx.MoveTo(float64(a.X), float64(a.Y))
	s.ctx.LineTo(float64(b.X), float64(b.Y))
	s.setColor(c)
	s.ctx.SetLineWidth(float64(width))
	return s.ctx.Stroke()
}

func (s *GG) path(points []math.Vec2) {
	s.ctx.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		s.ctx.LineTo(float64(p.X), float64(p.Y))
	}
	s.ctx.ClosePath()
}

func (s *GG) setColor(c projection.Color) {
	s.ctx.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

// Image returns a snapshot of the canvas pixels.
func (s *GG) Image() image.Image {
	return s.ctx.Image()
}

// EncodePNG writes the canvas as PNG.
func (s *GG) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

// EncodeBMP writes the canvas as an uncompressed BMP.
func (s *GG) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, s.ctx.Image())
}

// Save writes the canvas to path, choosing the format from the extension
// (.png or .bmp).
func (s *GG) Save(path string) error {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = s.EncodePNG
	case ".bmp":
		encode = s.EncodeBMP
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.log.Info("frame saved", zap.String("path", path))
	return nil
}

// Close releases the canvas.
func (s *GG) Close() error {
	return s.ctx.Close()
}

func toRGBA(c projection.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// Screenshot saves the canvas as dir/prefix_<timestamp>.png and returns the
// file name.
func (s *GG) Screenshot(dir, prefix string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	name := fmt.Sprintf("%s_%s.png", prefix, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)
	if err := s.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
