package projection

import "github.com/Faultbox/projection/pkg/math"

// Surface is an immediate-mode 2D drawing target. Coordinates are pixels
// relative to the surface center.
type Surface interface {
	FillPolygon(points []math.Vec2, c Color) error
	StrokePolygon(points []math.Vec2, c Color, width float32) error
	StrokeLine(a, b math.Vec2, c Color, width float32) error
}

// DrawKind identifies a recorded draw call.
type DrawKind int

const (
	DrawFill DrawKind = iota
	DrawStroke
	DrawLine
)

func (k DrawKind) String() string {
	switch k {
	case DrawFill:
		return "fill"
	case DrawStroke:
		return "stroke"
	case DrawLine:
		return "line"
	}
	return "unknown"
}

// DrawCall is one call made on a Recorder.
type DrawCall struct {
	Kind   DrawKind
	Points []math.Vec2
	Color  Color
	Width  float32
}

// Recorder is a Surface that keeps every call instead of drawing it.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) FillPolygon(points []math.Vec2, c Color) error {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawFill, Points: append([]math.Vec2(nil), points...), Color: c})
	return nil
}

func (r *Recorder) StrokePolygon(points []math.Vec2, c Color, width float32) error {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawStroke, Points: append([]math.Vec2(nil), points...), Color: c, Width: width})
	return nil
}

func (r *Recorder) StrokeLine(a, b math.Vec2, c Color, width float32) error {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawLine, Points: []math.Vec2{a, b}, Color: c, Width: width})
	return nil
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind DrawKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
