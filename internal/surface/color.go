package surface

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"

	"github.com/Faultbox/projection/pkg/projection"
)

var (
	// ErrBadColor is returned for hex strings gg cannot parse.
	ErrBadColor = errors.New("bad hex color")
	// ErrUnsupportedFormat is returned by Save for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading
// '#' is optional.
func ParseColor(hex string) (projection.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return projection.Color{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return projection.Color{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
		}
	}
	c := gg.Hex(digits)
	return projection.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}, nil
}

// ParsePalette parses every entry of hexes.
func ParsePalette(hexes []string) (projection.Palette, error) {
	p := make(projection.Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
