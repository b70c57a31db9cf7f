package ledcanvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/ledcanvas/internal/blend"
)

// Color is a straight-alpha colour with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// RGB returns an opaque colour. Channels are truncated to integers and
// clamped to [0, 255]; NaN becomes 0.
func RGB(r, g, b float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// RGBA returns a colour with alpha in [0, 255], clamped like RGB.
func RGBA(r, g, b, a float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Trunc(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String formats the colour as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WithAlpha returns c with its alpha multiplied by alpha in [0, 1],
// rounded and clamped to [0, 255].
func (c Color) WithAlpha(alpha float64) Color {
	if math.IsNaN(alpha) || alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	a := math.Round(float64(c.A) * alpha)
	c.A = uint8(math.Max(0, math.Min(255, a)))
	return c
}

// premul converts to a premultiplied float colour.
func (c Color) premul() blend.Color {
	a := float64(c.A) / 255
	return blend.Color{
		R: float64(c.R) / 255 * a,
		G: float64(c.G) / 255 * a,
		B: float64(c.B) / 255 * a,
		A: a,
	}
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading
// '#' is optional.
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	var v [4]uint32
	v[3] = 255
	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: color %q", ErrInvalidArgument, hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("%w: color %q", ErrInvalidArgument, hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidArgument, hex)
	}
	return Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}
