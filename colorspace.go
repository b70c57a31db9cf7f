package ledcanvas

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBTriple is an RGB colour with integer channels in [0, 255].
type RGBTriple struct {
	R, G, B int
}

// HSLTriple is an HSL colour with every component in [0, 1].
type HSLTriple struct {
	H, S, L float64
}

// HSLToRGB converts hue, saturation and lightness, each in [0, 1], to
// RGB. Inputs are clamped.
func HSLToRGB(h, s, l float64) RGBTriple {
	c := colorful.Hsl(unit(h)*360, unit(s), unit(l))
	r, g, b := c.Clamped().RGB255()
	return RGBTriple{R: int(r), G: int(g), B: int(b)}
}

// RGBToHSL converts channels in [0, 255] to HSL. Inputs are clamped.
// Achromatic colours report hue and saturation 0.
func RGBToHSL(r, g, b float64) HSLTriple {
	c := colorful.Color{R: unit(r / 255), G: unit(g / 255), B: unit(b / 255)}
	h, s, l := c.Hsl()
	if s == 0 {
		h = 0
	}
	return HSLTriple{H: h / 360, S: s, L: l}
}

func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
