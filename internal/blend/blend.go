// Package blend implements the compositing operators and blend modes used
// by globalCompositeOperation.
//
// All functions work on premultiplied colours with components in [0, 1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Color is a premultiplied RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Mode is a compositing operator.
type Mode uint8

const (
	// Porter-Duff operators.
	SourceOver      Mode = iota // S + D*(1-Sa) [default]
	Clear                       // 0
	Copy                        // S
	SourceIn                    // S*Da
	SourceOut                   // S*(1-Da)
	SourceAtop                  // S*Da + D*(1-Sa)
	DestinationOver             // S*(1-Da) + D
	DestinationIn               // D*Sa
	DestinationOut              // D*(1-Sa)
	DestinationAtop             // S*(1-Da) + D*Sa
	Xor                         // S*(1-Da) + D*(1-Sa)
	Lighter                     // S + D, clamped

	// Separable blend modes.
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable blend modes.
	Hue
	Saturation
	ColorMode
	Luminosity
)

var modeNames = [...]string{
	SourceOver:      "source-over",
	Clear:           "clear",
	Copy:            "copy",
	SourceIn:        "source-in",
	SourceOut:       "source-out",
	SourceAtop:      "source-atop",
	DestinationOver: "destination-over",
	DestinationIn:   "destination-in",
	DestinationOut:  "destination-out",
	DestinationAtop: "destination-atop",
	Xor:             "xor",
	Lighter:         "lighter",
	Multiply:        "multiply",
	Screen:          "screen",
	Overlay:         "overlay",
	Darken:          "darken",
	Lighten:         "lighten",
	ColorDodge:      "color-dodge",
	ColorBurn:       "color-burn",
	HardLight:       "hard-light",
	SoftLight:       "soft-light",
	Difference:      "difference",
	Exclusion:       "exclusion",
	Hue:             "hue",
	Saturation:      "saturation",
	ColorMode:       "color",
	Luminosity:      "luminosity",
}

// String returns the CSS name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "source-over"
}

// Parse maps a globalCompositeOperation name to a Mode. Clear is
// reserved for clearRect, so "clear" is rejected like any unknown name.
func Parse(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name && Mode(i) != Clear {
			return Mode(i), true
		}
	}
	return SourceOver, false
}

// Composite combines source s over destination d with mode m.
func Composite(m Mode, s, d Color) Color {
	switch m {
	case SourceOver:
		return porterDuff(s, d, 1, 1-s.A)
	case Clear:
		return Color{}
	case Copy:
		return s
	case SourceIn:
		return porterDuff(s, d, d.A, 0)
	case SourceOut:
		return porterDuff(s, d, 1-d.A, 0)
	case SourceAtop:
		return porterDuff(s, d, d.A, 1-s.A)
	case DestinationOver:
		return porterDuff(s, d, 1-d.A, 1)
	case DestinationIn:
		return porterDuff(s, d, 0, s.A)
	case DestinationOut:
		return porterDuff(s, d, 0, 1-s.A)
	case DestinationAtop:
		return porterDuff(s, d, 1-d.A, s.A)
	case Xor:
		return porterDuff(s, d, 1-d.A, 1-s.A)
	case Lighter:
		return Color{
			R: min(s.R+d.R, 1),
			G: min(s.G+d.G, 1),
			B: min(s.B+d.B, 1),
			A: min(s.A+d.A, 1),
		}
	case Hue, Saturation, ColorMode, Luminosity:
		return nonSeparable(m, s, d)
	}
	if f := separableFunc(m); f != nil {
		return separable(s, d, f)
	}
	return porterDuff(s, d, 1, 1-s.A)
}

// Mix applies the mode with partial coverage: the result moves from d
// towards Composite(m, s, d) by cov. Pixels outside the shape (cov == 0)
// keep their destination value for every mode.
func Mix(m Mode, s, d Color, cov float64) Color {
	if cov <= 0 {
		return d
	}
	r := Composite(m, s, d)
	if cov >= 1 {
		return r
	}
	return Color{
		R: d.R + (r.R-d.R)*cov,
		G: d.G + (r.G-d.G)*cov,
		B: d.B + (r.B-d.B)*cov,
		A: d.A + (r.A-d.A)*cov,
	}
}

func porterDuff(s, d Color, fa, fb float64) Color {
	return Color{
		R: s.R*fa + d.R*fb,
		G: s.G*fa + d.G*fb,
		B: s.B*fa + d.B*fb,
		A: s.A*fa + d.A*fb,
	}
}
