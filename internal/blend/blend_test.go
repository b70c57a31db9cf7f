package blend

import (
	"math"
	"testing"
)

func near(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Mode
		ok   bool
	}{
		{"source-over", SourceOver, true},
		{"lighter", Lighter, true},
		{"copy", Copy, true},
		{"color", ColorMode, true},
		{"luminosity", Luminosity, true},
		{"clear", SourceOver, false},
		{"bogus", SourceOver, false},
		{"", SourceOver, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Parse(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for m := SourceOver; m <= Luminosity; m++ {
		if m == Clear {
			continue
		}
		got, ok := Parse(m.String())
		if !ok || got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestPorterDuff(t *testing.T) {
	red := Color{R: 1, A: 1}
	halfBlue := Color{B: 0.5, A: 0.5}

	tests := []struct {
		mode Mode
		s, d Color
		want Color
	}{
		{SourceOver, halfBlue, red, Color{R: 0.5, B: 0.5, A: 1}},
		{Copy, halfBlue, red, halfBlue},
		{Clear, halfBlue, red, Color{}},
		{SourceIn, red, Color{}, Color{}},
		{SourceIn, red, halfBlue, Color{R: 0.5, A: 0.5}},
		{DestinationOut, red, halfBlue, Color{}},
		{DestinationOver, halfBlue, red, red},
		{Xor, red, red, Color{}},
		{Lighter, red, Color{G: 1, A: 1}, Color{R: 1, G: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := Composite(tt.mode, tt.s, tt.d); !near(got, tt.want) {
				t.Errorf("Composite(%v) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSeparableOpaque(t *testing.T) {
	s := Color{R: 0.5, G: 0.2, B: 1, A: 1}
	d := Color{R: 0.5, G: 0.8, B: 0, A: 1}

	got := Composite(Multiply, s, d)
	if want := (Color{R: 0.25, G: 0.16, B: 0, A: 1}); !near(got, want) {
		t.Errorf("multiply = %+v, want %+v", got, want)
	}
	got = Composite(Screen, s, d)
	if want := (Color{R: 0.75, G: 0.84, B: 1, A: 1}); !near(got, want) {
		t.Errorf("screen = %+v, want %+v", got, want)
	}
	got = Composite(Difference, s, d)
	if want := (Color{R: 0, G: 0.6, B: 1, A: 1}); !near(got, want) {
		t.Errorf("difference = %+v, want %+v", got, want)
	}
}

func TestBlendOverTransparentIsSource(t *testing.T) {
	s := Color{R: 0.3, G: 0.2, B: 0.1, A: 0.5}
	for m := Multiply; m <= Luminosity; m++ {
		if got := Composite(m, s, Color{}); !near(got, s) {
			t.Errorf("%v over transparent = %+v, want %+v", m, got, s)
		}
	}
}

func TestLuminosityKeepsBackdropHue(t *testing.T) {
	gray := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	red := Color{R: 1, A: 1}
	got := Composite(Luminosity, gray, red)
	if got.G != got.B {
		t.Errorf("luminosity result lost hue symmetry: %+v", got)
	}
	if math.Abs(lum(got.R, got.G, got.B)-0.5) > 1e-9 {
		t.Errorf("luminosity = %v, want 0.5", lum(got.R, got.G, got.B))
	}
}

func TestMixCoverage(t *testing.T) {
	d := Color{R: 1, A: 1}
	s := Color{B: 1, A: 1}
	if got := Mix(Copy, s, d, 0); got != d {
		t.Errorf("Mix cov=0 = %+v, want destination", got)
	}
	got := Mix(SourceOver, s, d, 0.5)
	if want := (Color{R: 0.5, B: 0.5, A: 1}); !near(got, want) {
		t.Errorf("Mix cov=0.5 = %+v, want %+v", got, want)
	}
}
