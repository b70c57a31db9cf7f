package raster

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/ledcanvas/internal/geom"
)

func poly(closed bool, pts ...geom.Point) []geom.Segment {
	segs := []geom.Segment{{Verb: geom.MoveTo, Pts: [3]geom.Point{pts[0]}}}
	for _, p := range pts[1:] {
		segs = append(segs, geom.Segment{Verb: geom.LineTo, Pts: [3]geom.Point{p}})
	}
	if closed {
		segs = append(segs, geom.Segment{Verb: geom.Close})
	}
	return segs
}

func rect(x, y, w, h float64) []geom.Segment {
	return poly(true, geom.Pt(x, y), geom.Pt(x+w, y), geom.Pt(x+w, y+h), geom.Pt(x, y+h))
}

func TestFillRect(t *testing.T) {
	limit := image.Rect(0, 0, 20, 20)
	m := Fill(rect(2, 3, 5, 4), limit)
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	defer Release(m)

	if m.Rect != image.Rect(2, 3, 7, 7) {
		t.Errorf("Rect = %v, want (2,3)-(7,7)", m.Rect)
	}
	for y := 3; y < 7; y++ {
		for x := 2; x < 7; x++ {
			if a := m.AlphaAt(x, y).A; a != 255 {
				t.Fatalf("alpha(%d,%d) = %d, want 255", x, y, a)
			}
		}
	}
}

func TestFillHalfPixel(t *testing.T) {
	m := Fill(rect(0, 0, 1.5, 1), image.Rect(0, 0, 4, 4))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	defer Release(m)
	if a := m.AlphaAt(1, 0).A; a < 120 || a > 135 {
		t.Errorf("half-covered alpha = %d, want ~128", a)
	}
}

func TestFillClippedToLimit(t *testing.T) {
	m := Fill(rect(-10, -10, 15, 15), image.Rect(0, 0, 8, 8))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	defer Release(m)
	if m.Rect != image.Rect(0, 0, 5, 5) {
		t.Errorf("Rect = %v, want (0,0)-(5,5)", m.Rect)
	}
	if a := m.AlphaAt(0, 0).A; a != 255 {
		t.Errorf("alpha(0,0) = %d, want 255", a)
	}
}

func TestFillOutside(t *testing.T) {
	if m := Fill(rect(50, 50, 5, 5), image.Rect(0, 0, 10, 10)); m != nil {
		t.Errorf("Fill outside limit = %v, want nil", m.Rect)
	}
	if m := Fill(nil, image.Rect(0, 0, 10, 10)); m != nil {
		t.Error("Fill(nil) should be nil")
	}
}

func TestFillNonzeroOverlap(t *testing.T) {
	segs := append(rect(0, 0, 6, 6), rect(2, 2, 6, 6)...)
	m := Fill(segs, image.Rect(0, 0, 10, 10))
	defer Release(m)
	if a := m.AlphaAt(3, 3).A; a != 255 {
		t.Errorf("overlap alpha = %d, want 255", a)
	}
}

func TestContains(t *testing.T) {
	tri := poly(false, geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 10))
	tests := []struct {
		p    geom.Point
		want bool
	}{
		{geom.Pt(5, 5), true},
		{geom.Pt(1, 1), true},
		{geom.Pt(9, 9), false},
		{geom.Pt(0, 5), true},
		{geom.Pt(-1, 5), false},
		{geom.Pt(0, 0), true},
	}
	for _, tt := range tests {
		if got := Contains(tri, tt.p, 0.1); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestContainsNonzero(t *testing.T) {
	// Two same-direction squares: the inner one adds winding, not a hole.
	segs := append(rect(0, 0, 10, 10), rect(3, 3, 4, 4)...)
	if !Contains(segs, geom.Pt(5, 5), 0.1) {
		t.Error("nested same-direction square should be inside")
	}

	// Opposite direction inner square cuts a hole.
	hole := poly(true, geom.Pt(3, 3), geom.Pt(3, 7), geom.Pt(7, 7), geom.Pt(7, 3))
	segs = append(rect(0, 0, 10, 10), hole...)
	if Contains(segs, geom.Pt(5, 5), 0.1) {
		t.Error("counter-wound inner square should be a hole")
	}
}

func TestFillHugeCoordinates(t *testing.T) {
	limit := image.Rect(0, 0, 16, 16)
	tests := []struct {
		name string
		segs []geom.Segment
		want uint8 // alpha at (8, 8)
	}{
		{"band 1e6", rect(-1e6, 6, 2e6, 4), 255},
		{"band 1e7", rect(-1e7, 6, 2e7, 4), 255},
		{"band 1e9", rect(-1e9, 6, 2e9, 4), 255},
		{"cover 1e30", rect(-1e30, -1e30, 2e30, 2e30), 255},
		{"cover max", rect(-1e308, -1e308, 1.5e308, 1.5e308), 255},
		{"triangle 1e20", poly(true, geom.Pt(0, 0), geom.Pt(1e20, 0), geom.Pt(0, 1e20)), 255},
		{"beside 1e300", rect(0, 0, 1e300, 10), 255},
		{"above", rect(-1e20, -1e20, 2e20, 1e20), 0},
		{"slanted", poly(true, geom.Pt(-1e12, -1e12-20), geom.Pt(1e12, 1e12-20), geom.Pt(-1e12, 1e12)), 255},
		{"infinite", poly(true, geom.Pt(math.Inf(-1), 0), geom.Pt(math.Inf(1), 0), geom.Pt(math.Inf(1), 16), geom.Pt(math.Inf(-1), 16)), 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Fill(tt.segs, limit)
			var got uint8
			if m != nil {
				got = m.AlphaAt(8, 8).A
				Release(m)
			}
			if got != tt.want {
				t.Errorf("alpha(8,8) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFillHugeCurve(t *testing.T) {
	const r = 1e200
	k := 0.5522847498 * r
	segs := []geom.Segment{
		{Verb: geom.MoveTo, Pts: [3]geom.Point{geom.Pt(5+r, 5)}},
		{Verb: geom.CubicTo, Pts: [3]geom.Point{geom.Pt(5+r, 5+k), geom.Pt(5+k, 5+r), geom.Pt(5, 5+r)}},
		{Verb: geom.CubicTo, Pts: [3]geom.Point{geom.Pt(5-k, 5+r), geom.Pt(5-r, 5+k), geom.Pt(5-r, 5)}},
		{Verb: geom.CubicTo, Pts: [3]geom.Point{geom.Pt(5-r, 5-k), geom.Pt(5-k, 5-r), geom.Pt(5, 5-r)}},
		{Verb: geom.CubicTo, Pts: [3]geom.Point{geom.Pt(5+k, 5-r), geom.Pt(5+r, 5-k), geom.Pt(5+r, 5)}},
		{Verb: geom.Close},
	}
	m := Fill(segs, image.Rect(0, 0, 10, 10))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	defer Release(m)
	if a := m.AlphaAt(5, 5).A; a != 255 {
		t.Errorf("alpha(5,5) = %d, want 255", a)
	}
}

func TestFillCurveCrossingEdge(t *testing.T) {
	// A quadratic bulging far outside the limit still closes the shape
	// across the visible rows.
	segs := []geom.Segment{
		{Verb: geom.MoveTo, Pts: [3]geom.Point{geom.Pt(2, 0)}},
		{Verb: geom.QuadTo, Pts: [3]geom.Point{geom.Pt(1e9, 8), geom.Pt(2, 16)}},
		{Verb: geom.Close},
	}
	m := Fill(segs, image.Rect(0, 0, 16, 16))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	defer Release(m)
	if a := m.AlphaAt(10, 8).A; a != 255 {
		t.Errorf("alpha(10,8) = %d, want 255", a)
	}
	if a := m.AlphaAt(0, 8).A; a != 0 {
		t.Errorf("alpha(0,8) = %d, want 0", a)
	}
}
