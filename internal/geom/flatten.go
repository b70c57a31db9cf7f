package geom

import "math"

// Polyline is one flattened sub-path.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts segs into polylines whose chords deviate from the
// curves by at most tolerance.
func Flatten(segs []Segment, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var out []Polyline
	var cur *Polyline
	var start, last Point

	begin := func(p Point) {
		out = append(out, Polyline{Points: []Point{p}})
		cur = &out[len(out)-1]
		start, last = p, p
	}

	for _, s := range segs {
		switch s.Verb {
		case MoveTo:
			begin(s.Pts[0])
		case LineTo:
			if cur == nil {
				begin(last)
			}
			cur.Points = append(cur.Points, s.Pts[0])
			last = s.Pts[0]
		case QuadTo:
			if cur == nil {
				begin(last)
			}
			cur.Points = flattenQuad(cur.Points, last, s.Pts[0], s.Pts[1], tolerance)
			last = s.Pts[1]
		case CubicTo:
			if cur == nil {
				begin(last)
			}
			cur.Points = flattenCubic(cur.Points, last, s.Pts[0], s.Pts[1], s.Pts[2], tolerance)
			last = s.Pts[2]
		case Close:
			if cur != nil {
				cur.Closed = true
				last = start
				cur = nil
			}
		}
	}
	return out
}

// flattenQuad appends the points of a quadratic Bézier (excluding p0)
// using a uniform subdivision sized from the control polygon deviation.
func flattenQuad(dst []Point, p0, p1, p2 Point, tol float64) []Point {
	dd := p0.Sub(p1.Mul(2)).Add(p2).Len()
	n := clampSteps(math.Ceil(math.Sqrt(dd / (4 * tol))))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(p1, t)
		b := p1.Lerp(p2, t)
		dst = append(dst, a.Lerp(b, t))
	}
	return dst
}

// flattenCubic is the cubic counterpart of flattenQuad.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tol float64) []Point {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Len()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Len()
	dd := math.Max(d1, d2)
	n := clampSteps(math.Ceil(math.Sqrt(3 * dd / (4 * tol))))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(p1, t)
		b := p1.Lerp(p2, t)
		c := p2.Lerp(p3, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		dst = append(dst, ab.Lerp(bc, t))
	}
	return dst
}

// clampSteps converts a subdivision count to [1, 256]. NaN gives 1.
func clampSteps(n float64) int {
	if !(n >= 1) {
		return 1
	}
	if n > 256 {
		return 256
	}
	return int(n)
}
