// Package geom holds the point and path-segment types shared by the
// rasterizer, the stroke expander and the public Path type.
package geom

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul scales p by s.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the vector length.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Perp rotates the vector 90 degrees counter-clockwise (in y-up terms).
func (p Point) Perp() Point { return Point{X: -p.Y, Y: p.X} }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Angle returns the direction of the vector in radians.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Verb identifies the kind of a path segment.
type Verb uint8

const (
	// MoveTo starts a new sub-path at Pts[0].
	MoveTo Verb = iota
	// LineTo draws a straight line to Pts[0].
	LineTo
	// QuadTo draws a quadratic Bézier with control Pts[0] ending at Pts[1].
	QuadTo
	// CubicTo draws a cubic Bézier with controls Pts[0], Pts[1] ending at Pts[2].
	CubicTo
	// Close closes the current sub-path.
	Close
)

// Segment is one path command.
type Segment struct {
	Verb Verb
	Pts  [3]Point
}

// End returns the end point of the segment. Close has no end point of
// its own and returns the zero point.
func (s Segment) End() Point {
	switch s.Verb {
	case MoveTo, LineTo:
		return s.Pts[0]
	case QuadTo:
		return s.Pts[1]
	case CubicTo:
		return s.Pts[2]
	}
	return Point{}
}

// Affine is a 2x3 affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Apply transforms p.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Transform maps every point of segs through m in place.
func Transform(segs []Segment, m Affine) {
	for i := range segs {
		n := pointCount(segs[i].Verb)
		for j := 0; j < n; j++ {
			segs[i].Pts[j] = m.Apply(segs[i].Pts[j])
		}
	}
}

// Bounds returns the control-point bounding box of segs.
// ok is false when segs has no points.
func Bounds(segs []Segment) (minPt, maxPt Point, ok bool) {
	minPt = Point{X: math.Inf(1), Y: math.Inf(1)}
	maxPt = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range segs {
		n := pointCount(s.Verb)
		for j := 0; j < n; j++ {
			p := s.Pts[j]
			minPt.X = math.Min(minPt.X, p.X)
			minPt.Y = math.Min(minPt.Y, p.Y)
			maxPt.X = math.Max(maxPt.X, p.X)
			maxPt.Y = math.Max(maxPt.Y, p.Y)
			ok = true
		}
	}
	return minPt, maxPt, ok
}

func pointCount(v Verb) int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}
