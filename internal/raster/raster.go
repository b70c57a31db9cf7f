// Package raster turns device-space paths into coverage masks and answers
// point-in-path queries.
//
// Coverage is computed with golang.org/x/image/vector, which accumulates
// signed area and clamps its magnitude. For simple and self-overlapping
// paths that matches the nonzero winding rule used by Fill and Clip.
package raster

import (
	"image"
	"image/draw"
	"math"
	"slices"
	"sync"

	"github.com/gogpu/ledcanvas/internal/geom"
	"golang.org/x/image/vector"
)

var rasterizers = sync.Pool{
	New: func() any { return vector.NewRasterizer(0, 0) },
}

var masks = sync.Pool{
	New: func() any { return new(image.Alpha) },
}

// Bounds returns the pixel rectangle touched by segs, intersected with
// limit. The result is empty when nothing is visible.
func Bounds(segs []geom.Segment, limit image.Rectangle) image.Rectangle {
	lo, hi, ok := geom.Bounds(segs)
	if !ok || math.IsNaN(lo.X) || math.IsNaN(lo.Y) || math.IsNaN(hi.X) || math.IsNaN(hi.Y) {
		return image.Rectangle{}
	}
	r := image.Rectangle{
		Min: image.Pt(clampInt(math.Floor(lo.X)), clampInt(math.Floor(lo.Y))),
		Max: image.Pt(clampInt(math.Ceil(hi.X)), clampInt(math.Ceil(hi.Y))),
	}
	return r.Intersect(limit)
}

func clampInt(v float64) int {
	const lim = 1 << 24
	if v < -lim {
		return -lim
	}
	if v > lim {
		return lim
	}
	return int(v)
}

// guard is the margin, in pixels, kept around the raster rectangle.
// Geometry beyond it is folded onto its edges before reaching the
// rasterizer, whose fixed-point path overflows on large coordinates.
const guard = 1

// curveTolerance bounds the flattening error of curves that cross the
// guard band.
const curveTolerance = 0.1

// Fill rasterizes segs into a coverage mask whose Rect is the visible
// area within limit. It returns nil when the path covers no pixels
// inside limit. Masks should be handed back with Release.
func Fill(segs []geom.Segment, limit image.Rectangle) *image.Alpha {
	r := Bounds(segs, limit)
	if r.Empty() {
		return nil
	}
	w, h := r.Dx(), r.Dy()

	z := rasterizers.Get().(*vector.Rasterizer)
	defer rasterizers.Put(z)
	z.Reset(w, h)
	z.DrawOp = draw.Src

	c := clipper{
		z:   z,
		org: geom.Pt(float64(r.Min.X), float64(r.Min.Y)),
		min: geom.Pt(float64(r.Min.X-guard), float64(r.Min.Y-guard)),
		max: geom.Pt(float64(r.Max.X+guard), float64(r.Max.Y+guard)),
	}
	for _, s := range segs {
		switch s.Verb {
		case geom.MoveTo:
			c.moveTo(s.Pts[0])
		case geom.LineTo:
			c.ensureOpen()
			c.lineTo(s.Pts[0])
		case geom.QuadTo:
			c.ensureOpen()
			c.curve(s)
		case geom.CubicTo:
			c.ensureOpen()
			c.curve(s)
		case geom.Close:
			c.closePath()
		}
	}
	if c.open {
		z.ClosePath()
	}

	dst := newMask(r)
	z.Draw(dst, r, image.Opaque, image.Point{})
	return dst
}

// clipper feeds device-space segments to a vector.Rasterizer, keeping
// every point inside the box [min, max].
//
// A line is split where it crosses the box edges and each piece is
// clamped into the box. Pieces left or right of the box become vertical
// runs on the edge, which carry the same winding for the rows they
// span; pieces above or below become horizontal and add nothing.
type clipper struct {
	z        *vector.Rasterizer
	org      geom.Point
	min, max geom.Point

	open        bool
	start, last geom.Point
}

func (c *clipper) moveTo(p geom.Point) {
	if c.open {
		c.z.ClosePath()
	}
	p = finite(p)
	c.z.MoveTo(c.local(c.clamp(p)))
	c.start, c.last = p, p
	c.open = true
}

// ensureOpen starts a sub-path at the last point for drawing verbs that
// follow a Close.
func (c *clipper) ensureOpen() {
	if !c.open {
		c.moveTo(c.last)
	}
}

func (c *clipper) closePath() {
	if c.open {
		c.z.ClosePath()
		c.open = false
		c.last = c.start
	}
}

func (c *clipper) lineTo(b geom.Point) {
	b = finite(b)
	a := c.last
	c.last = b

	var ts [4]float64
	n := 0
	add := func(t float64) {
		if t > 0 && t < 1 {
			ts[n] = t
			n++
		}
	}
	add(edgeParam(a.X, b.X, c.min.X))
	add(edgeParam(a.X, b.X, c.max.X))
	add(edgeParam(a.Y, b.Y, c.min.Y))
	add(edgeParam(a.Y, b.Y, c.max.Y))
	slices.Sort(ts[:n])

	for _, t := range ts[:n] {
		c.z.LineTo(c.local(c.clamp(lerp(a, b, t))))
	}
	c.z.LineTo(c.local(c.clamp(b)))
}

// curve draws a quadratic or cubic segment. Curves whose control
// polygon lies inside the box go to the rasterizer as curves; the rest
// are flattened and clipped as lines.
func (c *clipper) curve(s geom.Segment) {
	n := 2
	if s.Verb == geom.CubicTo {
		n = 3
	}
	inside := c.inside(c.last)
	for _, p := range s.Pts[:n] {
		inside = inside && c.inside(p)
	}
	if inside {
		if n == 2 {
			cx, cy := c.local(s.Pts[0])
			x, y := c.local(s.Pts[1])
			c.z.QuadTo(cx, cy, x, y)
		} else {
			c0x, c0y := c.local(s.Pts[0])
			c1x, c1y := c.local(s.Pts[1])
			x, y := c.local(s.Pts[2])
			c.z.CubeTo(c0x, c0y, c1x, c1y, x, y)
		}
		c.last = s.Pts[n-1]
		return
	}

	for i := range s.Pts[:n] {
		s.Pts[i] = finite(s.Pts[i])
	}
	lines := geom.Flatten([]geom.Segment{
		{Verb: geom.MoveTo, Pts: [3]geom.Point{c.last}},
		s,
	}, curveTolerance)
	for _, pl := range lines {
		for _, p := range pl.Points[1:] {
			c.lineTo(p)
		}
	}
}

func (c *clipper) inside(p geom.Point) bool {
	return p.X >= c.min.X && p.X <= c.max.X && p.Y >= c.min.Y && p.Y <= c.max.Y
}

func (c *clipper) clamp(p geom.Point) geom.Point {
	return geom.Pt(
		math.Min(math.Max(p.X, c.min.X), c.max.X),
		math.Min(math.Max(p.Y, c.min.Y), c.max.Y),
	)
}

// local converts a device point inside the box to rasterizer space.
func (c *clipper) local(p geom.Point) (float32, float32) {
	return float32(p.X - c.org.X), float32(p.Y - c.org.Y)
}

// edgeParam returns the parameter at which the span a..b reaches v, or -1
// when it does not cross v. Operands are halved so that spans between
// huge finite values do not overflow.
func edgeParam(a, b, v float64) float64 {
	if (a < v) == (b < v) {
		return -1
	}
	return (v/2 - a/2) / (b/2 - a/2)
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Pt(a.X*(1-t)+b.X*t, a.Y*(1-t)+b.Y*t)
}

// finite replaces infinities with the largest magnitude the clipper
// handles without overflow.
func finite(p geom.Point) geom.Point {
	const big = math.MaxFloat64 / 4
	return geom.Pt(math.Max(-big, math.Min(big, p.X)), math.Max(-big, math.Min(big, p.Y)))
}

// newMask returns a zeroed alpha image covering r.
func newMask(r image.Rectangle) *image.Alpha {
	m := masks.Get().(*image.Alpha)
	n := r.Dx() * r.Dy()
	if cap(m.Pix) < n {
		m.Pix = make([]uint8, n)
	} else {
		m.Pix = m.Pix[:n]
		clear(m.Pix)
	}
	m.Stride = r.Dx()
	m.Rect = r
	return m
}

// NewMask returns a zeroed pooled mask covering r.
func NewMask(r image.Rectangle) *image.Alpha {
	return newMask(r)
}

// Release returns a mask obtained from Fill or NewMask to the pool.
func Release(m *image.Alpha) {
	if m == nil {
		return
	}
	masks.Put(m)
}
