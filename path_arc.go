package ledcanvas

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
)

// arcSweep converts radian start and end angles to a sweep in degrees
// that runs in the requested direction: clockwise sweeps are positive,
// counter-clockwise ones negative. A span of a full turn or more gives a
// full circle in the requested direction, so arc(x, y, r, 0, 2π, true)
// sweeps -360 rather than collapsing to an empty arc.
func arcSweep(start, end float64, ccw bool) float64 {
	startDeg := start * 180 / math.Pi
	endDeg := end * 180 / math.Pi
	sweep := endDeg - startDeg
	if math.Abs(sweep) >= 360 {
		if ccw {
			return -360
		}
		return 360
	}
	if ccw && sweep > 0 {
		sweep -= 360
	} else if !ccw && sweep < 0 {
		sweep += 360
	}
	return sweep
}

// ellipseArc appends an elliptical arc in user space. The ellipse is
// centred at c with radii rx, ry, rotated by rot. It starts at angle a0
// and sweeps sweepDeg degrees. connect joins the arc to the current
// point with a line; otherwise the arc starts a new sub-path.
func (p *path) ellipseArc(c geom.Point, rx, ry, rot, a0, sweepDeg float64, connect bool) {
	sinR, cosR := math.Sincos(rot)
	at := func(a float64) (geom.Point, geom.Point) {
		sin, cos := math.Sincos(a)
		x, y := rx*cos, ry*sin
		dx, dy := -rx*sin, ry*cos
		pt := geom.Pt(c.X+x*cosR-y*sinR, c.Y+x*sinR+y*cosR)
		d := geom.Pt(dx*cosR-dy*sinR, dx*sinR+dy*cosR)
		return pt, d
	}

	p0, _ := at(a0)
	if connect && p.hasCur {
		p.lineTo(p0.X, p0.Y)
	} else {
		p.moveTo(p0.X, p0.Y)
	}

	sweep := sweepDeg * math.Pi / 180
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a := a0
	for i := 0; i < n; i++ {
		s, ds := at(a)
		e, de := at(a + step)
		c1 := s.Add(ds.Mul(k))
		c2 := e.Sub(de.Mul(k))
		p.cubicTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
		a += step
	}
}

// arc appends a circular arc. Negative radii are clamped to zero.
func (p *path) arc(x, y, r, start, end float64, ccw bool) {
	if !finite(x, y, r, start, end) {
		return
	}
	r = math.Max(0, r)
	p.ellipseArc(geom.Pt(x, y), r, r, 0, start, arcSweep(start, end, ccw), true)
}

// ellipse appends an elliptical arc as a new sub-path, rotated by
// rotation about (x, y).
func (p *path) ellipse(x, y, rx, ry, rotation, start, end float64, ccw bool) {
	if !finite(x, y, rx, ry, rotation, start, end) {
		return
	}
	rx, ry = math.Max(0, rx), math.Max(0, ry)
	p.ellipseArc(geom.Pt(x, y), rx, ry, rotation, start, arcSweep(start, end, ccw), false)
}

// arcTo appends a line towards (x1, y1) ending in an arc of radius r
// tangent to both the line from the current point to (x1, y1) and the
// line from (x1, y1) to (x2, y2).
func (p *path) arcTo(x1, y1, x2, y2, r float64) {
	if !finite(x1, y1, x2, y2, r) {
		return
	}
	r = math.Max(0, r)
	p0, ok := p.current()
	if !ok {
		p.moveTo(x1, y1)
		return
	}
	p1, p2 := geom.Pt(x1, y1), geom.Pt(x2, y2)
	v1, v2 := p0.Sub(p1), p2.Sub(p1)
	l1, l2 := v1.Len(), v2.Len()
	cross := v1.Cross(v2)
	if r == 0 || l1 < 1e-9 || l2 < 1e-9 || math.Abs(cross) < 1e-9*l1*l2 {
		p.lineTo(x1, y1)
		return
	}
	v1, v2 = v1.Mul(1/l1), v2.Mul(1/l2)

	// Angle between the two legs at p1.
	theta := math.Acos(math.Max(-1, math.Min(1, v1.Dot(v2))))
	dist := r / math.Tan(theta/2)
	t1 := p1.Add(v1.Mul(dist))
	t2 := p1.Add(v2.Mul(dist))

	bis := v1.Add(v2)
	bis = bis.Mul(1 / bis.Len())
	center := p1.Add(bis.Mul(r / math.Sin(theta/2)))

	a0 := t1.Sub(center).Angle()
	a1 := t2.Sub(center).Angle()
	// The arc turns the same way as the corner p0 → p1 → p2.
	ccw := p1.Sub(p0).Cross(p2.Sub(p1)) < 0
	sweep := (a1 - a0) * 180 / math.Pi
	if ccw && sweep > 0 {
		sweep -= 360
	} else if !ccw && sweep < 0 {
		sweep += 360
	}
	p.ellipseArc(center, r, r, 0, a0, sweep, true)
}

// circle appends a closed circle as a new sub-path. Non-positive radii
// add nothing.
func (p *path) circle(x, y, r float64) {
	if !finite(x, y, r) || r <= 0 {
		return
	}
	p.ellipseArc(geom.Pt(x, y), r, r, 0, 0, 360, false)
	p.closePath()
}
