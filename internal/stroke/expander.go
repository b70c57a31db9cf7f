package stroke

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
)

// Cap is the shape of open sub-path ends.
type Cap uint8

const (
	// CapButt ends the stroke flush with the end point.
	CapButt Cap = iota
	// CapRound adds a half disc.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// Join is the shape used where two segments meet.
type Join uint8

const (
	// JoinMiter extends the outer edges to a point, subject to MiterLimit.
	JoinMiter Join = iota
	// JoinRound fills the corner with an arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

func (c Cap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

func (j Join) String() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Style describes the pen.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64

	// Dash holds alternating dash and gap lengths. Empty means solid.
	Dash       []float64
	DashOffset float64
}

// Expand returns the fill outline of segs stroked with style.
// tolerance bounds the flattening error of curves; 0 selects 0.1.
func Expand(segs []geom.Segment, style Style, tolerance float64) []geom.Segment {
	if style.Width <= 0 || len(segs) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	e := &expander{
		style:      style,
		half:       style.Width / 2,
		joinThresh: 2 * tolerance / style.Width,
	}
	lines := geom.Flatten(segs, tolerance)
	if len(style.Dash) > 0 {
		lines = dash(lines, style.Dash, style.DashOffset)
	}
	for _, pl := range lines {
		e.polyline(pl)
	}
	return e.out.segs
}

type expander struct {
	style      Style
	half       float64
	joinThresh float64

	fwd, back, out builder

	start, last      geom.Point
	startTan, curTan geom.Point
	startNorm        geom.Point
	lastNorm         geom.Point
}

func (e *expander) polyline(pl geom.Polyline) {
	pts := dedupe(pl.Points)
	if len(pts) < 2 {
		return
	}
	e.fwd.reset()
	e.back.reset()
	e.start, e.last = pts[0], pts[0]
	for _, p := range pts[1:] {
		tan := p.Sub(e.last)
		e.join(tan)
		e.curTan = tan
		e.line(tan, p)
	}
	if pl.Closed {
		if e.last != e.start {
			tan := e.start.Sub(e.last)
			e.join(tan)
			e.curTan = tan
			e.line(tan, e.start)
		}
		e.finishClosed()
		return
	}
	e.finishOpen()
}

// normal returns the offset vector for tangent tan scaled to half width.
func (e *expander) normal(tan geom.Point) geom.Point {
	return tan.Perp().Mul(e.half / tan.Len())
}

func (e *expander) join(tan geom.Point) {
	norm := e.normal(tan)
	p := e.last
	if e.fwd.empty() {
		e.fwd.moveTo(p.Sub(norm))
		e.back.moveTo(p.Add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	prev := e.curTan
	cross := prev.Cross(tan)
	dot := prev.Dot(tan)
	hypot := math.Hypot(cross, dot)

	// Nearly straight continuation: connect both sides without a join.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.fwd.lineTo(p.Sub(norm))
		e.back.lineTo(p.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinBevel:
		e.fwd.lineTo(p.Sub(norm))
		e.back.lineTo(p.Add(norm))
	case JoinRound:
		prevNorm := e.normal(prev)
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			e.back.lineTo(p.Add(norm))
			arc(&e.fwd, p, prevNorm.Mul(-1), angle)
		} else {
			e.fwd.lineTo(p.Sub(norm))
			arc(&e.back, p, prevNorm, angle)
		}
	default:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit {
			e.miter(p, norm, prev, tan, cross)
		}
		e.fwd.lineTo(p.Sub(norm))
		e.back.lineTo(p.Add(norm))
	}
}

// miter emits the outer corner point for a miter join.
func (e *expander) miter(p, norm, prev, tan geom.Point, cross float64) {
	prevNorm := e.normal(prev)
	if cross > 0 {
		from := p.Sub(prevNorm)
		to := p.Sub(norm)
		h := prev.Cross(to.Sub(from)) / cross
		e.fwd.lineTo(to.Sub(tan.Mul(h)))
		e.back.lineTo(p)
	} else if cross < 0 {
		from := p.Add(prevNorm)
		to := p.Add(norm)
		h := prev.Cross(to.Sub(from)) / cross
		e.back.lineTo(to.Sub(tan.Mul(h)))
		e.fwd.lineTo(p)
	}
}

func (e *expander) line(tan, p geom.Point) {
	norm := e.normal(tan)
	e.fwd.lineTo(p.Sub(norm))
	e.back.lineTo(p.Add(norm))
	e.last = p
	e.lastNorm = norm
}

func (e *expander) finishOpen() {
	if e.fwd.empty() {
		return
	}
	e.out.append(&e.fwd)
	e.cap(e.last, e.lastNorm, false)
	e.out.appendReversed(&e.back)
	e.cap(e.start, e.startNorm.Mul(-1), true)
}

func (e *expander) finishClosed() {
	if e.fwd.empty() {
		return
	}
	e.join(e.startTan)
	e.out.append(&e.fwd)
	e.out.close()

	if n := len(e.back.segs); n > 0 {
		e.out.moveTo(e.back.segs[n-1].End())
		e.out.appendReversed(&e.back)
		e.out.close()
	}
}

// cap draws the cap at center. norm points from the side the outline is
// currently on towards the side it has to reach.
func (e *expander) cap(center, norm geom.Point, closing bool) {
	switch e.style.Cap {
	case CapRound:
		arc(&e.out, center, norm.Mul(-1), math.Pi)
		if closing {
			e.out.close()
		}
	case CapSquare:
		tan := geom.Point{X: norm.Y, Y: -norm.X}
		e.out.lineTo(center.Sub(norm).Add(tan))
		e.out.lineTo(center.Add(norm).Add(tan))
		if closing {
			e.out.close()
		} else {
			e.out.lineTo(center.Add(norm))
		}
	default:
		if closing {
			e.out.close()
		} else {
			e.out.lineTo(center.Add(norm))
		}
	}
}

// arc appends a circular arc around center starting at center+from and
// sweeping angle radians, as cubic segments of at most 90 degrees.
func arc(b *builder, center, from geom.Point, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	a := from.Angle()
	r := from.Len()
	for i := 0; i < n; i++ {
		a0, a1 := a, a+step
		k := 4.0 / 3.0 * math.Tan((a1-a0)/4)
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		p0 := geom.Pt(center.X+r*cos0, center.Y+r*sin0)
		p1 := geom.Pt(center.X+r*cos1, center.Y+r*sin1)
		c0 := geom.Pt(p0.X-k*r*sin0, p0.Y+k*r*cos0)
		c1 := geom.Pt(p1.X+k*r*sin1, p1.Y-k*r*cos1)
		b.cubicTo(c0, c1, p1)
		a = a1
	}
}

func dedupe(pts []geom.Point) []geom.Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i > 0 && p.Sub(out[len(out)-1]).Len() < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	return out
}

type builder struct {
	segs []geom.Segment
}

func (b *builder) reset()      { b.segs = b.segs[:0] }
func (b *builder) empty() bool { return len(b.segs) == 0 }

func (b *builder) moveTo(p geom.Point) {
	b.segs = append(b.segs, geom.Segment{Verb: geom.MoveTo, Pts: [3]geom.Point{p}})
}

func (b *builder) lineTo(p geom.Point) {
	b.segs = append(b.segs, geom.Segment{Verb: geom.LineTo, Pts: [3]geom.Point{p}})
}

func (b *builder) cubicTo(c0, c1, p geom.Point) {
	b.segs = append(b.segs, geom.Segment{Verb: geom.CubicTo, Pts: [3]geom.Point{c0, c1, p}})
}

func (b *builder) close() {
	b.segs = append(b.segs, geom.Segment{Verb: geom.Close})
}

func (b *builder) append(o *builder) {
	b.segs = append(b.segs, o.segs...)
}

// appendReversed walks o backwards, skipping its leading MoveTo.
func (b *builder) appendReversed(o *builder) {
	s := o.segs
	for i := len(s) - 1; i >= 1; i-- {
		end := s[i-1].End()
		switch s[i].Verb {
		case geom.LineTo:
			b.lineTo(end)
		case geom.CubicTo:
			b.cubicTo(s[i].Pts[1], s[i].Pts[0], end)
		}
	}
}
