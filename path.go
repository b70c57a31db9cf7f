package ledcanvas

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
)

// path is the context's active path. Points are transformed by m as
// they are appended, so the stored geometry is in device space and later
// transform changes do not move it.
type path struct {
	segs   *[]geom.Segment
	m      Matrix
	start  geom.Point
	cur    geom.Point
	hasCur bool
	arena  *arena
}

func newPath(a *arena, m Matrix) *path {
	a.acquire()
	return &path{segs: getSegments(), m: m, arena: a}
}

// release returns the segment storage to the pool. It is safe to call
// more than once.
func (p *path) release() {
	if p == nil || p.segs == nil {
		return
	}
	putSegments(p.segs)
	p.segs = nil
	p.arena.release()
}

// segments returns the device-space geometry. The slice is owned by the
// path.
func (p *path) segments() []geom.Segment {
	if p == nil || p.segs == nil {
		return nil
	}
	return *p.segs
}

func (p *path) push(v geom.Verb, pts ...geom.Point) {
	if p.segs == nil {
		return
	}
	s := geom.Segment{Verb: v}
	copy(s.Pts[:], pts)
	*p.segs = append(*p.segs, s)
}

// current returns the current point in user space.
func (p *path) current() (geom.Point, bool) {
	if !p.hasCur {
		return geom.Point{}, false
	}
	return p.m.Invert().apply(p.cur), true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p *path) moveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	d := p.m.apply(geom.Pt(x, y))
	p.push(geom.MoveTo, d)
	p.start, p.cur, p.hasCur = d, d, true
}

func (p *path) lineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if !p.hasCur {
		p.moveTo(x, y)
		return
	}
	d := p.m.apply(geom.Pt(x, y))
	p.push(geom.LineTo, d)
	p.cur = d
}

func (p *path) quadTo(cx, cy, x, y float64) {
	if !finite(cx, cy, x, y) {
		return
	}
	if !p.hasCur {
		p.moveTo(cx, cy)
	}
	d := p.m.apply(geom.Pt(x, y))
	p.push(geom.QuadTo, p.m.apply(geom.Pt(cx, cy)), d)
	p.cur = d
}

func (p *path) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !finite(c1x, c1y, c2x, c2y, x, y) {
		return
	}
	if !p.hasCur {
		p.moveTo(c1x, c1y)
	}
	d := p.m.apply(geom.Pt(x, y))
	p.push(geom.CubicTo, p.m.apply(geom.Pt(c1x, c1y)), p.m.apply(geom.Pt(c2x, c2y)), d)
	p.cur = d
}

func (p *path) closePath() {
	if !p.hasCur {
		return
	}
	p.push(geom.Close)
	p.cur = p.start
}

func (p *path) rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	p.moveTo(x, y)
	p.lineTo(x+w, y)
	p.lineTo(x+w, y+h)
	p.lineTo(x, y+h)
	p.closePath()
}
