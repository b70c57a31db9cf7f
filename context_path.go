package ledcanvas

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
	"github.com/gogpu/ledcanvas/internal/raster"
	"github.com/gogpu/ledcanvas/internal/stroke"
)

// BeginPath discards the active path and starts an empty one.
func (c *Context) BeginPath() {
	if c.closed {
		return
	}
	c.path.release()
	c.path = newPath(&c.arena, c.state.transform)
}

// ensurePath starts a path when none is active.
func (c *Context) ensurePath() *path {
	if c.path == nil {
		c.BeginPath()
	}
	return c.path
}

// syncPath points the active path at the current transform.
func (c *Context) syncPath() {
	if c.path != nil {
		c.path.m = c.state.transform
	}
}

// ClosePath closes the current sub-path.
func (c *Context) ClosePath() {
	if c.closed || c.path == nil {
		return
	}
	c.path.closePath()
}

// MoveTo starts a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float64) {
	if c.closed {
		return
	}
	c.ensurePath().moveTo(x, y)
}

// LineTo adds a line to (x, y). Without a current point it acts as MoveTo.
func (c *Context) LineTo(x, y float64) {
	if c.closed {
		return
	}
	c.ensurePath().lineTo(x, y)
}

// QuadraticCurveTo adds a quadratic Bézier curve.
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if c.closed {
		return
	}
	c.ensurePath().quadTo(cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve.
func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if c.closed {
		return
	}
	c.ensurePath().cubicTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// Arc adds a circular arc centred at (x, y). Angles are in radians,
// measured clockwise from the +x axis. The arc is joined to the current
// point by a line.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	if c.closed {
		return
	}
	c.ensurePath().arc(x, y, radius, startAngle, endAngle, counterclockwise)
}

// ArcTo adds an arc of the given radius tangent to the lines from the
// current point to (x1, y1) and from (x1, y1) to (x2, y2).
func (c *Context) ArcTo(x1, y1, x2, y2, radius float64) {
	if c.closed {
		return
	}
	c.ensurePath().arcTo(x1, y1, x2, y2, radius)
}

// Rect adds a closed rectangle sub-path.
func (c *Context) Rect(x, y, w, h float64) {
	if c.closed {
		return
	}
	c.ensurePath().rect(x, y, w, h)
}

// Ellipse adds an elliptical arc as a new sub-path. rotation turns the
// ellipse about its centre.
func (c *Context) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64, counterclockwise bool) {
	if c.closed {
		return
	}
	c.ensurePath().ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle, counterclockwise)
}

// Fill fills the active path with the fill style. It does nothing when no
// path is active. The path is kept.
func (c *Context) Fill() {
	if c.closed || c.path == nil {
		return
	}
	c.fillSegments(c.path.segments(), styleFill)
}

// Stroke strokes the active path with the stroke style. It does nothing
// when no path is active. The path is kept.
func (c *Context) Stroke() {
	if c.closed || c.path == nil {
		return
	}
	c.fillSegments(c.path.segments(), styleStroke)
}

// Clip intersects the clip region with the active path. The clip is
// saved and restored with the state.
func (c *Context) Clip() {
	if c.closed || c.path == nil {
		return
	}
	c.surface.intersectClip(c.path.segments())
}

// IsPointInPath reports whether the canvas point (x, y) lies inside the
// active path under the nonzero rule. Points on the outline count as
// inside.
func (c *Context) IsPointInPath(x, y float64) bool {
	if c.closed || c.path == nil {
		return false
	}
	return raster.Contains(c.path.segments(), geom.Pt(x, y), c.opts.tolerance)
}

// IsPointInStroke reports whether (x, y) lies inside the outline the
// active path would have if stroked with the current line style. The
// path itself is left untouched.
func (c *Context) IsPointInStroke(x, y float64) bool {
	if c.closed || c.path == nil {
		return false
	}
	p := c.resolvePaint(styleStroke)
	outline := c.strokeOutline(c.path.segments(), p.stroke)
	return raster.Contains(outline, geom.Pt(x, y), c.opts.tolerance)
}

// fillSegments draws device-space geometry with the resolved paint for
// style, through the shadow pass when one is active.
func (c *Context) fillSegments(segs []geom.Segment, style paintStyle) {
	if len(segs) == 0 {
		return
	}
	p := c.resolvePaint(style)
	if p.stroke != nil {
		segs = c.strokeOutline(segs, p.stroke)
		if len(segs) == 0 {
			return
		}
	}
	c.drawWithShadow(p, func(p paint) {
		c.surface.fill(segs, p)
	})
}

// strokeOutline expands device-space geometry into a device-space fill
// outline. The pen is applied in user space so that scaled and skewed
// transforms deform it like the rest of the drawing.
func (c *Context) strokeOutline(segs []geom.Segment, st *stroke.Style) []geom.Segment {
	m := c.state.transform
	if !m.IsInvertible() {
		return nil
	}
	user := make([]geom.Segment, len(segs))
	copy(user, segs)
	geom.Transform(user, m.Invert().affine())

	tol := c.opts.tolerance / devScale(m)
	out := stroke.Expand(user, *st, tol)
	geom.Transform(out, m.affine())
	return out
}

// devScale returns how many device pixels one user unit spans at most.
func devScale(m Matrix) float64 {
	s := m.MaxScaleFactor()
	if s < 1e-6 || math.IsNaN(s) {
		return 1
	}
	return s
}
