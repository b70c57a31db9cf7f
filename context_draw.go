package ledcanvas

import (
	"github.com/gogpu/ledcanvas/internal/blend"
)

// Clear fills the whole surface, within the clip, with the opaque colour
// (r, g, b). The transform, global alpha and compositing mode are
// ignored. Channels are clamped to [0, 255].
func (c *Context) Clear(r, g, b float64) {
	if c.closed {
		return
	}
	c.surface.Clear(RGB(r, g, b))
}

// FillRect fills a rectangle with the fill style. The active path is not
// affected.
func (c *Context) FillRect(x, y, w, h float64) {
	c.drawShape(styleFill, func(p *path) { p.rect(x, y, w, h) })
}

// StrokeRect strokes a rectangle with the stroke style.
func (c *Context) StrokeRect(x, y, w, h float64) {
	c.drawShape(styleStroke, func(p *path) { p.rect(x, y, w, h) })
}

// ClearRect erases a rectangle to transparent. Shadows, global alpha and
// the compositing mode do not apply; the clip does.
func (c *Context) ClearRect(x, y, w, h float64) {
	if c.closed {
		return
	}
	p := c.scratch()
	defer p.release()
	p.rect(x, y, w, h)
	c.surface.fill(p.segments(), paint{mode: blend.Clear, alpha: 1})
}

// FillCircle fills a circle. Negative radii are treated as 0.
func (c *Context) FillCircle(x, y, radius float64) {
	c.drawShape(styleFill, func(p *path) { p.circle(x, y, radius) })
}

// StrokeCircle strokes a circle. Negative radii are treated as 0.
func (c *Context) StrokeCircle(x, y, radius float64) {
	c.drawShape(styleStroke, func(p *path) { p.circle(x, y, radius) })
}

// DrawLine strokes a single line segment.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.drawShape(styleStroke, func(p *path) {
		p.moveTo(x1, y1)
		p.lineTo(x2, y2)
	})
}

// drawShape builds throwaway geometry with build and draws it like Fill
// or Stroke would.
func (c *Context) drawShape(style paintStyle, build func(*path)) {
	if c.closed {
		return
	}
	p := c.scratch()
	defer p.release()
	build(p)
	c.fillSegments(p.segments(), style)
}

// scratch returns a temporary path under the current transform. The
// caller releases it.
func (c *Context) scratch() *path {
	return newPath(&c.arena, c.state.transform)
}
