package ledcanvas

import (
	"math"
	"slices"

	"github.com/gogpu/ledcanvas/internal/geom"
	"github.com/gogpu/ledcanvas/internal/stroke"
)

// SetFillStyle sets a solid fill colour and drops any fill gradient.
func (c *Context) SetFillStyle(col Color) {
	if c.closed {
		return
	}
	c.state.fillColor = col
	c.state.setFillShader(nil)
}

// SetStrokeStyle sets a solid stroke colour and drops any stroke gradient.
func (c *Context) SetStrokeStyle(col Color) {
	if c.closed {
		return
	}
	c.state.strokeColor = col
	c.state.setStrokeShader(nil)
}

// FillStyle returns the solid fill colour. It is ignored while a fill
// gradient is set.
func (c *Context) FillStyle() Color { return c.state.fillColor }

// StrokeStyle returns the solid stroke colour.
func (c *Context) StrokeStyle() Color { return c.state.strokeColor }

// FillShader returns the active fill gradient shader, or nil.
func (c *Context) FillShader() *Shader { return c.state.fillShader }

// StrokeShader returns the active stroke gradient shader, or nil.
func (c *Context) StrokeShader() *Shader { return c.state.strokeShader }

// SetLineWidth sets the stroke width. Widths below 0.01 are raised to it.
func (c *Context) SetLineWidth(w float64) {
	if c.closed || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	c.state.lineWidth = max(w, 0.01)
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.state.lineWidth }

// SetLineCap sets the cap by name: "butt", "round" or "square". Other
// names select butt.
func (c *Context) SetLineCap(name string) {
	if c.closed {
		return
	}
	switch name {
	case "round":
		c.state.lineCap = stroke.CapRound
	case "square":
		c.state.lineCap = stroke.CapSquare
	default:
		if name != "butt" {
			Logger().Debug("ledcanvas: unknown line cap", "cap", name)
		}
		c.state.lineCap = stroke.CapButt
	}
}

// LineCap returns the name of the current cap.
func (c *Context) LineCap() string { return c.state.lineCap.String() }

// SetLineJoin sets the join by name: "miter", "round" or "bevel". Other
// names select miter.
func (c *Context) SetLineJoin(name string) {
	if c.closed {
		return
	}
	switch name {
	case "round":
		c.state.lineJoin = stroke.JoinRound
	case "bevel":
		c.state.lineJoin = stroke.JoinBevel
	default:
		if name != "miter" {
			Logger().Debug("ledcanvas: unknown line join", "join", name)
		}
		c.state.lineJoin = stroke.JoinMiter
	}
}

// LineJoin returns the name of the current join.
func (c *Context) LineJoin() string { return c.state.lineJoin.String() }

// SetMiterLimit sets the miter limit, at least 1.
func (c *Context) SetMiterLimit(limit float64) {
	if c.closed || math.IsNaN(limit) {
		return
	}
	c.state.miterLimit = max(limit, 1)
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 { return c.state.miterLimit }

// SetGlobalAlpha sets the alpha applied to every draw, clamped to [0, 1].
// NaN is ignored.
func (c *Context) SetGlobalAlpha(alpha float64) {
	if c.closed || math.IsNaN(alpha) {
		return
	}
	c.state.globalAlpha = min(max(alpha, 0), 1)
}

// GlobalAlpha returns the global alpha.
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetLineDash sets the dash pattern in user units. An odd-length pattern
// is repeated to make it even. A pattern with a negative or non-finite
// entry is ignored. An empty or all-zero pattern turns dashing off.
func (c *Context) SetLineDash(pattern []float64) {
	if c.closed {
		return
	}
	dash, ok := stroke.NormalizeDash(pattern)
	if !ok {
		Logger().Debug("ledcanvas: invalid line dash", "pattern", pattern)
		return
	}
	c.state.lineDash = dash
}

// LineDash returns a copy of the effective dash pattern.
func (c *Context) LineDash() []float64 {
	return slices.Clone(c.state.lineDash)
}

// SetLineDashOffset sets the phase of the dash pattern.
func (c *Context) SetLineDashOffset(offset float64) {
	if c.closed || !finite(offset) {
		return
	}
	c.state.dashOffset = offset
}

// LineDashOffset returns the dash phase.
func (c *Context) LineDashOffset() float64 { return c.state.dashOffset }

// SetShadowBlur sets the shadow blur level. Negative values become 0,
// which disables the shadow.
func (c *Context) SetShadowBlur(blur float64) {
	if c.closed || math.IsNaN(blur) || math.IsInf(blur, 0) {
		return
	}
	c.state.shadowBlur = max(blur, 0)
}

// ShadowBlur returns the shadow blur level.
func (c *Context) ShadowBlur() float64 { return c.state.shadowBlur }

// SetShadowColor sets the shadow colour. A transparent colour disables
// the shadow.
func (c *Context) SetShadowColor(col Color) {
	if c.closed {
		return
	}
	c.state.shadowColor = col
}

// ShadowColor returns the shadow colour.
func (c *Context) ShadowColor() Color { return c.state.shadowColor }

// SetShadowOffsetX sets the horizontal shadow offset in device pixels.
func (c *Context) SetShadowOffsetX(x float64) {
	if c.closed || !finite(x) {
		return
	}
	c.state.shadowOffsetX = x
}

// SetShadowOffsetY sets the vertical shadow offset in device pixels.
func (c *Context) SetShadowOffsetY(y float64) {
	if c.closed || !finite(y) {
		return
	}
	c.state.shadowOffsetY = y
}

// ShadowOffset returns the shadow offset.
func (c *Context) ShadowOffset() (x, y float64) {
	return c.state.shadowOffsetX, c.state.shadowOffsetY
}

// CreateLinearGradient returns a gradient along (x0, y0) → (x1, y1). The
// gradient belongs to the context and its shader is released by Close.
func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return c.newGradient(&Gradient{
		kind: GradientLinear,
		p0:   geom.Pt(x0, y0),
		p1:   geom.Pt(x1, y1),
	})
}

// CreateRadialGradient returns a radial gradient. Only the second circle
// (x1, y1, r1) is used; colours run from its centre to its edge.
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	return c.newGradient(&Gradient{
		kind: GradientRadial,
		p0:   geom.Pt(x0, y0),
		p1:   geom.Pt(x1, y1),
		r0:   r0,
		r1:   r1,
	})
}

func (c *Context) newGradient(g *Gradient) *Gradient {
	g.arena = &c.arena
	if !c.closed {
		c.gradients = append(c.gradients, g)
	}
	return g
}

// SetFillGradient makes g the fill style. A nil gradient is ignored.
func (c *Context) SetFillGradient(g *Gradient) {
	if c.closed || g == nil || g.arena != &c.arena {
		return
	}
	c.state.setFillShader(g.Build())
}

// SetStrokeGradient makes g the stroke style. A nil gradient is ignored.
func (c *Context) SetStrokeGradient(g *Gradient) {
	if c.closed || g == nil || g.arena != &c.arena {
		return
	}
	c.state.setStrokeShader(g.Build())
}

// LinearGradient installs a two-colour linear fill gradient from
// (x0, y0) to (x1, y1).
func (c *Context) LinearGradient(x0, y0, x1, y1 float64, from, to Color) {
	if c.closed {
		return
	}
	g := c.CreateLinearGradient(x0, y0, x1, y1)
	g.AddColorStop(0, from)
	g.AddColorStop(1, to)
	c.SetFillGradient(g)
}

// HSLToRGB converts HSL components in [0, 1] to RGB channels.
func (c *Context) HSLToRGB(h, s, l float64) RGBTriple { return HSLToRGB(h, s, l) }

// RGBToHSL converts RGB channels in [0, 255] to HSL components.
func (c *Context) RGBToHSL(r, g, b float64) HSLTriple { return RGBToHSL(r, g, b) }
