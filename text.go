package ledcanvas

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
	"github.com/gogpu/ledcanvas/text"
)

// TextMetrics is the result of MeasureText.
type TextMetrics struct {
	// Width is the advance width of the shaped text in user units.
	Width float64
}

// SetFont sets the font from a CSS-like spec such as "bold 16px Arial"
// or "12pt monospace". Parts that cannot be parsed keep their current
// values.
func (c *Context) SetFont(spec string) {
	if c.closed {
		return
	}
	c.state.font = text.ParseFontSpec(spec, c.state.font)
}

// Font returns the current font spec in canonical form.
func (c *Context) Font() string { return c.state.font.String() }

// SetTextAlign sets the horizontal anchor. Unknown values select start.
func (c *Context) SetTextAlign(align string) {
	if c.closed {
		return
	}
	switch a := TextAlign(align); a {
	case AlignStart, AlignEnd, AlignLeft, AlignRight, AlignCenter:
		c.state.textAlign = a
	default:
		Logger().Debug("ledcanvas: unknown text align", "align", align)
		c.state.textAlign = AlignStart
	}
}

// TextAlign returns the horizontal anchor.
func (c *Context) TextAlign() TextAlign { return c.state.textAlign }

// SetTextBaseline sets the vertical anchor. Unknown values select
// alphabetic.
func (c *Context) SetTextBaseline(baseline string) {
	if c.closed {
		return
	}
	switch b := TextBaseline(baseline); b {
	case BaselineTop, BaselineHanging, BaselineMiddle, BaselineAlphabetic,
		BaselineIdeographic, BaselineBottom:
		c.state.textBaseline = b
	default:
		Logger().Debug("ledcanvas: unknown text baseline", "baseline", baseline)
		c.state.textBaseline = BaselineAlphabetic
	}
}

// TextBaseline returns the vertical anchor.
func (c *Context) TextBaseline() TextBaseline { return c.state.textBaseline }

// FillText fills s with its anchor at (x, y).
func (c *Context) FillText(s string, x, y float64) {
	c.drawText(s, x, y, math.Inf(1), styleFill)
}

// StrokeText strokes the outlines of s with its anchor at (x, y).
func (c *Context) StrokeText(s string, x, y float64) {
	c.drawText(s, x, y, math.Inf(1), styleStroke)
}

// FillTextMaxWidth is FillText, condensed horizontally when the text is
// wider than maxWidth. A non-positive maxWidth draws nothing.
func (c *Context) FillTextMaxWidth(s string, x, y, maxWidth float64) {
	c.drawText(s, x, y, maxWidth, styleFill)
}

// StrokeTextMaxWidth is StrokeText with the maxWidth rule of
// FillTextMaxWidth.
func (c *Context) StrokeTextMaxWidth(s string, x, y, maxWidth float64) {
	c.drawText(s, x, y, maxWidth, styleStroke)
}

// MeasureText returns the advance width s would have with the current
// font.
func (c *Context) MeasureText(s string) TextMetrics {
	if s == "" {
		return TextMetrics{}
	}
	return TextMetrics{Width: c.face().Measure(s)}
}

func (c *Context) face() *text.Face {
	return c.fonts.Resolve(c.state.font).Face(c.state.font.Size)
}

func (c *Context) drawText(s string, x, y, maxWidth float64, style paintStyle) {
	if c.closed || s == "" || !finite(x, y) || !(maxWidth > 0) {
		return
	}
	face := c.face()
	run := face.Shape(s)
	if len(run.Glyphs) == 0 {
		return
	}
	segs := face.Outline(run)
	if len(segs) == 0 {
		return
	}

	squeeze := 1.0
	if run.Width > maxWidth {
		squeeze = maxWidth / run.Width
	}
	dx := alignOffset(c.state.textAlign, run.Width)
	dy := baselineOffset(c.state.textBaseline, face.Metrics())

	// Text space: origin at the anchor, condensed around it.
	m := c.state.transform.
		Multiply(Translate(x, y)).
		Multiply(Scale(squeeze, 1)).
		Multiply(Translate(dx, dy))
	geom.Transform(segs, m.affine())
	c.fillSegments(segs, style)
}

// alignOffset returns the x shift that puts the anchor at the requested
// edge of a run of width w.
func alignOffset(a TextAlign, w float64) float64 {
	switch a {
	case AlignCenter:
		return -w / 2
	case AlignRight, AlignEnd:
		return -w
	default:
		return 0
	}
}

// baselineOffset returns the y shift from the anchor to the alphabetic
// baseline.
func baselineOffset(b TextBaseline, m text.Metrics) float64 {
	switch b {
	case BaselineTop:
		return m.Ascent
	case BaselineHanging:
		return m.Hanging()
	case BaselineMiddle:
		return (m.Ascent - m.Descent) / 2
	case BaselineIdeographic, BaselineBottom:
		return -m.Descent
	default:
		return 0
	}
}
