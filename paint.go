package ledcanvas

import (
	"github.com/gogpu/ledcanvas/internal/blend"
	"github.com/gogpu/ledcanvas/internal/stroke"
)

// paintStyle selects the fill or stroke channel of the state.
type paintStyle uint8

const (
	styleFill paintStyle = iota
	styleStroke
)

// paint is the resolved, immutable set of parameters for one draw call.
// It is built fresh for every call and handed to the surface by value.
type paint struct {
	// color is the solid colour with global alpha applied. Ignored when
	// shader is set.
	color  Color
	shader *Shader
	// alpha scales shader output.
	alpha float64
	// inverse maps device pixels back into shader space.
	inverse Matrix
	mode    blend.Mode
	// stroke is nil for fills.
	stroke *stroke.Style
	// blur is the Gaussian sigma of the shadow pass, zero otherwise.
	blur float64
}

// resolvePaint builds the paint for the given channel from the live
// state. A shader takes precedence over the solid colour.
func (c *Context) resolvePaint(style paintStyle) paint {
	st := &c.state
	p := paint{
		alpha:   st.globalAlpha,
		inverse: st.transform.Invert(),
		mode:    st.blendMode,
	}
	switch style {
	case styleStroke:
		p.shader = st.strokeShader
		p.color = applyAlpha(st.strokeColor, st.globalAlpha)
		p.stroke = &stroke.Style{
			Width:      st.lineWidth,
			Cap:        st.lineCap,
			Join:       st.lineJoin,
			MiterLimit: st.miterLimit,
			Dash:       st.lineDash,
			DashOffset: st.dashOffset,
		}
	default:
		p.shader = st.fillShader
		p.color = applyAlpha(st.fillColor, st.globalAlpha)
	}
	return p
}

// applyAlpha multiplies the colour's alpha by the global alpha. The
// result is rounded and clamped to [0, 255].
func applyAlpha(c Color, globalAlpha float64) Color {
	return c.WithAlpha(globalAlpha)
}
