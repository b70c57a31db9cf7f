package ledcanvas

import (
	"slices"

	"github.com/gogpu/ledcanvas/internal/blend"
	"github.com/gogpu/ledcanvas/internal/stroke"
	"github.com/gogpu/ledcanvas/text"
)

// TextAlign is the horizontal anchor of drawn text.
type TextAlign string

// Text alignments.
const (
	AlignStart  TextAlign = "start"
	AlignEnd    TextAlign = "end"
	AlignLeft   TextAlign = "left"
	AlignRight  TextAlign = "right"
	AlignCenter TextAlign = "center"
)

// TextBaseline is the vertical anchor of drawn text.
type TextBaseline string

// Text baselines.
const (
	BaselineTop         TextBaseline = "top"
	BaselineHanging     TextBaseline = "hanging"
	BaselineMiddle      TextBaseline = "middle"
	BaselineAlphabetic  TextBaseline = "alphabetic"
	BaselineIdeographic TextBaseline = "ideographic"
	BaselineBottom      TextBaseline = "bottom"
)

// state is the snapshot of every style and transform attribute. Save
// pushes a clone, Restore pops it.
//
// For each of fill and stroke, a non-nil shader takes precedence over the
// colour; the setters keep exactly one of them authoritative.
type state struct {
	transform   Matrix
	globalAlpha float64

	fillColor    Color
	strokeColor  Color
	fillShader   *Shader
	strokeShader *Shader

	lineWidth  float64
	lineCap    stroke.Cap
	lineJoin   stroke.Join
	miterLimit float64
	lineDash   []float64
	dashOffset float64

	shadowBlur    float64
	shadowColor   Color
	shadowOffsetX float64
	shadowOffsetY float64

	textAlign    TextAlign
	textBaseline TextBaseline
	font         text.Spec

	blendMode blend.Mode
}

func defaultState(c Color) state {
	return state{
		transform:    Identity(),
		globalAlpha:  1,
		fillColor:    c,
		strokeColor:  c,
		lineWidth:    1,
		lineCap:      stroke.CapButt,
		lineJoin:     stroke.JoinMiter,
		miterLimit:   10,
		shadowColor:  Transparent,
		textAlign:    AlignStart,
		textBaseline: BaselineAlphabetic,
		font:         text.DefaultSpec(),
		blendMode:    blend.SourceOver,
	}
}

// clone returns an independent copy. Shaders are shared and gain a
// reference; slices are copied.
func (s *state) clone() state {
	c := *s
	c.lineDash = slices.Clone(s.lineDash)
	c.font.Families = slices.Clone(s.font.Families)
	c.fillShader = s.fillShader.retain()
	c.strokeShader = s.strokeShader.retain()
	return c
}

// release drops the state's shader references.
func (s *state) release() {
	s.fillShader.release()
	s.strokeShader.release()
	s.fillShader, s.strokeShader = nil, nil
}

func (s *state) setFillShader(sh *Shader) {
	sh.retain()
	s.fillShader.release()
	s.fillShader = sh
}

func (s *state) setStrokeShader(sh *Shader) {
	sh.retain()
	s.strokeShader.release()
	s.strokeShader = sh
}
