package text

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ledcanvas/internal/geom"
)

var shapers = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// Metrics holds vertical font metrics in pixels. Descent is positive
// below the baseline.
type Metrics struct {
	Ascent     float64
	Descent    float64
	CapHeight  float64
	XHeight    float64
	LineHeight float64
}

// Hanging returns the distance from the alphabetic to the hanging
// baseline.
func (m Metrics) Hanging() float64 {
	if m.CapHeight > 0 {
		return m.CapHeight
	}
	return 0.8 * m.Ascent
}

// Glyph is one positioned glyph of a shaped run. X and Y are the pen
// offset from the run origin, y-down.
type Glyph struct {
	ID      sfnt.GlyphIndex
	X, Y    float64
	Advance float64
}

// Run is a shaped line of text.
type Run struct {
	Glyphs []Glyph
	Width  float64
}

// Face is a Font at a fixed pixel size. A Face is not safe for
// concurrent use.
type Face struct {
	font *Font
	size float64
	buf  sfnt.Buffer
}

// Font returns the underlying font.
func (f *Face) Font() *Font { return f.font }

// Size returns the pixel size.
func (f *Face) Size() float64 { return f.size }

func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	m, err := f.font.sfnt.Metrics(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		Logger().Debug("text: metrics unavailable", "family", f.font.family, "err", err)
		return Metrics{Ascent: 0.8 * f.size, Descent: 0.2 * f.size, LineHeight: 1.2 * f.size}
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		CapHeight:  fixedToFloat(m.CapHeight),
		XHeight:    fixedToFloat(m.XHeight),
		LineHeight: fixedToFloat(m.Height),
	}
}

// Shape converts s into positioned glyphs. Line breaks and tabs are
// treated as spaces.
func (f *Face) Shape(s string) Run {
	s = prepare(s)
	if s == "" {
		return Run{}
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.font.shaper),
		Size:      f.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shapers.Put(hb)

	run := Run{Glyphs: make([]Glyph, 0, len(out.Glyphs))}
	var x float64
	for _, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs = append(run.Glyphs, Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		})
		x += adv
	}
	run.Width = x
	return run
}

// Measure returns the advance width of s.
func (f *Face) Measure(s string) float64 {
	return f.Shape(s).Width
}

// Outline returns the glyph outlines of run with the pen starting at
// the origin on the alphabetic baseline, y-down.
func (f *Face) Outline(run Run) []geom.Segment {
	var segs []geom.Segment
	for _, g := range run.Glyphs {
		glyph, err := f.font.sfnt.LoadGlyph(&f.buf, g.ID, f.ppem(), nil)
		if err != nil {
			// Colour and missing glyphs have no outline; skip them.
			continue
		}
		open := false
		for _, s := range glyph {
			seg := geom.Segment{}
			n := 0
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					segs = append(segs, geom.Segment{Verb: geom.Close})
				}
				seg.Verb, n = geom.MoveTo, 1
				open = true
			case sfnt.SegmentOpLineTo:
				seg.Verb, n = geom.LineTo, 1
			case sfnt.SegmentOpQuadTo:
				seg.Verb, n = geom.QuadTo, 2
			case sfnt.SegmentOpCubeTo:
				seg.Verb, n = geom.CubicTo, 3
			}
			for i := 0; i < n; i++ {
				seg.Pts[i] = geom.Pt(g.X+fixedToFloat(s.Args[i].X), g.Y+fixedToFloat(s.Args[i].Y))
			}
			segs = append(segs, seg)
		}
		if open {
			segs = append(segs, geom.Segment{Verb: geom.Close})
		}
	}
	return segs
}

// prepare normalizes s to NFC and replaces control whitespace.
func prepare(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\f':
			return ' '
		}
		return r
	}, s)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
