package ledcanvas

import (
	"math"
	"slices"

	"github.com/gogpu/ledcanvas/internal/blend"
	"github.com/gogpu/ledcanvas/internal/geom"
)

// GradientKind distinguishes linear and radial gradients.
type GradientKind uint8

const (
	// GradientLinear interpolates along the line p0 → p1.
	GradientLinear GradientKind = iota
	// GradientRadial interpolates outward from a single circle.
	GradientRadial
)

// ColorStop is a colour at an offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// Gradient describes a linear or radial gradient and caches the shader
// compiled from it.
//
// Radial gradients use only the second circle (x1, y1, r1). The
// two-circle canvas form is collapsed to a single circle.
type Gradient struct {
	kind   GradientKind
	p0, p1 geom.Point
	r0, r1 float64
	stops  []ColorStop
	cached *Shader
	arena  *arena
}

// Kind returns the gradient kind.
func (g *Gradient) Kind() GradientKind { return g.kind }

// Stops returns a copy of the colour stops in insertion order.
func (g *Gradient) Stops() []ColorStop { return slices.Clone(g.stops) }

// AddColorStop appends a stop. Offsets are clamped to [0, 1]; a NaN or
// infinite offset is ignored. Adding a stop invalidates the cached shader.
func (g *Gradient) AddColorStop(offset float64, c Color) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return
	}
	g.stops = append(g.stops, ColorStop{Offset: unit(offset), Color: c})
	g.invalidate()
}

func (g *Gradient) invalidate() {
	if g.cached != nil {
		g.cached.release()
		g.cached = nil
	}
}

// Build returns the compiled shader, compiling it on first use after a
// change. Without stops the gradient runs from black to white.
func (g *Gradient) Build() *Shader {
	if g.cached != nil {
		return g.cached
	}
	stops := g.stops
	if len(stops) == 0 {
		stops = []ColorStop{{0, Black}, {1, White}}
	}
	s := &Shader{
		kind:  g.kind,
		p0:    g.p0,
		p1:    g.p1,
		r1:    g.r1,
		ramp:  ramps.Get().(*ramp),
		refs:  1,
		arena: g.arena,
	}
	s.ramp.fill(stops)
	g.arena.acquire()
	g.cached = s
	return s
}

// fill samples the stops into the ramp, interpolating premultiplied.
func (r *ramp) fill(stops []ColorStop) {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	first, last := sorted[0], sorted[len(sorted)-1]
	j := 0
	for i := range r {
		t := float64(i) / 255
		switch {
		case t <= first.Offset:
			r[i] = first.Color.premul()
			continue
		case t >= last.Offset:
			r[i] = last.Color.premul()
			continue
		}
		for j+1 < len(sorted)-1 && sorted[j+1].Offset <= t {
			j++
		}
		a, b := sorted[j], sorted[j+1]
		span := b.Offset - a.Offset
		if span <= 0 {
			r[i] = b.Color.premul()
			continue
		}
		r[i] = lerpColor(a.Color.premul(), b.Color.premul(), (t-a.Offset)/span)
	}
}

func lerpColor(a, b blend.Color, t float64) blend.Color {
	return blend.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Shader is a compiled, immutable gradient. Shaders are reference
// counted by the states and gradients that hold them and return their
// colour ramp to a pool when the last holder lets go.
type Shader struct {
	kind   GradientKind
	p0, p1 geom.Point
	r1     float64
	ramp   *ramp
	refs   int
	arena  *arena
}

// Released reports whether every holder has let go of the shader.
func (s *Shader) Released() bool {
	return s.refs <= 0
}

func (s *Shader) retain() *Shader {
	if s != nil {
		s.refs++
	}
	return s
}

func (s *Shader) release() {
	if s == nil || s.refs <= 0 {
		return
	}
	s.refs--
	if s.refs == 0 {
		ramps.Put(s.ramp)
		s.ramp = nil
		s.arena.release()
	}
}

// at returns the premultiplied colour at p in gradient space.
func (s *Shader) at(p geom.Point) blend.Color {
	if s.ramp == nil {
		return blend.Color{}
	}
	var t float64
	switch s.kind {
	case GradientRadial:
		if s.r1 <= 0 {
			return s.ramp[0]
		}
		t = p.Sub(s.p1).Len() / s.r1
	default:
		d := s.p1.Sub(s.p0)
		l2 := d.Dot(d)
		if l2 == 0 {
			return s.ramp[0]
		}
		t = p.Sub(s.p0).Dot(d) / l2
	}
	if math.IsNaN(t) {
		return s.ramp[0]
	}
	return s.ramp[int(math.Round(unit(t)*255))]
}
