package blend

import "math"

// separable applies the general formula from the W3C compositing spec:
//
//	co = cs*(1-ad) + cd*(1-as) + as*ad*B(cs/as, cd/ad)
//	ao = as + ad - as*ad
func separable(s, d Color, f func(cs, cb float64) float64) Color {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	sa, da := s.A, d.A
	both := sa * da
	ch := func(sc, dc float64) float64 {
		return sc*(1-da) + dc*(1-sa) + both*f(sc/sa, dc/da)
	}
	return Color{
		R: ch(s.R, d.R),
		G: ch(s.G, d.G),
		B: ch(s.B, d.B),
		A: sa + da - both,
	}
}

func separableFunc(m Mode) func(cs, cb float64) float64 {
	switch m {
	case Multiply:
		return func(cs, cb float64) float64 { return cs * cb }
	case Screen:
		return screen
	case Overlay:
		return func(cs, cb float64) float64 { return hardLight(cb, cs) }
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case ColorDodge:
		return colorDodge
	case ColorBurn:
		return colorBurn
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(cs, cb float64) float64 { return math.Abs(cs - cb) }
	case Exclusion:
		return func(cs, cb float64) float64 { return cs + cb - 2*cs*cb }
	}
	return nil
}

func screen(cs, cb float64) float64 {
	return cs + cb - cs*cb
}

func hardLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(cb, 2*cs-1)
}

func colorDodge(cs, cb float64) float64 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

func colorBurn(cs, cb float64) float64 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}

func softLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var dd float64
	if cb <= 0.25 {
		dd = ((16*cb-12)*cb + 4) * cb
	} else {
		dd = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(dd-cb)
}
