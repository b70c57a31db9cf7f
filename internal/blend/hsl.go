package blend

// nonSeparable implements hue, saturation, color and luminosity, which
// operate on the whole RGB triplet.
func nonSeparable(m Mode, s, d Color) Color {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	sa, da := s.A, d.A
	sr, sg, sb := s.R/sa, s.G/sa, s.B/sa
	dr, dg, db := d.R/da, d.G/da, d.B/da

	var r, g, b float64
	switch m {
	case Hue:
		r, g, b = setSat(sr, sg, sb, sat(dr, dg, db))
		r, g, b = setLum(r, g, b, lum(dr, dg, db))
	case Saturation:
		r, g, b = setSat(dr, dg, db, sat(sr, sg, sb))
		r, g, b = setLum(r, g, b, lum(dr, dg, db))
	case ColorMode:
		r, g, b = setLum(sr, sg, sb, lum(dr, dg, db))
	default:
		r, g, b = setLum(dr, dg, db, lum(sr, sg, sb))
	}

	both := sa * da
	return Color{
		R: s.R*(1-da) + d.R*(1-sa) + both*r,
		G: s.G*(1-da) + d.G*(1-sa) + both*g,
		B: s.B*(1-da) + d.B*(1-sa) + both*b,
		A: sa + da - both,
	}
}

func lum(r, g, b float64) float64 {
	return 0.3*r + 0.59*g + 0.11*b
}

func sat(r, g, b float64) float64 {
	return max(r, g, b) - min(r, g, b)
}

func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat rescales the channels so that max-min equals s, keeping the
// channel ordering.
func setSat(r, g, b, s float64) (float64, float64, float64) {
	c := [3]float64{r, g, b}
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[hi] > c[lo] {
		c[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		c[hi] = s
	} else {
		c[mid], c[hi] = 0, 0
	}
	c[lo] = 0
	return c[0], c[1], c[2]
}
