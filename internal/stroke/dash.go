package stroke

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
)

// NormalizeDash validates a dash pattern. It returns nil with ok=false
// when any length is negative or not finite, and doubles odd-length
// patterns. An all-zero pattern is treated as solid.
func NormalizeDash(pattern []float64) (out []float64, ok bool) {
	var total float64
	for _, v := range pattern {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		total += v
	}
	if len(pattern) == 0 || total == 0 {
		return nil, true
	}
	out = make([]float64, 0, 2*len(pattern))
	out = append(out, pattern...)
	if len(pattern)%2 != 0 {
		out = append(out, pattern...)
	}
	return out, true
}

// maxDashes bounds the dashes a single stroke produces. Paths that would
// need more are stroked solid.
const maxDashes = 1 << 16

// dash splits every polyline into the "on" intervals of pattern.
// The pattern restarts at offset for each sub-path.
func dash(lines []geom.Polyline, pattern []float64, offset float64) []geom.Polyline {
	pattern, ok := NormalizeDash(pattern)
	if !ok || pattern == nil {
		return lines
	}
	var period float64
	for _, v := range pattern {
		period += v
	}
	if n := pathLength(lines) / period; !(n <= maxDashes) {
		return lines
	}

	var out []geom.Polyline
	for _, pl := range lines {
		pts := pl.Points
		if pl.Closed && len(pts) > 0 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		if len(pts) < 2 {
			continue
		}

		idx, remain := dashStart(pattern, period, offset)
		on := idx%2 == 0
		var cur []geom.Point
		if on {
			cur = []geom.Point{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := b.Sub(a).Len()
			pos := 0.0
			for segLen-pos > remain {
				pos += remain
				p := a.Lerp(b, pos/segLen)
				if on {
					cur = append(cur, p)
					out = append(out, geom.Polyline{Points: cur})
					cur = nil
				} else {
					cur = []geom.Point{p}
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
			}
			remain -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 1 {
			out = append(out, geom.Polyline{Points: cur})
		}
	}
	return out
}

// dashStart returns the pattern index and the remaining length of that
// entry at the given offset.
func dashStart(pattern []float64, period, offset float64) (int, float64) {
	offset = math.Mod(offset, period)
	if offset < 0 {
		offset += period
	}
	for i, v := range pattern {
		if offset < v {
			return i, v - offset
		}
		offset -= v
	}
	return 0, pattern[0]
}

// pathLength returns the total length of lines, closing edges included.
func pathLength(lines []geom.Polyline) float64 {
	var total float64
	for _, pl := range lines {
		pts := pl.Points
		for i := 1; i < len(pts); i++ {
			total += pts[i].Sub(pts[i-1]).Len()
		}
		if pl.Closed && len(pts) > 1 {
			total += pts[0].Sub(pts[len(pts)-1]).Len()
		}
	}
	return total
}
