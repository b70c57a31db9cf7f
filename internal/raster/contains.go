package raster

import (
	"math"

	"github.com/gogpu/ledcanvas/internal/geom"
)

// edgeEpsilon is the distance under which a point counts as lying on an
// edge.
const edgeEpsilon = 1e-7

// Contains reports whether p is inside the filled path under the nonzero
// rule. Open sub-paths are implicitly closed. Points on an edge count as
// inside.
func Contains(segs []geom.Segment, p geom.Point, tolerance float64) bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return false
	}
	winding := 0
	for _, pl := range geom.Flatten(segs, tolerance) {
		pts := pl.Points
		n := len(pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			if onSegment(p, a, b) {
				return true
			}
			winding += crossing(p, a, b)
		}
	}
	return winding != 0
}

// crossing returns the signed contribution of edge a→b to the winding
// number around p.
func crossing(p, a, b geom.Point) int {
	side := b.Sub(a).Cross(p.Sub(a))
	if a.Y <= p.Y {
		if b.Y > p.Y && side > 0 {
			return 1
		}
	} else if b.Y <= p.Y && side < 0 {
		return -1
	}
	return 0
}

func onSegment(p, a, b geom.Point) bool {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Len() <= edgeEpsilon
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 || t > 1 {
		return false
	}
	return p.Sub(a.Add(ab.Mul(t))).Len() <= edgeEpsilon*math.Max(1, math.Sqrt(l2))
}
