package ledcanvas

import (
	"math"
	"testing"

	"github.com/gogpu/ledcanvas/internal/geom"
)

func TestArcSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		want       float64
	}{
		{"quarter clockwise", 0, math.Pi / 2, false, 90},
		{"quarter counter-clockwise", 0, math.Pi / 2, true, -270},
		{"backwards clockwise", math.Pi / 2, 0, false, 270},
		{"backwards counter-clockwise", math.Pi / 2, 0, true, -90},
		{"full turn", 0, 2 * math.Pi, false, 360},
		{"full turn counter-clockwise", 0, 2 * math.Pi, true, -360},
		{"more than a turn", 0, 5 * math.Pi, false, 360},
		{"empty", 1, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := arcSweep(tt.start, tt.end, tt.ccw)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("arcSweep(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.ccw, got, tt.want)
			}
		})
	}
}

func TestArcDirection(t *testing.T) {
	// A clockwise quarter from 0 to pi/2 passes through the lower right
	// quadrant (y down); the counter-clockwise arc takes the long way.
	ctx := newTestContext(t, 40, 40)

	ctx.BeginPath()
	ctx.MoveTo(20, 20)
	ctx.Arc(20, 20, 10, 0, math.Pi/2, false)
	ctx.ClosePath()
	if !ctx.IsPointInPath(24, 24) {
		t.Error("clockwise quarter does not contain (24, 24)")
	}
	if ctx.IsPointInPath(16, 16) {
		t.Error("clockwise quarter contains (16, 16)")
	}

	ctx.BeginPath()
	ctx.MoveTo(20, 20)
	ctx.Arc(20, 20, 10, 0, math.Pi/2, true)
	ctx.ClosePath()
	if ctx.IsPointInPath(24, 24) {
		t.Error("counter-clockwise arc contains (24, 24)")
	}
	if !ctx.IsPointInPath(16, 16) {
		t.Error("counter-clockwise arc does not contain (16, 16)")
	}
}

func TestIsPointInPathTriangle(t *testing.T) {
	ctx := newTestContext(t, 20, 20)
	ctx.BeginPath()
	ctx.MoveTo(0, 0)
	ctx.LineTo(10, 0)
	ctx.LineTo(10, 10)
	ctx.ClosePath()
	ctx.Fill()

	if !ctx.IsPointInPath(5, 5) {
		t.Error("IsPointInPath(5, 5) = false, want true")
	}
	if ctx.IsPointInPath(50, 50) {
		t.Error("IsPointInPath(50, 50) = true, want false")
	}
	if ctx.IsPointInPath(2, 8) {
		t.Error("IsPointInPath(2, 8) = true, want false")
	}
}

func TestIsPointInPathWithoutPath(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	if ctx.IsPointInPath(1, 1) {
		t.Error("IsPointInPath() = true with no path")
	}
	if ctx.IsPointInStroke(1, 1) {
		t.Error("IsPointInStroke() = true with no path")
	}
	// Fill and Stroke without a path are no-ops.
	ctx.Fill()
	ctx.Stroke()
	if ctx.Surface().Pixel(1, 1) != Transparent {
		t.Error("Fill() without a path drew")
	}
}

func TestIsPointInStroke(t *testing.T) {
	ctx := newTestContext(t, 40, 40)
	ctx.SetLineWidth(4)
	ctx.BeginPath()
	ctx.MoveTo(0, 10)
	ctx.LineTo(20, 10)

	if !ctx.IsPointInStroke(10, 11) {
		t.Error("IsPointInStroke(10, 11) = false, want true")
	}
	if ctx.IsPointInStroke(10, 15) {
		t.Error("IsPointInStroke(10, 15) = true, want false")
	}
	if ctx.IsPointInStroke(23, 10) {
		t.Error("butt cap extends past the end point")
	}

	ctx.SetLineCap("square")
	if !ctx.IsPointInStroke(21.5, 10) {
		t.Error("square cap does not extend past the end point")
	}
}

func TestPathKeepsDeviceGeometry(t *testing.T) {
	ctx := newTestContext(t, 40, 40)
	ctx.Translate(20, 0)
	ctx.BeginPath()
	ctx.Rect(0, 0, 5, 5)
	ctx.ResetTransform()

	// The rectangle was placed at x = 20 when it was appended.
	if !ctx.IsPointInPath(22, 2) {
		t.Error("IsPointInPath(22, 2) = false, want true")
	}
	if ctx.IsPointInPath(2, 2) {
		t.Error("IsPointInPath(2, 2) = true after transform change")
	}

	// New points use the new transform.
	ctx.MoveTo(0, 20)
	ctx.LineTo(5, 20)
	ctx.LineTo(5, 25)
	ctx.ClosePath()
	if !ctx.IsPointInPath(4, 21) {
		t.Error("segment added after ResetTransform is not at the origin")
	}
}

func TestLineToWithoutCurrentPoint(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	ctx.BeginPath()
	ctx.LineTo(1, 1)
	segs := ctx.path.segments()
	if len(segs) != 1 || segs[0].Verb != geom.MoveTo {
		t.Errorf("LineTo on empty path = %+v, want a single MoveTo", segs)
	}
}

func TestPathIgnoresNonFinite(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	ctx.BeginPath()
	ctx.MoveTo(0, 0)
	ctx.LineTo(math.NaN(), 1)
	ctx.LineTo(1, math.Inf(1))
	ctx.BezierCurveTo(0, 0, math.NaN(), 0, 1, 1)
	ctx.Arc(0, 0, math.NaN(), 0, 1, false)
	if n := len(ctx.path.segments()); n != 1 {
		t.Errorf("path has %d segments, want 1", n)
	}
}

func TestRectAndEllipseHitTest(t *testing.T) {
	ctx := newTestContext(t, 64, 64)
	ctx.BeginPath()
	ctx.Ellipse(32, 32, 20, 8, 0, 0, 2*math.Pi, false)

	if !ctx.IsPointInPath(50, 32) {
		t.Error("point on the long axis not inside ellipse")
	}
	if ctx.IsPointInPath(32, 45) {
		t.Error("point beyond the short axis inside ellipse")
	}

	ctx.BeginPath()
	ctx.Ellipse(32, 32, 20, 8, math.Pi/2, 0, 2*math.Pi, false)
	if !ctx.IsPointInPath(32, 50) {
		t.Error("rotated ellipse does not reach (32, 50)")
	}
	if ctx.IsPointInPath(50, 32) {
		t.Error("rotated ellipse still reaches (50, 32)")
	}
}

func TestArcTo(t *testing.T) {
	ctx := newTestContext(t, 64, 64)
	ctx.BeginPath()
	ctx.MoveTo(0, 0)
	ctx.ArcTo(40, 0, 40, 40, 10)
	ctx.LineTo(40, 40)
	ctx.LineTo(0, 40)
	ctx.ClosePath()

	// The rounded corner cuts off (39, 1).
	if ctx.IsPointInPath(39, 1) {
		t.Error("corner point inside the rounded path")
	}
	if !ctx.IsPointInPath(30, 5) {
		t.Error("interior point outside the rounded path")
	}

	cur, ok := ctx.path.current()
	if !ok || math.Abs(cur.X) > 1e-9 || math.Abs(cur.Y) > 1e-9 {
		t.Errorf("current point after ClosePath = %v, want (0, 0)", cur)
	}
}

func TestCurvesHitTest(t *testing.T) {
	ctx := newTestContext(t, 64, 64)
	ctx.BeginPath()
	ctx.MoveTo(0, 40)
	ctx.QuadraticCurveTo(20, 0, 40, 40)
	ctx.ClosePath()
	if !ctx.IsPointInPath(20, 30) {
		t.Error("quadratic region does not contain (20, 30)")
	}
	if ctx.IsPointInPath(20, 10) {
		t.Error("quadratic region contains (20, 10)")
	}

	ctx.BeginPath()
	ctx.MoveTo(0, 40)
	ctx.BezierCurveTo(0, 0, 40, 0, 40, 40)
	ctx.ClosePath()
	if !ctx.IsPointInPath(20, 20) {
		t.Error("cubic region does not contain (20, 20)")
	}
}

func TestBeginPathReleasesPrevious(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	ctx.BeginPath()
	ctx.BeginPath()
	ctx.BeginPath()
	if got := ctx.LiveResources(); got != 1 {
		t.Errorf("LiveResources() = %d, want 1", got)
	}
}
