package ledcanvas

import (
	"image"
	"math"
	"testing"
)

// inkBounds returns the bounding box of pixels with non-zero alpha.
func inkBounds(s *Surface) image.Rectangle {
	var r image.Rectangle
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.Pixel(x, y).A > 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestSetFont(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	ctx.SetFont("bold 20px monospace")
	if got := ctx.state.font.Size; got != 20 {
		t.Errorf("font size = %v, want 20", got)
	}
	if !ctx.state.font.Bold {
		t.Error("bold not parsed")
	}
	ctx.SetFont("garbage")
	if got := ctx.state.font.Size; got != 20 {
		t.Errorf("size changed by a spec without size: %v", got)
	}
}

func TestTextAlignBaselineNames(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	ctx.SetTextAlign("center")
	if ctx.TextAlign() != AlignCenter {
		t.Errorf("TextAlign() = %q, want center", ctx.TextAlign())
	}
	ctx.SetTextAlign("middle")
	if ctx.TextAlign() != AlignStart {
		t.Errorf("unknown align = %q, want start", ctx.TextAlign())
	}
	ctx.SetTextBaseline("top")
	if ctx.TextBaseline() != BaselineTop {
		t.Errorf("TextBaseline() = %q, want top", ctx.TextBaseline())
	}
	ctx.SetTextBaseline("center")
	if ctx.TextBaseline() != BaselineAlphabetic {
		t.Errorf("unknown baseline = %q, want alphabetic", ctx.TextBaseline())
	}
}

func TestMeasureText(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	ctx.SetFont("16px sans-serif")

	if got := ctx.MeasureText(""); got.Width != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", got.Width)
	}
	one := ctx.MeasureText("Hello").Width
	two := ctx.MeasureText("HelloHello").Width
	if one <= 0 {
		t.Fatalf("MeasureText(Hello) = %v, want > 0", one)
	}
	if math.Abs(two-2*one) > 1 {
		t.Errorf("MeasureText(HelloHello) = %v, want about %v", two, 2*one)
	}

	ctx.SetFont("32px sans-serif")
	big := ctx.MeasureText("Hello").Width
	if math.Abs(big-2*one) > 1 {
		t.Errorf("32px width = %v, want about %v", big, 2*one)
	}
}

func TestFillTextDraws(t *testing.T) {
	ctx := newTestContext(t, 80, 30)
	ctx.SetFont("20px sans-serif")
	ctx.SetFillStyle(White)
	ctx.SetTextBaseline("top")
	ctx.FillText("Hi", 2, 2)

	r := inkBounds(ctx.Surface())
	if r.Empty() {
		t.Fatal("FillText drew nothing")
	}
	if r.Min.Y < 1 || r.Min.X < 1 {
		t.Errorf("ink %v starts above or left of the anchor", r)
	}
	if ctx.LiveResources() != 0 {
		t.Errorf("LiveResources() = %d after FillText, want 0", ctx.LiveResources())
	}
}

func TestTextAlignment(t *testing.T) {
	draw := func(align string, x float64) image.Rectangle {
		ctx := newTestContext(t, 100, 30)
		ctx.SetFont("20px sans-serif")
		ctx.SetFillStyle(White)
		ctx.SetTextAlign(align)
		ctx.SetTextBaseline("middle")
		ctx.FillText("Wide", x, 15)
		return inkBounds(ctx.Surface())
	}

	left := draw("left", 50)
	right := draw("right", 50)
	center := draw("center", 50)

	if left.Min.X < 49 {
		t.Errorf("left aligned ink starts at %d, want >= 49", left.Min.X)
	}
	if right.Max.X > 51 {
		t.Errorf("right aligned ink ends at %d, want <= 51", right.Max.X)
	}
	if center.Min.X >= 50 || center.Max.X <= 50 {
		t.Errorf("centred ink %v does not straddle x = 50", center)
	}

	if got := draw("end", 0); !got.Empty() {
		t.Errorf("end aligned text at x = 0 drew %v", got)
	}
}

func TestTextBaselines(t *testing.T) {
	draw := func(baseline string) image.Rectangle {
		ctx := newTestContext(t, 60, 60)
		ctx.SetFont("20px sans-serif")
		ctx.SetFillStyle(White)
		ctx.SetTextBaseline(baseline)
		ctx.FillText("H", 10, 30)
		return inkBounds(ctx.Surface())
	}

	top := draw("top")
	alpha := draw("alphabetic")
	bottom := draw("bottom")
	middle := draw("middle")

	if top.Min.Y < 29 {
		t.Errorf("top baseline ink starts at %d, want >= 29", top.Min.Y)
	}
	if alpha.Max.Y > 31 {
		t.Errorf("alphabetic ink ends at %d, want <= 31", alpha.Max.Y)
	}
	if bottom.Max.Y > alpha.Max.Y {
		t.Errorf("bottom ink %v below alphabetic ink %v", bottom, alpha)
	}
	if middle.Min.Y >= 30 || middle.Max.Y <= 30 {
		t.Errorf("middle ink %v does not straddle y = 30", middle)
	}
}

func TestFillTextMaxWidth(t *testing.T) {
	ctx := newTestContext(t, 200, 30)
	ctx.SetFont("20px sans-serif")
	ctx.SetFillStyle(White)
	ctx.SetTextBaseline("top")

	w := ctx.MeasureText("WWWWWW").Width
	if w <= 30 {
		t.Fatalf("test string too narrow: %v", w)
	}
	ctx.FillTextMaxWidth("WWWWWW", 0, 0, 30)
	if r := inkBounds(ctx.Surface()); r.Empty() || r.Max.X > 31 {
		t.Errorf("condensed ink %v exceeds maxWidth", r)
	}

	other := newTestContext(t, 50, 30)
	other.SetFillStyle(White)
	other.FillTextMaxWidth("W", 10, 20, 0)
	other.FillTextMaxWidth("W", 10, 20, math.NaN())
	if r := inkBounds(other.Surface()); !r.Empty() {
		t.Errorf("non-positive maxWidth drew %v", r)
	}
}

func TestStrokeText(t *testing.T) {
	ctx := newTestContext(t, 80, 40)
	ctx.SetFont("30px sans-serif")
	ctx.SetStrokeStyle(RGB(255, 0, 0))
	ctx.StrokeText("O", 10, 32)
	if r := inkBounds(ctx.Surface()); r.Empty() {
		t.Error("StrokeText drew nothing")
	}
}

func TestTextFollowsTransform(t *testing.T) {
	ctx := newTestContext(t, 100, 100)
	ctx.SetFont("20px sans-serif")
	ctx.SetFillStyle(White)
	ctx.SetTextBaseline("top")
	ctx.Translate(50, 50)
	ctx.FillText("H", 0, 0)
	r := inkBounds(ctx.Surface())
	if r.Min.X < 49 || r.Min.Y < 49 {
		t.Errorf("translated ink %v, want beyond (50, 50)", r)
	}
}
