package ledcanvas

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
)

func TestSurfaceSaveRestore(t *testing.T) {
	s, _ := NewSurface(4, 4)
	s.Save()
	s.Translate(2, 3)
	s.Save()
	s.Translate(1, 1)
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
	s.Restore()
	if s.offset.X != 2 || s.offset.Y != 3 {
		t.Errorf("offset = %v, want (2, 3)", s.offset)
	}
	s.Restore()
	s.Restore()
	if s.offset.X != 0 || s.offset.Y != 0 || s.Depth() != 0 {
		t.Errorf("offset = %v depth = %d after full restore", s.offset, s.Depth())
	}
}

func TestSurfacePixelOutOfRange(t *testing.T) {
	s, _ := NewSurface(2, 2)
	s.Clear(White)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := s.Pixel(p[0], p[1]); got != Transparent {
			t.Errorf("Pixel(%d, %d) = %v, want transparent", p[0], p[1], got)
		}
	}
}

func TestSurfaceReset(t *testing.T) {
	ctx := newTestContext(t, 4, 4)
	s := ctx.Surface()
	ctx.Clear(1, 2, 3)
	ctx.BeginPath()
	ctx.Rect(0, 0, 1, 1)
	ctx.Clip()
	ctx.Save()

	s.Reset()
	if got := s.Pixel(2, 2); got != Transparent {
		t.Errorf("Pixel after Reset = %v, want transparent", got)
	}
	if s.clip != nil || s.Depth() != 0 {
		t.Error("Reset kept the clip or save stack")
	}
}

func TestSurfacePNG(t *testing.T) {
	s, _ := NewSurface(3, 2)
	s.Clear(RGB(255, 0, 0))

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded size = %v, want 3x2", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}

func TestSurfaceStoreKeepsPremultiplied(t *testing.T) {
	s, _ := NewSurface(1, 1)
	ctx, _ := NewContext(s)
	defer ctx.Close()
	ctx.SetGlobalCompositeOperation("lighter")
	ctx.SetFillStyle(RGBA(255, 255, 255, 200))
	ctx.FillRect(0, 0, 1, 1)
	ctx.FillRect(0, 0, 1, 1)

	p := s.Image().Pix
	if p[0] > p[3] || p[1] > p[3] || p[2] > p[3] {
		t.Errorf("pixel %v has colour above alpha", p[:4])
	}
}
