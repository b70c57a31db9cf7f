package ledcanvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/ledcanvas/internal/blend"
	"github.com/gogpu/ledcanvas/internal/filter"
	"github.com/gogpu/ledcanvas/internal/geom"
	"github.com/gogpu/ledcanvas/internal/raster"
)

// Surface is the raster target of a Context: a premultiplied RGBA pixel
// buffer with a clip mask and a device offset, both saved and restored
// in step with the context's state stack.
type Surface struct {
	img    *image.RGBA
	offset geom.Point
	clip   *image.Alpha
	stack  []surfaceState
}

type surfaceState struct {
	offset geom.Point
	clip   *image.Alpha
}

// NewSurface allocates a transparent surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface size %dx%d", ErrInvalidArgument, width, height)
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Bounds returns the pixel rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Image returns the backing premultiplied image. It is shared, not copied.
func (s *Surface) Image() *image.RGBA { return s.img }

// Depth returns the number of unmatched Save calls.
func (s *Surface) Depth() int { return len(s.stack) }

// Save pushes the offset and clip.
func (s *Surface) Save() {
	s.stack = append(s.stack, surfaceState{offset: s.offset, clip: s.clip})
}

// Restore pops the last Save. It is a no-op on an empty stack.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	top := s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.offset, s.clip = top.offset, top.clip
}

// restoreAll unwinds every outstanding Save.
func (s *Surface) restoreAll() {
	if n := len(s.stack); n > 0 {
		s.offset, s.clip = s.stack[0].offset, s.stack[0].clip
		s.stack = s.stack[:0]
	}
}

// Translate shifts all subsequent drawing by (dx, dy) device pixels until
// the matching Restore.
func (s *Surface) Translate(dx, dy float64) {
	if math.IsNaN(dx) || math.IsInf(dx, 0) || math.IsNaN(dy) || math.IsInf(dy, 0) {
		return
	}
	s.offset = s.offset.Add(geom.Pt(dx, dy))
}

// Reset clears pixels, clip, offset and the save stack so the surface
// can serve a new frame.
func (s *Surface) Reset() {
	clear(s.img.Pix)
	s.offset = geom.Point{}
	s.clip = nil
	s.stack = s.stack[:0]
}

// Pixel returns the straight-alpha colour at (x, y). Out-of-range
// coordinates return Transparent.
func (s *Surface) Pixel(x, y int) Color {
	if !image.Pt(x, y).In(s.img.Rect) {
		return Transparent
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	a := p[3]
	if a == 0 {
		return Transparent
	}
	un := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*255/float64(a))))
	}
	return Color{R: un(p[0]), G: un(p[1]), B: un(p[2]), A: a}
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Clear replaces every pixel inside the clip with c, ignoring blending.
func (s *Surface) Clear(c Color) {
	src := c.premul()
	b := s.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := 1.0
			if s.clip != nil {
				cov = float64(s.clip.AlphaAt(x, y).A) / 255
				if cov == 0 {
					continue
				}
			}
			s.store(x, y, blend.Mix(blend.Copy, src, s.load(x, y), cov))
		}
	}
}

// fill composites the device-space path segs with p. Strokes must
// already be expanded into fill outlines.
func (s *Surface) fill(segs []geom.Segment, p paint) {
	if len(segs) == 0 {
		return
	}
	if s.offset != (geom.Point{}) {
		moved := make([]geom.Segment, len(segs))
		copy(moved, segs)
		geom.Transform(moved, geom.Affine{A: 1, C: s.offset.X, E: 1, F: s.offset.Y})
		segs = moved
	}

	limit := s.img.Rect
	rasterLimit := limit
	if p.blur > 0 {
		m := filter.Margin(p.blur)
		rasterLimit = limit.Inset(-m)
	}

	mask := raster.Fill(segs, rasterLimit)
	if mask == nil {
		return
	}
	if p.blur > 0 {
		blurred := filter.Gaussian(mask, p.blur)
		raster.Release(mask)
		mask = blurred
	}
	defer raster.Release(mask)

	s.composite(mask, p)
}

// composite blends p through mask into the pixels, honouring the clip.
func (s *Surface) composite(mask *image.Alpha, p paint) {
	r := mask.Rect.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	solid := p.color.premul()
	shade := p.shader != nil
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := mask.Pix[mask.PixOffset(x, y)]
			if m == 0 {
				continue
			}
			cov := float64(m) / 255
			if s.clip != nil {
				cov *= float64(s.clip.Pix[s.clip.PixOffset(x, y)]) / 255
				if cov == 0 {
					continue
				}
			}
			src := solid
			if shade {
				up := p.inverse.apply(geom.Pt(float64(x)+0.5, float64(y)+0.5))
				src = scale(p.shader.at(up), p.alpha)
			}
			s.store(x, y, blend.Mix(p.mode, src, s.load(x, y), cov))
		}
	}
}

// intersectClip narrows the clip to the coverage of segs.
func (s *Surface) intersectClip(segs []geom.Segment) {
	b := s.img.Rect
	next := image.NewAlpha(b)
	mask := raster.Fill(segs, b)
	if mask != nil {
		defer raster.Release(mask)
		for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
			for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
				m := uint32(mask.Pix[mask.PixOffset(x, y)])
				if s.clip != nil {
					m = m * uint32(s.clip.Pix[s.clip.PixOffset(x, y)]) / 255
				}
				next.Pix[next.PixOffset(x, y)] = uint8(m)
			}
		}
	}
	// Saved states keep their own clip pointer, so replace rather than mutate.
	s.clip = next
}

func (s *Surface) load(x, y int) blend.Color {
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	return blend.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
		A: float64(p[3]) / 255,
	}
}

func (s *Surface) store(x, y int, c blend.Color) {
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	a := to8(c.A)
	p[0] = min(to8(c.R), a)
	p[1] = min(to8(c.G), a)
	p[2] = min(to8(c.B), a)
	p[3] = a
}

func to8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func scale(c blend.Color, a float64) blend.Color {
	return blend.Color{R: c.R * a, G: c.G * a, B: c.B * a, A: c.A * a}
}
