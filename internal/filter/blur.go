package filter

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/gogpu/ledcanvas/internal/raster"
)

// MaxSigma is the largest standard deviation Gaussian and Margin honour.
// Larger values are clamped.
const MaxSigma = 32

// clampSigma maps sigma into [0, MaxSigma], treating NaN as 0.
func clampSigma(sigma float64) float64 {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 0
	}
	return math.Min(sigma, MaxSigma)
}

// Margin returns how far, in pixels, a Gaussian of the given standard
// deviation visibly spreads coverage.
func Margin(sigma float64) int {
	return int(math.Ceil(3 * clampSigma(sigma)))
}

// kernel returns the normalised 1-D Gaussian for sigma, spanning 3σ on
// each side.
func kernel(sigma float64) convolution.Matrix {
	half := Margin(sigma)
	k := convolution.NewKernel(2*half+1, 1)
	for i := range k.Matrix {
		x := float64(i - half)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	return k.Normalized()
}

// Gaussian returns a blurred copy of mask grown by Margin(sigma) on every
// side, so the blur can spread past the shape. The result is a pooled
// mask and must be handed back with raster.Release. A non-positive sigma
// returns a plain copy.
func Gaussian(mask *image.Alpha, sigma float64) *image.Alpha {
	if mask == nil {
		return nil
	}
	m := Margin(sigma)
	r := mask.Rect.Inset(-m)
	out := raster.NewMask(r)
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	for y := 0; y < h; y++ {
		copy(out.Pix[(y+m)*out.Stride+m:], mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}
	if m == 0 {
		return out
	}

	// bild works in its own coordinate space; hand it an origin-based view.
	src := &image.Alpha{Pix: out.Pix, Stride: out.Stride, Rect: image.Rect(0, 0, r.Dx(), r.Dy())}
	k := kernel(clampSigma(sigma))
	opts := &convolution.Options{}
	blurred := convolution.Convolve(src, k, opts)
	blurred = convolution.Convolve(blurred, k.Transposed(), opts)
	b := blurred.Bounds()

	for y := 0; y < r.Dy(); y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < r.Dx(); x++ {
			row[x] = blurred.Pix[blurred.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
		}
	}
	return out
}
