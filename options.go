package ledcanvas

import (
	"math"

	"github.com/gogpu/ledcanvas/text"
)

// DefaultShadowBlurScale converts shadowBlur to a Gaussian standard
// deviation, following the CSS convention sigma = blur / 2.
const DefaultShadowBlurScale = 0.5

// Option configures a Context during creation.
//
// Example:
//
//	surface, _ := ledcanvas.NewSurface(64, 32)
//	ctx, err := ledcanvas.NewContext(surface,
//	    ledcanvas.WithDefaultColor(ledcanvas.White),
//	    ledcanvas.WithShadowBlurScale(1.0/3),
//	)
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	defaultColor    Color
	shadowBlurScale float64
	fonts           *text.Registry
	tolerance       float64
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		defaultColor:    Black,
		shadowBlurScale: DefaultShadowBlurScale,
		tolerance:       0.1,
	}
}

// WithDefaultColor sets the initial fill and stroke colour.
func WithDefaultColor(c Color) Option {
	return func(o *options) {
		o.defaultColor = c
	}
}

// WithShadowBlurScale sets the factor turning shadowBlur into a Gaussian
// standard deviation. Non-positive or non-finite values are ignored.
func WithShadowBlurScale(scale float64) Option {
	return func(o *options) {
		if scale > 0 && !math.IsInf(scale, 0) {
			o.shadowBlurScale = scale
		}
	}
}

// WithFontRegistry shares a font registry between contexts. Without it
// every context uses the package default registry.
func WithFontRegistry(r *text.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.fonts = r
		}
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels
// used by hit tests and strokes. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 && !math.IsInf(tol, 0) {
			o.tolerance = tol
		}
	}
}
