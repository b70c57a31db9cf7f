// Package filter blurs coverage masks for shadow rendering.
//
// Blurring is a separable Gaussian convolution spanning 3σ, run through
// github.com/anthonynsimon/bild/convolution. Sigma is clamped to MaxSigma. Masks are
// padded by Margin before blurring so that the blur has room to spread
// past the shape.
package filter
