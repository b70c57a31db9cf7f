// Package ledcanvas provides an immediate-mode 2D canvas for LED
// effects.
//
// # Overview
//
// ledcanvas implements the HTML Canvas 2D drawing model over a small
// software raster surface. A script-like caller drives a Context once
// per animation frame; the resulting pixels are sampled to colour
// physical LEDs. Drawing calls never fail: out-of-range input is clamped
// and unknown names fall back to defaults, so one bad call degrades a
// frame instead of halting it.
//
// # Quick Start
//
//	surface, _ := ledcanvas.NewSurface(64, 16)
//	ctx, _ := ledcanvas.NewContext(surface)
//	defer ctx.Close()
//
//	ctx.Clear(0, 0, 0)
//	ctx.SetFillStyle(ledcanvas.RGBA(255, 0, 0, 255))
//	ctx.SetGlobalAlpha(0.5)
//	ctx.FillRect(0, 0, 10, 10)
//
//	_ = surface.SavePNG("frame.png")
//
// For frame loops, the frame package recycles surfaces and contexts.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// # Resources
//
// A Context owns its active path, the gradient shaders in its state
// stack and every Gradient created through it. Close releases all of
// them; LiveResources reports what is still held.
//
// # Logging
//
// The package is silent by default. Call SetLogger to route Debug
// messages about recovered mistakes and Warn messages about font
// fallback and lifecycle problems to a slog.Logger.
package ledcanvas

// Version is the current version of the library.
const Version = "0.1.0"
