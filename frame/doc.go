// Package frame runs per-frame drawing on recycled surfaces.
//
// Every animation frame gets a fresh ledcanvas.Context bound to a reset
// surface, so no state leaks from one frame to the next, while the pixel
// buffers themselves are reused. Pool.Begin starts a frame and
// Frame.End finishes it; Pool.Render does both around a draw callback.
//
// Clock is the script-facing time control: a scaled, pausable frame
// clock.
package frame
