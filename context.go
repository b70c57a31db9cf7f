package ledcanvas

import (
	"fmt"
	"io"

	"github.com/gogpu/ledcanvas/internal/blend"
	"github.com/gogpu/ledcanvas/text"
)

// Context is the immediate-mode drawing context. It owns the state
// stack, the active path and every gradient shader created through it,
// and draws into a Surface.
//
// A Context is meant to live for one frame and is not safe for
// concurrent use. Drawing calls never fail: bad input is clamped or
// ignored. Close releases everything the context owns.
type Context struct {
	surface *Surface
	opts    options
	fonts   *text.Registry

	state state
	stack []state

	path      *path
	gradients []*Gradient
	arena     arena

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

var defaultFonts = text.NewRegistry()

// DefaultFonts returns the registry used by contexts created without
// WithFontRegistry.
func DefaultFonts() *text.Registry {
	return defaultFonts
}

// NewContext creates a context drawing into surface. It fails with
// ErrInvalidArgument if surface is nil.
func NewContext(surface *Surface, opts ...Option) (*Context, error) {
	if surface == nil || surface.img == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = defaultFonts
	}
	return &Context{
		surface: surface,
		opts:    o,
		fonts:   o.fonts,
		state:   defaultState(o.defaultColor),
		stack:   make([]state, 0, 8),
	}, nil
}

// Surface returns the surface the context draws into.
func (c *Context) Surface() *Surface { return c.surface }

// Width returns the canvas width in pixels.
func (c *Context) Width() int { return c.surface.Width() }

// Height returns the canvas height in pixels.
func (c *Context) Height() int { return c.surface.Height() }

// Close releases the active path, the shaders held by the live and saved
// states and every gradient created by the context, and unwinds
// unmatched saves on the surface. Close is idempotent. Any further
// drawing call is ignored.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.path.release()
	c.path = nil

	c.state.release()
	for i := range c.stack {
		c.stack[i].release()
	}
	c.stack = nil
	for _, g := range c.gradients {
		g.invalidate()
	}
	c.gradients = nil

	c.surface.restoreAll()

	if c.arena.live != 0 {
		Logger().Warn("ledcanvas: resources still live after close", "count", c.arena.live)
	}
	return nil
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool { return c.closed }

// LiveResources returns the number of shaders and paths the context
// currently owns. It is zero after Close.
func (c *Context) LiveResources() int { return c.arena.live }

// Save pushes a copy of the current state and saves the surface.
func (c *Context) Save() {
	if c.closed {
		return
	}
	c.stack = append(c.stack, c.state.clone())
	c.surface.Save()
}

// Restore pops the last saved state. Without a matching Save it does
// nothing.
func (c *Context) Restore() {
	if c.closed {
		return
	}
	n := len(c.stack)
	if n == 0 {
		Logger().Debug("ledcanvas: restore without save")
		return
	}
	c.state.release()
	c.state = c.stack[n-1]
	c.stack[n-1] = state{}
	c.stack = c.stack[:n-1]
	c.surface.Restore()
	c.syncPath()
}

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// SetGlobalCompositeOperation sets the compositing mode by its canvas
// name. Unknown names select source-over.
func (c *Context) SetGlobalCompositeOperation(op string) {
	m, ok := blend.Parse(op)
	if !ok {
		Logger().Debug("ledcanvas: unknown composite operation", "op", op)
	}
	c.state.blendMode = m
}

// GlobalCompositeOperation returns the canvas name of the compositing mode.
func (c *Context) GlobalCompositeOperation() string {
	return c.state.blendMode.String()
}
