package frame

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/ledcanvas"
)

// DefaultMaxIdle is the number of idle surfaces kept per size.
const DefaultMaxIdle = 2

// Pool recycles surfaces between frames. It is safe for concurrent use;
// each Frame it hands out belongs to one goroutine.
type Pool struct {
	mu      sync.Mutex
	idle    map[image.Point][]*ledcanvas.Surface
	opts    []ledcanvas.Option
	maxIdle int

	// stats
	created int
	reused  int
}

// NewPool returns a pool whose contexts are created with opts.
func NewPool(opts ...ledcanvas.Option) *Pool {
	return &Pool{
		idle:    make(map[image.Point][]*ledcanvas.Surface),
		opts:    opts,
		maxIdle: DefaultMaxIdle,
	}
}

// Stats reports how many surfaces were allocated and how many frames
// reused an idle one.
func (p *Pool) Stats() (created, reused int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created, p.reused
}

// Frame is one frame in progress.
type Frame struct {
	pool    *Pool
	surface *ledcanvas.Surface
	ctx     *ledcanvas.Context
	ended   bool
}

// Begin starts a frame of the given size. The surface is transparent
// and the context is in its default state.
func (p *Pool) Begin(width, height int) (*Frame, error) {
	s, err := p.get(width, height)
	if err != nil {
		return nil, err
	}
	ctx, err := ledcanvas.NewContext(s, p.opts...)
	if err != nil {
		p.put(s)
		return nil, err
	}
	return &Frame{pool: p, surface: s, ctx: ctx}, nil
}

// Context returns the frame's drawing context.
func (f *Frame) Context() *ledcanvas.Context { return f.ctx }

// Surface returns the frame's surface. It must not be used after End.
func (f *Frame) Surface() *ledcanvas.Surface { return f.surface }

// End closes the context and returns the surface to the pool. A second
// call returns ErrClosed.
func (f *Frame) End() error {
	if f.ended {
		return ledcanvas.ErrClosed
	}
	f.ended = true
	err := f.ctx.Close()
	if n := f.ctx.LiveResources(); n != 0 {
		err = errors.Join(err, fmt.Errorf("frame: %d resources still live", n))
	}
	f.pool.put(f.surface)
	f.surface = nil
	return err
}

// Render runs one frame: draw paints it and sample, when non-nil, reads
// the finished pixels before the surface is recycled.
func (p *Pool) Render(width, height int, draw func(*ledcanvas.Context) error, sample func(*ledcanvas.Surface) error) error {
	f, err := p.Begin(width, height)
	if err != nil {
		return err
	}
	if draw != nil {
		err = draw(f.ctx)
	}
	if err == nil && sample != nil {
		err = sample(f.surface)
	}
	return errors.Join(err, f.End())
}

func (p *Pool) get(width, height int) (*ledcanvas.Surface, error) {
	key := image.Pt(width, height)
	p.mu.Lock()
	if list := p.idle[key]; len(list) > 0 {
		s := list[len(list)-1]
		p.idle[key] = list[:len(list)-1]
		p.reused++
		p.mu.Unlock()
		s.Reset()
		return s, nil
	}
	p.mu.Unlock()

	s, err := ledcanvas.NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.created++
	p.mu.Unlock()
	ledcanvas.Logger().Info("frame: new surface", "width", width, "height", height)
	return s, nil
}

func (p *Pool) put(s *ledcanvas.Surface) {
	key := image.Pt(s.Width(), s.Height())
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.idle[key]) >= p.maxIdle {
		return
	}
	p.idle[key] = append(p.idle[key], s)
}
