package ledcanvas

import (
	"sync"

	"github.com/gogpu/ledcanvas/internal/blend"
	"github.com/gogpu/ledcanvas/internal/geom"
)

// arena counts the shaders and paths owned by one context so that Close
// can prove everything was released.
type arena struct {
	live int
}

func (a *arena) acquire() {
	if a != nil {
		a.live++
	}
}

func (a *arena) release() {
	if a == nil {
		return
	}
	a.live--
	if a.live < 0 {
		Logger().Warn("ledcanvas: resource released twice")
		a.live = 0
	}
}

// ramp is a precomputed 256-entry premultiplied gradient.
type ramp [256]blend.Color

var ramps = sync.Pool{
	New: func() any { return new(ramp) },
}

var segments = sync.Pool{
	New: func() any {
		s := make([]geom.Segment, 0, 64)
		return &s
	},
}

func getSegments() *[]geom.Segment {
	s := segments.Get().(*[]geom.Segment)
	*s = (*s)[:0]
	return s
}

func putSegments(s *[]geom.Segment) {
	if s == nil {
		return
	}
	if cap(*s) > 1<<16 {
		return
	}
	segments.Put(s)
}
