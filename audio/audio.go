// Package audio publishes audio-spectrum features to frame scripts.
//
// A capture goroutine calls Publish or Update; render code reads through
// the nil-safe accessors of *Features. Readers never block and always
// see one complete snapshot, possibly a frame old.
package audio

import (
	"math"
	"slices"
	"sync/atomic"
)

// BandCount is the number of bands the spectrum analyzer produces.
const BandCount = 32

// Band groups used by FromBands: the first 8 bands are bass, the next 12
// midrange and the following 12 treble.
const (
	bassBands   = 8
	midBands    = 12
	trebleBands = 12
)

// Snapshot is one immutable set of audio features. Energies are in
// [0, 1].
type Snapshot struct {
	Bass     float64
	Midrange float64
	Treble   float64
	Volume   float64
	Bands    []float64
	Enabled  bool
}

// FromBands derives a snapshot from per-band energies. Bands are clamped
// to [0, 1]; the aggregates are averages over the band groups.
func FromBands(bands []float64) Snapshot {
	b := make([]float64, len(bands))
	for i, v := range bands {
		b[i] = clamp01(v)
	}
	return Snapshot{
		Bass:     mean(window(b, 0, bassBands)),
		Midrange: mean(window(b, bassBands, midBands)),
		Treble:   mean(window(b, bassBands+midBands, trebleBands)),
		Volume:   mean(b),
		Bands:    b,
		Enabled:  true,
	}
}

// Features holds the latest snapshot. The zero value reports silence
// and is ready to use.
type Features struct {
	cur atomic.Pointer[Snapshot]
}

// New returns Features holding an initial snapshot.
func New(s Snapshot) *Features {
	f := &Features{}
	f.Publish(s)
	return f
}

// Publish replaces the current snapshot. The band slice is copied.
func (f *Features) Publish(s Snapshot) {
	s.Bands = slices.Clone(s.Bands)
	f.cur.Store(&s)
}

// Update publishes FromBands(bands).
func (f *Features) Update(bands []float64) {
	s := FromBands(bands)
	f.cur.Store(&s)
}

// Disable publishes an empty, disabled snapshot.
func (f *Features) Disable() {
	f.cur.Store(&Snapshot{})
}

// Snapshot returns the current snapshot. The Bands slice must not be
// modified.
func (f *Features) Snapshot() Snapshot {
	if s := f.load(); s != nil {
		return *s
	}
	return Snapshot{}
}

func (f *Features) load() *Snapshot {
	if f == nil {
		return nil
	}
	return f.cur.Load()
}

// Bass returns the bass energy.
func (f *Features) Bass() float64 {
	if s := f.load(); s != nil {
		return s.Bass
	}
	return 0
}

// Midrange returns the midrange energy.
func (f *Features) Midrange() float64 {
	if s := f.load(); s != nil {
		return s.Midrange
	}
	return 0
}

// Treble returns the treble energy.
func (f *Features) Treble() float64 {
	if s := f.load(); s != nil {
		return s.Treble
	}
	return 0
}

// Volume returns the overall energy.
func (f *Features) Volume() float64 {
	if s := f.load(); s != nil {
		return s.Volume
	}
	return 0
}

// Enabled reports whether audio analysis is running.
func (f *Features) Enabled() bool {
	if s := f.load(); s != nil {
		return s.Enabled
	}
	return false
}

// BandCount returns the number of bands in the current snapshot.
func (f *Features) BandCount() int {
	if s := f.load(); s != nil {
		return len(s.Bands)
	}
	return 0
}

// Band returns the energy of band i, or 0 if i is out of range.
func (f *Features) Band(i int) float64 {
	s := f.load()
	if s == nil || i < 0 || i >= len(s.Bands) {
		return 0
	}
	return s.Bands[i]
}

// Range returns the mean energy of bands start through end inclusive.
// Both indices are clamped into range first; start > end yields 0.
func (f *Features) Range(start, end int) float64 {
	s := f.load()
	if s == nil || len(s.Bands) == 0 {
		return 0
	}
	last := len(s.Bands) - 1
	start = min(max(start, 0), last)
	end = min(max(end, 0), last)
	if start > end {
		return 0
	}
	return mean(s.Bands[start : end+1])
}

func window(b []float64, off, n int) []float64 {
	if off >= len(b) {
		return nil
	}
	return b[off:min(off+n, len(b))]
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return min(v, 1)
}
