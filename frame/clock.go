package frame

import (
	"math"
	"sync"
	"time"
)

// MaxSpeed is the largest accepted time scale.
const MaxSpeed = 10

// Clock is a pausable, scaled animation clock. Scripts adjust it while
// the render loop advances it; it is safe for concurrent use.
type Clock struct {
	mu     sync.Mutex
	speed  float64
	paused bool
	now    float64
}

// NewClock returns a running clock at speed 1 and time 0.
func NewClock() *Clock {
	return &Clock{speed: 1}
}

// SetSpeed sets the time scale, clamped to [0, MaxSpeed]. NaN is ignored.
func (c *Clock) SetSpeed(speed float64) {
	if math.IsNaN(speed) {
		return
	}
	c.mu.Lock()
	c.speed = min(max(speed, 0), MaxSpeed)
	c.mu.Unlock()
}

// Speed returns the time scale.
func (c *Clock) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Pause stops the clock.
func (c *Clock) Pause() { c.setPaused(true) }

// Resume restarts the clock.
func (c *Clock) Resume() { c.setPaused(false) }

// Toggle flips between paused and running.
func (c *Clock) Toggle() {
	c.mu.Lock()
	c.paused = !c.paused
	c.mu.Unlock()
}

// Paused reports whether the clock is stopped.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Clock) setPaused(v bool) {
	c.mu.Lock()
	c.paused = v
	c.mu.Unlock()
}

// Advance moves the clock by dt of wall time scaled by the speed, unless
// paused, and returns the new time in seconds. Negative dt is ignored.
func (c *Clock) Advance(dt time.Duration) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused && dt > 0 {
		c.now += dt.Seconds() * c.speed
	}
	return c.now
}

// Current returns the clock time in seconds.
func (c *Clock) Current() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
