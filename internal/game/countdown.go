package game

import (
	"sync"
	"time"
)

// CountdownScheduler owns the round-close countdown as an explicit scheduled
// expiration with a cancellation handle. The authoritative transition to
// reveal is triggered by the expire callback whether or not any client is
// still rendering a timer. Every Start and Cancel advances a generation
// counter and the expire callback receives the generation it was armed with,
// so an expiry that fired but lost a race against cancellation or a re-arm
// can be recognized as stale and dropped.
type CountdownScheduler struct {
	mu       sync.Mutex
	duration time.Duration
	timer    *time.Timer
	gen      uint64
	expire   func(gen uint64)
}

// NewCountdownScheduler creates a scheduler that invokes expire when a
// started countdown runs out.
func NewCountdownScheduler(duration time.Duration, expire func(gen uint64)) *CountdownScheduler {
	return &CountdownScheduler{duration: duration, expire: expire}
}

// Start begins (or restarts) the countdown. A previously armed expiry is
// invalidated even if its timer has already fired.
func (c *CountdownScheduler) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.duration, func() {
		c.mu.Lock()
		if gen != c.gen {
			c.mu.Unlock()
			return
		}
		c.timer = nil
		c.mu.Unlock()
		c.expire(gen)
	})
}

// Cancel stops a pending countdown and invalidates an expiry that has fired
// but not yet been applied. It reports whether a countdown was pending.
func (c *CountdownScheduler) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer == nil {
		return false
	}
	c.timer.Stop()
	c.timer = nil
	return true
}

// Active reports whether a countdown is pending.
func (c *CountdownScheduler) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Generation returns the current arm/cancel generation. An expire callback
// holding an older generation is stale and must not be applied.
func (c *CountdownScheduler) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}
