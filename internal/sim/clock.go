package sim

import "time"

// DefaultMaxDelta caps a single frame delta so that a stalled host
// (suspended terminal, slow SSH link) does not teleport the bird.
const DefaultMaxDelta = 250 * time.Millisecond

// FrameClock turns successive frame timestamps into delta seconds.
// The first sample after creation or Reset yields 0.
type FrameClock struct {
	last     time.Time
	started  bool
	MaxDelta time.Duration // 0 disables the cap
}

// NewFrameClock creates a clock with the default delta cap.
func NewFrameClock() *FrameClock {
	return &FrameClock{MaxDelta: DefaultMaxDelta}
}

// Sample records a frame timestamp and returns the seconds elapsed since the previous one.
// Timestamps that go backwards yield 0.
func (c *FrameClock) Sample(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if c.MaxDelta > 0 && delta > c.MaxDelta {
		delta = c.MaxDelta
	}
	return delta.Seconds()
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
