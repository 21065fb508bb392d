package snake

import "time"

// Clock turns variable frame times into fixed simulation ticks.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

// NewClock creates a clock that fires once more than interval has accumulated.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Advance adds one frame's elapsed time. It returns true when a tick is due,
// in which case the accumulator starts over from zero. At most one tick fires
// per call regardless of how large dt is.
func (c *Clock) Advance(dt time.Duration) bool {
	c.acc += dt
	if c.acc > c.interval {
		c.acc = 0
		return true
	}
	return false
}

// Reset empties the accumulator.
func (c *Clock) Reset() {
	c.acc = 0
}

// Interval returns the tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}
