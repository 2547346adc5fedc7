package hal

import "time"

// Clock measures the time between consecutive frames.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a clock reading now, or time.Now when now is nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Step returns the seconds elapsed since the previous Step. The first call
// returns 0. A clock that goes backwards also yields 0.
func (c *Clock) Step() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d <= 0 {
		return 0
	}
	return d.Seconds()
}

