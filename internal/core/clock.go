package core

import "time"

// Clock measures frame delta time and paces a loop to a target frame rate.
type Clock struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
	last     time.Time
	started  bool
}

// NewClock creates a clock targeting fps frames per second.
// A non-positive fps disables pacing.
func NewClock(fps int) *Clock {
	var interval time.Duration
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	return &Clock{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Delta returns the seconds elapsed since the previous call.
// The first call returns 0.
func (c *Clock) Delta() float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Pace sleeps for whatever is left of the current frame interval,
// measured from the last Delta call.
func (c *Clock) Pace() {
	if c.interval <= 0 || !c.started {
		return
	}
	if remaining := c.interval - c.now().Sub(c.last); remaining > 0 {
		c.sleep(remaining)
	}
}
