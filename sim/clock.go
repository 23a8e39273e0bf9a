package sim

import "time"

// Clock turns monotonic frame timestamps into elapsed seconds.
type Clock struct {
	previous time.Duration
	started  bool
}

// Tick returns the seconds since the previous tick. The first tick returns 0
// so the first frame takes no spurious step.
func (c *Clock) Tick(now time.Duration) float64 {
	if !c.started {
		c.started = true
		c.previous = now
		return 0
	}
	elapsed := (now - c.previous).Seconds()
	c.previous = now
	return elapsed
}
