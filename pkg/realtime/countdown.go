package realtime

import "time"

// Countdown is a round clock advanced by the host's tick. Remaining only
// goes down between Resets and stops at zero.
type Countdown struct {
	remaining time.Duration
	expired   bool
}

// Reset starts a new countdown of d.
func (c *Countdown) Reset(d time.Duration) {
	c.remaining = d
	c.expired = false
}

// Tick subtracts elapsed and reports true on the tick that reaches zero.
// Later ticks report false until the next Reset. Negative elapsed is ignored.
func (c *Countdown) Tick(elapsed time.Duration) bool {
	if c.expired {
		return false
	}
	if elapsed > 0 {
		c.remaining -= elapsed
	}
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.expired = true
	return true
}

// Remaining returns the time left, never negative.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}
