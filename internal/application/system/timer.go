package system

// Countdown is the level timer. It advances by wall-clock frame time and
// fires once when it reaches zero.
type Countdown struct {
	limit     float64
	remaining float64
	fired     bool
}

// NewCountdown creates a countdown of limit seconds
func NewCountdown(limit float64) *Countdown {
	return &Countdown{limit: limit, remaining: limit}
}

// Tick advances the countdown by dt and reports whether it expired on this
// call. It reports true at most once.
func (c *Countdown) Tick(dt float64) bool {
	if c.fired {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.fired = true
	return true
}

// Remaining returns the seconds left, never negative
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Limit returns the starting time
func (c *Countdown) Limit() float64 {
	return c.limit
}

// Expired reports whether the countdown has fired
func (c *Countdown) Expired() bool {
	return c.fired
}

// Reset restarts the countdown with a new limit
func (c *Countdown) Reset(limit float64) {
	c.limit = limit
	c.remaining = limit
	c.fired = false
}
